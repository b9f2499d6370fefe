// Package symbol owns the mapping between logical bit values and the
// visual module categories an external renderer paints and an external
// classifier reports.
package symbol

import (
	"errors"
	"fmt"
)

// Kind classifies one grid module.
type Kind uint8

const (
	KindSquare Kind = iota // data bit 0
	KindCircle             // data bit 1
	KindMarkerRed          // orientation marker, canonical top-left
	KindMarkerGreen        // orientation marker, canonical bottom-right
	KindUnknown            // classifier could not decide
	KindExcluded           // central cutout reserved for embedded imagery
)

// ErrUnknownSymbol reports a data cell the classifier could not resolve to
// a circle or square. It is distinct from a Hamming-correctable bit error:
// the only recovery is a cleaner input image.
var ErrUnknownSymbol = errors.New("symbol: unknown symbol")

var kindNames = map[Kind]string{
	KindSquare:      "square",
	KindCircle:      "circle",
	KindMarkerRed:   "marker_red",
	KindMarkerGreen: "marker_green",
	KindUnknown:     "unknown",
	KindExcluded:    "excluded",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText emits the interchange name used in grid JSON.
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownSymbol, uint8(k))
	}
	return []byte(name), nil
}

// UnmarshalText parses an interchange name. Unrecognized names decode to
// KindUnknown rather than failing: a malformed classifier cell surfaces
// later as ErrUnknownSymbol with its coordinates attached.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	*k = KindUnknown
	return nil
}

// FromBit maps a data bit to its rendered symbol.
func FromBit(b byte) Kind {
	if b&1 == 0 {
		return KindSquare
	}
	return KindCircle
}

// ToBit maps a classified data-cell symbol back to its bit. Marker,
// unknown, and excluded kinds never carry data.
func ToBit(k Kind) (byte, error) {
	switch k {
	case KindSquare:
		return 0, nil
	case KindCircle:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownSymbol, k)
	}
}

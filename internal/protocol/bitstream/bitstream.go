// Package bitstream converts between ASCII messages and the ordered nibble
// stream fed to the Hamming coder.
package bitstream

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter reports a message byte outside 7-bit ASCII.
	ErrInvalidCharacter = errors.New("bitstream: non-ascii byte")
	// ErrMisalignedStream reports an odd nibble count at reassembly. That
	// can only come from a pipeline bug, never from input corruption.
	ErrMisalignedStream = errors.New("bitstream: misaligned nibble stream")
)

// ToNibbles splits each message byte into its high and low nibble, high
// first, preserving message order. Message bytes must stay within 7-bit
// ASCII.
func ToNibbles(msg []byte) ([]byte, error) {
	nibs := make([]byte, 0, len(msg)*2)
	for i, c := range msg {
		if c > 0x7F {
			return nil, fmt.Errorf("%w: 0x%02X at byte %d", ErrInvalidCharacter, c, i)
		}
		nibs = append(nibs, c>>4, c&0x0F)
	}
	return nibs, nil
}

// RawNibbles splits bytes without the ASCII check. Framing bytes (length
// prefix, integrity check byte) are pipeline-internal and may use the full
// octet range.
func RawNibbles(raw []byte) []byte {
	nibs := make([]byte, 0, len(raw)*2)
	for _, c := range raw {
		nibs = append(nibs, c>>4, c&0x0F)
	}
	return nibs
}

// FromNibbles reassembles bytes from nibble pairs, high nibble first.
func FromNibbles(nibs []byte) ([]byte, error) {
	if len(nibs)%2 != 0 {
		return nil, fmt.Errorf("%w: %d nibbles", ErrMisalignedStream, len(nibs))
	}
	msg := make([]byte, 0, len(nibs)/2)
	for i := 0; i < len(nibs); i += 2 {
		msg = append(msg, nibs[i]<<4|nibs[i+1]&0x0F)
	}
	return msg, nil
}

package protocol

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tobyvance/glyphgrid/internal/integrity"
	"github.com/tobyvance/glyphgrid/internal/observability"
	"github.com/tobyvance/glyphgrid/internal/protocol/bitstream"
	"github.com/tobyvance/glyphgrid/internal/protocol/grid"
	"github.com/tobyvance/glyphgrid/internal/protocol/hamming"
)

// Encode lays msg out as an annotated symbol grid ready for an external
// renderer.
//
// The transmitted frame is a 2-byte big-endian length prefix, the message
// bytes, and (when opts.Checksum is set) one integrity check byte. Every
// frame nibble expands to a Hamming(7,4) block before placement; unused
// trailing cells render as squares.
func Encode(msg []byte, opts Options) (*grid.Grid, error) {
	if err := opts.Grid.Validate(); err != nil {
		return nil, err
	}
	if len(msg) > MaxMessageLen {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrMessageTooLong, len(msg), MaxMessageLen)
	}

	nibs, err := bitstream.ToNibbles(msg)
	if err != nil {
		return nil, err
	}

	var prefix [lenPrefixSize]byte
	binary.BigEndian.PutUint16(prefix[:], uint16(len(msg)))
	frame := bitstream.RawNibbles(prefix[:])
	frame = append(frame, nibs...)
	if opts.Checksum {
		frame = append(frame, bitstream.RawNibbles([]byte{integrity.Check(msg)})...)
	}

	bits := make([]byte, 0, len(frame)*blockBits)
	for _, nib := range frame {
		block := hamming.Encode(nib)
		bits = append(bits, block[:]...)
	}

	g, err := grid.PlaceBits(opts.Grid, bits)
	if err != nil {
		return nil, err
	}

	observability.RecordEncode(opts.Grid.Size)
	log.Debug().
		Int("grid_size", opts.Grid.Size).
		Int("message_bytes", len(msg)).
		Int("frame_bits", len(bits)).
		Msg("message encoded")
	return g, nil
}

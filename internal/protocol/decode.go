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
	"github.com/tobyvance/glyphgrid/internal/protocol/orient"
)

// Decode recovers the message from a classified symbol grid in any of the
// four canonical rotations.
//
// Single-bit errors are repaired per block and counted in the Report. A
// double-bit error inside one block is beyond Hamming(7,4) and decodes
// silently into a wrong nibble; enable Options.Checksum to catch that case
// as ErrChecksumMismatch.
func Decode(g *grid.Grid, opts Options) ([]byte, Report, error) {
	var rep Report

	if err := g.Config.Validate(); err != nil {
		return nil, rep, err
	}

	rot, err := orient.Resolve(g)
	if err != nil {
		observability.RecordDecode("orientation_failed", 0)
		return nil, rep, err
	}
	rep.Rotation = rot

	bits, err := grid.ExtractBits(orient.Normalize(g, rot))
	if err != nil {
		observability.RecordDecode("unknown_symbol", 0)
		return nil, rep, err
	}

	// decodeNibbles reads count Hamming blocks starting at block index
	// first, tallying corrections into the report.
	decodeNibbles := func(first, count int) ([]byte, error) {
		out := make([]byte, 0, count)
		for i := 0; i < count; i++ {
			off := (first + i) * blockBits
			if off+blockBits > len(bits) {
				return nil, fmt.Errorf("%w: block %d past capacity %d on a %d grid",
					ErrTruncatedFrame, first+i, len(bits)/blockBits, g.Config.Size)
			}
			var block hamming.Block
			copy(block[:], bits[off:off+blockBits])
			nib, outcome := hamming.Decode(block)
			rep.BlocksTotal++
			if outcome == hamming.OutcomeCorrected {
				rep.BlocksCorrected++
			}
			out = append(out, nib)
		}
		return out, nil
	}

	fail := func(outcome string, err error) ([]byte, Report, error) {
		observability.RecordDecode(outcome, rep.BlocksCorrected)
		return nil, rep, err
	}

	prefixNibs, err := decodeNibbles(0, lenPrefixSize*2)
	if err != nil {
		return fail("truncated", err)
	}
	prefixBytes, err := bitstream.FromNibbles(prefixNibs)
	if err != nil {
		return fail("truncated", err)
	}
	msgLen := int(binary.BigEndian.Uint16(prefixBytes))
	if msgLen > MaxMessageLen {
		return fail("truncated", fmt.Errorf("%w: implausible length prefix %d", ErrTruncatedFrame, msgLen))
	}

	msgNibs, err := decodeNibbles(lenPrefixSize*2, msgLen*2)
	if err != nil {
		return fail("truncated", err)
	}
	msg, err := bitstream.FromNibbles(msgNibs)
	if err != nil {
		return fail("truncated", err)
	}

	if opts.Checksum {
		checkNibs, err := decodeNibbles(lenPrefixSize*2+msgLen*2, 2)
		if err != nil {
			return fail("truncated", err)
		}
		check := checkNibs[0]<<4 | checkNibs[1]
		if !integrity.Verify(msg, check) {
			return fail("checksum_mismatch",
				fmt.Errorf("%w: %d-byte message failed integrity check", ErrChecksumMismatch, msgLen))
		}
	}

	observability.RecordDecode("ok", rep.BlocksCorrected)
	if rep.BlocksCorrected > 0 {
		log.Debug().
			Int("blocks_corrected", rep.BlocksCorrected).
			Int("blocks_total", rep.BlocksTotal).
			Str("rotation", rot.String()).
			Msg("decode needed correction")
	}
	return msg, rep, nil
}

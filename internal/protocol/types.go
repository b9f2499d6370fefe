package protocol

import (
	"github.com/tobyvance/glyphgrid/internal/protocol/grid"
	"github.com/tobyvance/glyphgrid/internal/protocol/orient"
)

// MaxMessageLen is the documented message ceiling in bytes.
const MaxMessageLen = 400

// lenPrefixSize is the byte width of the big-endian length prefix leading
// every frame.
const lenPrefixSize = 2

// blockBits is the width of one Hamming(7,4) code word.
const blockBits = 7

// Options select per-call codec behavior on top of the grid geometry.
type Options struct {
	Grid     grid.Config
	Checksum bool // append and verify the integrity check byte
}

// DefaultOptions is the smallest grid with the integrity check enabled.
func DefaultOptions() Options {
	return Options{Grid: grid.DefaultConfig(), Checksum: true}
}

// Report summarizes one decode. BlocksCorrected counts single-bit repairs;
// they are informational and never block reconstruction, but callers
// should watch them as a channel-quality signal.
type Report struct {
	Rotation        orient.Rotation
	BlocksTotal     int
	BlocksCorrected int
}

// frameNibbles returns the nibble count of the frame for a message of
// msgLen bytes.
func frameNibbles(msgLen int, checksum bool) int {
	n := (lenPrefixSize + msgLen) * 2
	if checksum {
		n += 2
	}
	return n
}

// MaxPayload returns the largest message length in bytes that fits cfg.
func MaxPayload(cfg grid.Config, checksum bool) int {
	blocks := grid.Capacity(cfg) / blockBits
	blocks -= lenPrefixSize * 2
	if checksum {
		blocks -= 2
	}
	if blocks < 0 {
		return 0
	}
	n := blocks / 2
	if n > MaxMessageLen {
		n = MaxMessageLen
	}
	return n
}

// FitGridSize returns the smallest valid grid size that holds a message of
// msgLen bytes under opts, keeping the marker and exclusion geometry.
func FitGridSize(msgLen int, opts Options) (int, error) {
	bits := frameNibbles(msgLen, opts.Checksum) * blockBits
	return grid.FitSize(bits, opts.Grid)
}

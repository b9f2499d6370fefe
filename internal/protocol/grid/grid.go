// Package grid owns module addressing: the N×N layout, the marker and
// exclusion zones, and the scan order that maps bit positions to cells.
package grid

import (
	"errors"
	"fmt"

	"github.com/tobyvance/glyphgrid/internal/protocol/symbol"
)

// Grid size bounds follow standard QR sizing conventions.
const (
	MinSize = 21
	MaxSize = 177

	DefaultMarkerSize = 7
)

var (
	ErrBadGridSize      = errors.New("grid: bad grid size")
	ErrBadMarkerSize    = errors.New("grid: bad marker size")
	ErrBadExclusion     = errors.New("grid: bad exclusion radius")
	ErrCapacityExceeded = errors.New("grid: capacity exceeded")
)

// Cell addresses one module by row and column, (0,0) top-left in canonical
// orientation.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Config fixes the geometry of one code.
type Config struct {
	Size            int // N, odd, MinSize..MaxSize
	MarkerSize      int // marker footprint k
	ExclusionRadius int // Chebyshev radius of the central cutout, 0 = none
}

// DefaultConfig is the smallest grid with the standard marker footprint
// and no central cutout.
func DefaultConfig() Config {
	return Config{Size: MinSize, MarkerSize: DefaultMarkerSize}
}

func (c Config) Validate() error {
	if c.Size < MinSize || c.Size > MaxSize || c.Size%2 == 0 {
		return fmt.Errorf("%w: %d (want odd in [%d,%d])", ErrBadGridSize, c.Size, MinSize, MaxSize)
	}
	if c.MarkerSize < 1 || c.MarkerSize*2 > c.Size {
		return fmt.Errorf("%w: %d on a %d grid", ErrBadMarkerSize, c.MarkerSize, c.Size)
	}
	if c.ExclusionRadius < 0 {
		return fmt.Errorf("%w: %d", ErrBadExclusion, c.ExclusionRadius)
	}
	if c.ExclusionRadius > 0 {
		// The cutout must stay clear of both marker footprints.
		mid := (c.Size - 1) / 2
		if mid-c.ExclusionRadius < c.MarkerSize {
			return fmt.Errorf("%w: %d overlaps a %d marker on a %d grid",
				ErrBadExclusion, c.ExclusionRadius, c.MarkerSize, c.Size)
		}
	}
	return nil
}

// inMarker reports whether the cell falls inside either marker footprint:
// red anchored at (0,0), green anchored at (N-k, N-k).
func (c Config) inMarker(row, col int) bool {
	k := c.MarkerSize
	if row < k && col < k {
		return true
	}
	return row >= c.Size-k && col >= c.Size-k
}

func (c Config) inExclusion(row, col int) bool {
	if c.ExclusionRadius == 0 {
		return false
	}
	mid := (c.Size - 1) / 2
	return abs(row-mid) <= c.ExclusionRadius && abs(col-mid) <= c.ExclusionRadius
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Capacity returns the number of data-bearing cells for cfg.
func Capacity(cfg Config) int {
	n := cfg.Size*cfg.Size - 2*cfg.MarkerSize*cfg.MarkerSize
	if cfg.ExclusionRadius > 0 {
		side := 2*cfg.ExclusionRadius + 1
		n -= side * side
	}
	return n
}

// DataCells returns every data-bearing cell in scan order: a row-major
// raster over the full grid, skipping marker and exclusion cells. Encode
// placement and decode extraction both index through this one function;
// the two sides corrupt each other silently if they ever disagree.
func DataCells(cfg Config) []Cell {
	cells := make([]Cell, 0, Capacity(cfg))
	for row := 0; row < cfg.Size; row++ {
		for col := 0; col < cfg.Size; col++ {
			if cfg.inMarker(row, col) || cfg.inExclusion(row, col) {
				continue
			}
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}
	return cells
}

// FitSize returns the smallest valid grid size whose capacity holds bits,
// keeping cfg's marker and exclusion geometry.
func FitSize(bits int, cfg Config) (int, error) {
	for n := MinSize; n <= MaxSize; n += 2 {
		c := cfg
		c.Size = n
		if c.Validate() != nil {
			continue
		}
		if Capacity(c) >= bits {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %d bits exceed the largest grid", ErrCapacityExceeded, bits)
}

// Grid is one laid-out code: every cell annotated with the symbol kind an
// external renderer should paint, markers included.
type Grid struct {
	Config Config
	Kinds  [][]symbol.Kind
}

// New returns a grid with markers painted, the exclusion zone annotated,
// and every data cell zeroed (squares).
func New(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kinds := make([][]symbol.Kind, cfg.Size)
	for row := range kinds {
		kinds[row] = make([]symbol.Kind, cfg.Size)
		for col := range kinds[row] {
			switch {
			case row < cfg.MarkerSize && col < cfg.MarkerSize:
				kinds[row][col] = symbol.KindMarkerRed
			case row >= cfg.Size-cfg.MarkerSize && col >= cfg.Size-cfg.MarkerSize:
				kinds[row][col] = symbol.KindMarkerGreen
			case cfg.inExclusion(row, col):
				kinds[row][col] = symbol.KindExcluded
			default:
				kinds[row][col] = symbol.KindSquare
			}
		}
	}
	return &Grid{Config: cfg, Kinds: kinds}, nil
}

// PlaceBits assigns bits to data cells in scan order. Trailing cells stay
// zero-filled.
func PlaceBits(cfg Config, bits []byte) (*Grid, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	cells := DataCells(cfg)
	if len(bits) > len(cells) {
		return nil, fmt.Errorf("%w: %d bits, capacity %d on a %d grid",
			ErrCapacityExceeded, len(bits), len(cells), cfg.Size)
	}
	for i, b := range bits {
		cell := cells[i]
		g.Kinds[cell.Row][cell.Col] = symbol.FromBit(b)
	}
	return g, nil
}

// ExtractBits reads the data cells back in scan order. A cell that fails
// symbol classification aborts with its coordinates attached.
func ExtractBits(g *Grid) ([]byte, error) {
	cells := DataCells(g.Config)
	bits := make([]byte, len(cells))
	for i, cell := range cells {
		b, err := symbol.ToBit(g.Kinds[cell.Row][cell.Col])
		if err != nil {
			return nil, fmt.Errorf("cell (%d,%d): %w", cell.Row, cell.Col, err)
		}
		bits[i] = b
	}
	return bits, nil
}

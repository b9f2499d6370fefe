package grid

import (
	"errors"
	"testing"

	"github.com/tobyvance/glyphgrid/internal/protocol/symbol"
)

func TestCapacityDefaultGrid(t *testing.T) {
	// 21*21 minus two 7x7 marker footprints.
	if got := Capacity(DefaultConfig()); got != 343 {
		t.Fatalf("capacity = %d, want 343", got)
	}
}

func TestDataCellsSkipMarkersAndExclusion(t *testing.T) {
	cfg := Config{Size: 21, MarkerSize: 7, ExclusionRadius: 2}
	cells := DataCells(cfg)
	if len(cells) != Capacity(cfg) {
		t.Fatalf("%d cells, capacity %d", len(cells), Capacity(cfg))
	}
	for _, cell := range cells {
		if cfg.inMarker(cell.Row, cell.Col) {
			t.Fatalf("marker cell (%d,%d) in scan order", cell.Row, cell.Col)
		}
		if cfg.inExclusion(cell.Row, cell.Col) {
			t.Fatalf("excluded cell (%d,%d) in scan order", cell.Row, cell.Col)
		}
	}
	// Row-major raster: first data cell sits right of the red marker.
	if cells[0] != (Cell{Row: 0, Col: 7}) {
		t.Fatalf("first cell = %+v", cells[0])
	}
	for i := 1; i < len(cells); i++ {
		prev, cur := cells[i-1], cells[i]
		if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Col <= prev.Col) {
			t.Fatalf("scan order regressed at %d: %+v -> %+v", i, prev, cur)
		}
	}
}

func TestPlaceExtractRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	bits := make([]byte, Capacity(cfg))
	for i := range bits {
		bits[i] = byte(i % 2)
	}
	g, err := PlaceBits(cfg, bits)
	if err != nil {
		t.Fatalf("PlaceBits: %v", err)
	}
	got, err := ExtractBits(g)
	if err != nil {
		t.Fatalf("ExtractBits: %v", err)
	}
	for i := range bits {
		if got[i] != bits[i] {
			t.Fatalf("bit %d: got %d want %d", i, got[i], bits[i])
		}
	}
}

func TestCapacityBoundary(t *testing.T) {
	cfg := DefaultConfig()
	exact := make([]byte, Capacity(cfg))
	if _, err := PlaceBits(cfg, exact); err != nil {
		t.Fatalf("exact fill failed: %v", err)
	}
	over := make([]byte, Capacity(cfg)+1)
	if _, err := PlaceBits(cfg, over); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
}

func TestNewPaintsZones(t *testing.T) {
	cfg := Config{Size: 21, MarkerSize: 7, ExclusionRadius: 2}
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Kinds[0][0] != symbol.KindMarkerRed {
		t.Fatalf("top-left = %s", g.Kinds[0][0])
	}
	if g.Kinds[20][20] != symbol.KindMarkerGreen {
		t.Fatalf("bottom-right = %s", g.Kinds[20][20])
	}
	if g.Kinds[10][10] != symbol.KindExcluded {
		t.Fatalf("center = %s", g.Kinds[10][10])
	}
	if g.Kinds[0][7] != symbol.KindSquare {
		t.Fatalf("data cell = %s", g.Kinds[0][7])
	}
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"even size", Config{Size: 22, MarkerSize: 7}, ErrBadGridSize},
		{"too small", Config{Size: 19, MarkerSize: 7}, ErrBadGridSize},
		{"too large", Config{Size: 179, MarkerSize: 7}, ErrBadGridSize},
		{"markers overlap", Config{Size: 21, MarkerSize: 11}, ErrBadMarkerSize},
		{"no marker", Config{Size: 21, MarkerSize: 0}, ErrBadMarkerSize},
		{"cutout hits marker", Config{Size: 21, MarkerSize: 7, ExclusionRadius: 4}, ErrBadExclusion},
		{"negative cutout", Config{Size: 21, MarkerSize: 7, ExclusionRadius: -1}, ErrBadExclusion},
	}
	for _, tc := range cases {
		if err := tc.cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestFitSize(t *testing.T) {
	cfg := DefaultConfig()
	n, err := FitSize(343, cfg)
	if err != nil || n != 21 {
		t.Fatalf("FitSize(343) = %d, %v", n, err)
	}
	n, err = FitSize(344, cfg)
	if err != nil || n != 23 {
		t.Fatalf("FitSize(344) = %d, %v", n, err)
	}
	if _, err := FitSize(1<<20, cfg); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("oversized fit: %v", err)
	}
}

func TestExtractBitsSurfacesUnknownCell(t *testing.T) {
	cfg := DefaultConfig()
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Kinds[0][7] = symbol.KindUnknown
	if _, err := ExtractBits(g); !errors.Is(err, symbol.ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/tobyvance/glyphgrid/internal/protocol/grid"
	"github.com/tobyvance/glyphgrid/internal/protocol/symbol"
)

// gridJSON is the interchange form shared with external renderers and
// module classifiers: geometry plus one symbol kind per cell.
type gridJSON struct {
	Size            int             `json:"size"`
	MarkerSize      int             `json:"marker_size"`
	ExclusionRadius int             `json:"exclusion_radius,omitempty"`
	Cells           [][]symbol.Kind `json:"cells"`
}

func marshalGrid(g *grid.Grid) ([]byte, error) {
	return json.MarshalIndent(gridJSON{
		Size:            g.Config.Size,
		MarkerSize:      g.Config.MarkerSize,
		ExclusionRadius: g.Config.ExclusionRadius,
		Cells:           g.Kinds,
	}, "", "  ")
}

func unmarshalGrid(data []byte) (*grid.Grid, error) {
	var gj gridJSON
	if err := json.Unmarshal(data, &gj); err != nil {
		return nil, fmt.Errorf("parse grid json: %w", err)
	}
	if len(gj.Cells) != gj.Size {
		return nil, fmt.Errorf("grid json: %d rows for size %d", len(gj.Cells), gj.Size)
	}
	for i, row := range gj.Cells {
		if len(row) != gj.Size {
			return nil, fmt.Errorf("grid json: row %d has %d cells for size %d", i, len(row), gj.Size)
		}
	}
	cfg := grid.Config{
		Size:            gj.Size,
		MarkerSize:      gj.MarkerSize,
		ExclusionRadius: gj.ExclusionRadius,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &grid.Grid{Config: cfg, Kinds: gj.Cells}, nil
}

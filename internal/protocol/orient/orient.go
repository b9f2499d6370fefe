// Package orient recovers canonical orientation from the red and green
// marker regions of a classified grid.
package orient

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tobyvance/glyphgrid/internal/protocol/grid"
	"github.com/tobyvance/glyphgrid/internal/protocol/symbol"
)

var (
	// ErrMarkersNotFound reports a missing red or green region. The decode
	// attempt is unrecoverable without a better input image.
	ErrMarkersNotFound = errors.New("orient: markers not found")
	// ErrMarkersAmbiguous reports more than one candidate region for a
	// color, or a degenerate red-green axis. The classifier contract
	// promises at most one region per color; this defends against
	// malformed input.
	ErrMarkersAmbiguous = errors.New("orient: markers ambiguous")
)

// Rotation is the clockwise turn of the observed grid relative to
// canonical orientation (red top-left, green bottom-right). Normalize
// applies the inverse.
type Rotation int

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

func (r Rotation) Degrees() int { return int(r) * 90 }

func (r Rotation) String() string { return strconv.Itoa(r.Degrees()) + "deg" }

// diagonals[rot] is the direction of the red-to-green centroid vector
// (row delta, col delta) when the observed grid is rotated clockwise by
// rot. Canonical points down-right.
var diagonals = [4][2]float64{
	{1, 1},
	{1, -1},
	{-1, -1},
	{-1, 1},
}

// Resolve determines how far the observed grid is rotated from canonical
// orientation. Of the four rotations, exactly one places red nearer the
// top-left and green nearer the bottom-right; it is found by comparing the
// red-to-green centroid vector against the four diagonal directions and
// taking the nearest by angle.
func Resolve(g *grid.Grid) (Rotation, error) {
	red, err := markerCentroid(g, symbol.KindMarkerRed, "red")
	if err != nil {
		return Rot0, err
	}
	green, err := markerCentroid(g, symbol.KindMarkerGreen, "green")
	if err != nil {
		return Rot0, err
	}

	dr := green.row - red.row
	dc := green.col - red.col

	best := Rot0
	bestDot := dr*diagonals[0][0] + dc*diagonals[0][1]
	tied := false
	for i := 1; i < len(diagonals); i++ {
		dot := dr*diagonals[i][0] + dc*diagonals[i][1]
		switch {
		case dot > bestDot:
			best, bestDot, tied = Rotation(i), dot, false
		case dot == bestDot:
			tied = true
		}
	}
	if tied || bestDot <= 0 {
		return Rot0, fmt.Errorf("%w: degenerate red-green axis (dr=%.1f dc=%.1f)",
			ErrMarkersAmbiguous, dr, dc)
	}
	return best, nil
}

// Normalize returns the observed grid reindexed into canonical
// orientation: each canonical cell is read from its rotated position.
func Normalize(g *grid.Grid, rot Rotation) *grid.Grid {
	if rot == Rot0 {
		return g
	}
	n := g.Config.Size
	kinds := make([][]symbol.Kind, n)
	for row := 0; row < n; row++ {
		kinds[row] = make([]symbol.Kind, n)
		for col := 0; col < n; col++ {
			or, oc := observedIndex(rot, row, col, n)
			kinds[row][col] = g.Kinds[or][oc]
		}
	}
	return &grid.Grid{Config: g.Config, Kinds: kinds}
}

// observedIndex maps a canonical cell to its position in a grid rotated
// clockwise by rot.
func observedIndex(rot Rotation, row, col, n int) (int, int) {
	switch rot {
	case Rot90:
		return col, n - 1 - row
	case Rot180:
		return n - 1 - row, n - 1 - col
	case Rot270:
		return n - 1 - col, row
	default:
		return row, col
	}
}

type centroid struct {
	row, col float64
}

// markerCentroid locates the single connected region of the given marker
// kind (4-connectivity) and returns its centroid.
func markerCentroid(g *grid.Grid, kind symbol.Kind, color string) (centroid, error) {
	n := g.Config.Size
	visited := make([][]bool, n)
	for i := range visited {
		visited[i] = make([]bool, n)
	}

	regions := 0
	var sumRow, sumCol, count float64
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if g.Kinds[row][col] != kind || visited[row][col] {
				continue
			}
			regions++
			if regions > 1 {
				return centroid{}, fmt.Errorf("%w: multiple %s regions", ErrMarkersAmbiguous, color)
			}
			// Flood fill this region, accumulating the centroid.
			stack := []grid.Cell{{Row: row, Col: col}}
			visited[row][col] = true
			for len(stack) > 0 {
				cell := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				sumRow += float64(cell.Row)
				sumCol += float64(cell.Col)
				count++
				for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					r, c := cell.Row+d[0], cell.Col+d[1]
					if r < 0 || r >= n || c < 0 || c >= n || visited[r][c] || g.Kinds[r][c] != kind {
						continue
					}
					visited[r][c] = true
					stack = append(stack, grid.Cell{Row: r, Col: c})
				}
			}
		}
	}
	if regions == 0 {
		return centroid{}, fmt.Errorf("%w: no %s region", ErrMarkersNotFound, color)
	}
	return centroid{row: sumRow / count, col: sumCol / count}, nil
}

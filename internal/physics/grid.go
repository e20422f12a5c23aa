package physics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/arenasim/arena/internal/vec"
)

// ErrHitboxTooLarge means a hitbox does not fit strictly inside one grid
// cell, which would let overlaps escape the neighbour scan.
var ErrHitboxTooLarge = errors.New("hitbox extent not smaller than grid cell")

type cellKey struct {
	cx int32
	cy int32
}

// forward is the half-stencil of neighbour cells scanned from each cell.
// Together with the mirrored offsets it covers all eight neighbours, so every
// pair of adjacent cells is visited exactly once.
var forward = [4]cellKey{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// Grid buckets body indices by cell for one tick. It is cleared and refilled
// every move phase; nothing is updated incrementally. Accessed only from the
// tick goroutine.
type Grid struct {
	size  float32
	cells map[cellKey][]int
	order []cellKey
}

func NewGrid(cellSize float32) *Grid {
	return &Grid{
		size:  cellSize,
		cells: make(map[cellKey][]int, 64),
	}
}

func (g *Grid) CellSize() float32 { return g.size }

func (g *Grid) toCell(v float32) int32 {
	return int32(math.Floor(float64(v / g.size)))
}

func (g *Grid) key(p vec.Vec2) cellKey {
	return cellKey{cx: g.toCell(p.X), cy: g.toCell(p.Y)}
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.cells)
	g.order = g.order[:0]
}

// Insert buckets body idx at pos. extent is the body's largest dimension.
func (g *Grid) Insert(idx int, pos vec.Vec2, extent float32) error {
	if extent >= g.size {
		return fmt.Errorf("%w: extent %.2f, cell %.2f", ErrHitboxTooLarge, extent, g.size)
	}
	k := g.key(pos)
	cell, ok := g.cells[k]
	if !ok {
		g.order = append(g.order, k)
	}
	g.cells[k] = append(cell, idx)
	return nil
}

// Len reports the number of occupied cells.
func (g *Grid) Len() int { return len(g.order) }

// EachPair calls fn once for every unordered pair of bodies sharing a cell
// or sitting in adjacent cells. Cells are walked row by row so the visit
// order only depends on positions and insertion order.
func (g *Grid) EachPair(fn func(i, j int)) {
	sort.Slice(g.order, func(a, b int) bool {
		if g.order[a].cy != g.order[b].cy {
			return g.order[a].cy < g.order[b].cy
		}
		return g.order[a].cx < g.order[b].cx
	})
	for _, k := range g.order {
		own := g.cells[k]
		for a := 0; a < len(own); a++ {
			for b := a + 1; b < len(own); b++ {
				fn(own[a], own[b])
			}
			for _, off := range forward {
				nb := g.cells[cellKey{cx: k.cx + off.cx, cy: k.cy + off.cy}]
				for _, other := range nb {
					fn(own[a], other)
				}
			}
		}
	}
}

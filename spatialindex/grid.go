package spatialindex

import (
	"github.com/JoelSalzesson/ArNavNav/navobj"
	"github.com/JoelSalzesson/ArNavNav/vec2"
)

// Grid is a reference SpatialIndex: a uniform cell-bucketed grid over a
// bounded, non-toroidal world rectangle. Unlike a wrapping game-world grid,
// queries near an edge are simply clamped — a navmesh-bounded world has
// hard edges, not wraparound.
type Grid struct {
	originX, originY float64
	cellSize         float64
	cols, rows       int
	cells            [][]navobj.Object
}

// NewGrid returns a grid covering [originX, originX+width] x
// [originY, originY+height], bucketed into cells of the given size.
func NewGrid(originX, originY, width, height, cellSize float64) *Grid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	cells := make([][]navobj.Object, cols*rows)
	return &Grid{
		originX:  originX,
		originY:  originY,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all objects from the grid.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds obj to the grid, bucketed by its Position.
func (g *Grid) Insert(obj navobj.Object) {
	idx := g.cellIndex(obj.Position())
	g.cells[idx] = append(g.cells[idx], obj)
}

// Query implements SpatialIndex, visiting every object whose Position is
// within radius of center. Since objects may have nonzero extent, a margin
// of one extra cell ring is scanned so surface-distance filtering by the
// caller (as agent.ComputeNeighbors performs) never misses a true
// neighbor; this is the permitted over-reporting the interface allows.
func (g *Grid) Query(center vec2.Vec2, radius float64, visit func(navobj.Object)) {
	cellRadius := int(radius/g.cellSize) + 2

	centerCol := int((center.X - g.originX) / g.cellSize)
	centerRow := int((center.Y - g.originY) / g.cellSize)

	for dc := -cellRadius; dc <= cellRadius; dc++ {
		col := centerCol + dc
		if col < 0 || col >= g.cols {
			continue
		}
		for dr := -cellRadius; dr <= cellRadius; dr++ {
			row := centerRow + dr
			if row < 0 || row >= g.rows {
				continue
			}
			for _, obj := range g.cells[row*g.cols+col] {
				visit(obj)
			}
		}
	}
}

func (g *Grid) cellIndex(p vec2.Vec2) int {
	col := int((p.X - g.originX) / g.cellSize)
	row := int((p.Y - g.originY) / g.cellSize)

	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return row*g.cols + col
}

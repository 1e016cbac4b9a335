package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-term/rules"
)

// neighborOffsets lists the relative (dx, dy) positions of the Moore neighborhood
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// IntSource is a uniform integer generator, satisfied by *rand.Rand
type IntSource interface {
	Intn(n int) int
}

// Grid is a fixed-size board of live and dead cells, indexed as (x, y) = (column, row)
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new grid with the specified dimensions, every cell dead
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// FromRows builds a grid from a row-major matrix of cell states
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("[FromRows] grid must have at least one row and one column")
	}

	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, errors.Errorf("[FromRows] row %d has %d cells, want %d", y, len(row), g.width)
		}
		copy(g.cells[y], row)
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// CopyFrom overwrites the cells of g with those of src. Both grids must share dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	for y := range g.height {
		copy(g.cells[y], src.cells[y])
	}
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if g.inBounds(x, y) {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

/*
Neighbors returns the states of the cells adjacent to (x, y).

Only coordinates inside the grid are visited, so corner cells have 3
neighbors, other border cells 5 and interior cells 8.
*/
func (g *Grid) Neighbors(x, y int) []bool {
	neighbors := make([]bool, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if !g.inBounds(nx, ny) {
			continue
		}
		neighbors = append(neighbors, g.cells[ny][nx])
	}
	return neighbors
}

// CountNeighbors counts the living neighbors of (x, y)
func (g *Grid) CountNeighbors(x, y int) (count int) {
	for _, alive := range g.Neighbors(x, y) {
		if alive {
			count++
		}
	}
	return
}

// NextGeneration computes the following generation into a separate grid, leaving g untouched
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.width, g.height)
	} else {
		next = NewGrid(g.width, g.height)
	}

	for y := range g.height {
		for x := range g.width {
			next.cells[y][x] = rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x])
		}
	}

	return next
}

// Advance moves g forward one generation in place. Neighbor counts are read from
// the generation being replaced, never from cells already updated in this step.
func (g *Grid) Advance(pool *GridPool) {
	next := g.NextGeneration(pool)
	g.CopyFrom(next)
	GridToPool(next, pool)
}

// Randomize draws one value in [0, outcomes) per cell; values below alive give a live cell
func (g *Grid) Randomize(src IntSource, outcomes, alive int) {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = outcomes > 0 && alive > 0 && src.Intn(outcomes) < alive
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

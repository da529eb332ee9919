package board

import (
	"github.com/pkg/errors"

	"github.com/termlife/golife/rules"
)

// Cell is a single board coordinate, zero-based, row-major.
type Cell struct {
	Row int
	Col int
}

// Board is a fixed-size rectangular grid of live/dead cells. Dimensions are
// set at construction and never change; Tick advances the grid one
// generation. A Board is not safe for concurrent use.
type Board struct {
	rows  int
	cols  int
	cells [][]bool

	// scratch holds the next-generation buffer so Tick can write the new
	// state while reading the old one, then swap. Reused across ticks.
	scratch [][]bool
}

// New creates a rows x cols board with every cell dead. Negative dimensions
// are a precondition violation and are rejected; zero dimensions are valid.
func New(rows, cols int) (*Board, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Errorf("[New] board dimensions must be non-negative, got %dx%d", rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: newCells(rows, cols),
	}, nil
}

func newCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// Rows returns the fixed number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the fixed number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// Alive reports whether the cell at (row, col) is live. The coordinate must
// lie within [0, Rows) x [0, Cols); an out-of-range access panics.
func (b *Board) Alive(row, col int) bool {
	return b.cells[row][col]
}

// Set marks the cell at (row, col) live or dead. Same range contract as Alive.
func (b *Board) Set(row, col int, alive bool) {
	b.cells[row][col] = alive
}

// countNeighbors counts live cells among the up-to-8 neighbors of (row, col).
// Off-board positions count as dead; the min/max clamp keeps the scan inside
// the grid so no per-neighbor bounds checks are needed.
func (b *Board) countNeighbors(row, col int) int {
	var (
		count  int
		minRow = max(0, row-1)
		maxRow = min(b.rows-1, row+1)
		minCol = max(0, col-1)
		maxCol = min(b.cols-1, col+1)
	)
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue // skip the cell itself
			}
			if b.cells[r][c] {
				count++
			}
		}
	}
	return count
}

// Tick advances the board one generation. Every cell's next state is computed
// from the pre-tick grid, written into a separate buffer, and the buffers are
// swapped, so all cells transition simultaneously and the board is never
// observable in a partially updated state.
func (b *Board) Tick() {
	if b.scratch == nil {
		b.scratch = newCells(b.rows, b.cols)
	}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			b.scratch[r][c] = rules.Apply(b.countNeighbors(r, c), b.cells[r][c])
		}
	}
	b.cells, b.scratch = b.scratch, b.cells
}

// Clone returns a deep copy of the board. Ticking or mutating the copy never
// affects the original.
func (b *Board) Clone() *Board {
	cells := make([][]bool, b.rows)
	for i := range cells {
		cells[i] = make([]bool, b.cols)
		copy(cells[i], b.cells[i])
	}
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: cells,
	}
}

// Population returns the total number of live cells.
func (b *Board) Population() (count int) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r][c] {
				count++
			}
		}
	}
	return
}

// LiveCells returns the coordinates of every live cell in row-major order.
func (b *Board) LiveCells() []Cell {
	var live []Cell
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r][c] {
				live = append(live, Cell{Row: r, Col: c})
			}
		}
	}
	return live
}

package grid

import (
	"errors"
	"fmt"
)

//Cell is the state of a single grid cell
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

//ErrOutOfBounds is returned when the grid is accessed with coordinates outside of it
var ErrOutOfBounds = errors.New("coordinates out of bounds")

//Grid is the rows x cols field where cells are living
//a Grid is never changed after it was produced, every change creates the new one
type Grid struct {
	rows     int
	cols     int
	entities [][]Cell
}

//New creates the all-dead grid
//non-positive dimensions are the programmer error and cause panic
func New(rows int, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("grid: invalid dimension %v x %v", rows, cols))
	}
	return createGrid(rows, cols)
}

//Rows returns the number of rows
func (g *Grid) Rows() int { return g.rows }

//Cols returns the number of columns
func (g *Grid) Cols() int { return g.cols }

//Get returns the state of the cell at row, col
func (g *Grid) Get(row int, col int) (Cell, error) {
	if !g.contains(row, col) {
		return Dead, outOfBounds(row, col, g)
	}
	return g.entities[row][col], nil
}

//WithCellSet returns the copy of the grid with the cell at row, col set to state
//the receiver stays untouched
func (g *Grid) WithCellSet(row int, col int, state Cell) (*Grid, error) {
	if !g.contains(row, col) {
		return nil, outOfBounds(row, col, g)
	}
	n := g.clone()
	n.entities[row][col] = state
	return n, nil
}

//Equal compares the grids cell by cell
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for r := range g.entities {
		for c := range g.entities[r] {
			if g.entities[r][c] != o.entities[r][c] {
				return false
			}
		}
	}
	return true
}

//LiveCells calculates the count of live cells
func (g *Grid) LiveCells() int {
	live := 0
	g.Walk(func(_ int, _ int, c Cell) {
		if c == Alive {
			live++
		}
	})
	return live
}

//Walk walks the entire grid row by row and calls cb for each cell
func (g *Grid) Walk(cb func(row int, col int, c Cell)) {
	for r := range g.entities {
		for c := range g.entities[r] {
			cb(r, c, g.entities[r][c])
		}
	}
}

func (g *Grid) contains(row int, col int) bool {
	return row >= 0 && col >= 0 && row < g.rows && col < g.cols
}

//at is the unchecked accessor, off-grid positions are dead
func (g *Grid) at(row int, col int) Cell {
	if !g.contains(row, col) {
		return Dead
	}
	return g.entities[row][col]
}

func (g *Grid) clone() *Grid {
	n := createGrid(g.rows, g.cols)
	for r := range g.entities {
		copy(n.entities[r], g.entities[r])
	}
	return n
}

//createGrid allocates the grid with one backing buffer shared by all rows
func createGrid(rows int, cols int) *Grid {
	g := Grid{rows: rows, cols: cols, entities: make([][]Cell, rows)}
	b := make([]Cell, rows*cols)
	for i := range g.entities {
		start := cols * i
		g.entities[i] = b[start : start+cols : start+cols]
	}
	return &g
}

func outOfBounds(row int, col int, g *Grid) error {
	return fmt.Errorf("%w: (%v, %v) on %v x %v grid", ErrOutOfBounds, row, col, g.rows, g.cols)
}

/*
Package maze provides the logical core of a rectangular maze.

A Grid owns a fixed number of Cells, each tracking which of its four walls are open and
whether a traversal algorithm has visited it. Walls between neighbours are opened with
Grid.JoinCells, which keeps the shared wall in the same state on both sides.

A Cursor walks the grid from the top-left cell and only passes through open walls.
SharedGrid wraps a Grid for concurrent walkers.

Generation, rendering and persistence are left to callers.
*/
package maze

import (
	"fmt"
)

// Config holds the overall maze dimensions and the size of a single cell.
// The grid has Width/CellSize columns and Height/CellSize rows; any remainder is dropped.
type Config struct {
	Width    int // Overall maze width
	Height   int // Overall maze height
	CellSize int // Divisor applied to Width and Height
}

// Columns returns the number of cells per row, truncating any partial column.
func (c Config) Columns() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Width / c.CellSize
}

// Rows returns the number of cells per column, truncating any partial row.
func (c Config) Rows() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Height / c.CellSize
}

// Validate checks that the configuration yields at least one cell in each dimension.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidDimensions, c.CellSize)
	}
	if c.Columns() <= 0 || c.Rows() <= 0 {
		return fmt.Errorf("%w: %dx%d with cell size %d yields %dx%d cells",
			ErrInvalidDimensions, c.Width, c.Height, c.CellSize, c.Columns(), c.Rows())
	}
	return nil
}

// Grid represents a rectangular maze consisting of cells with walls.
// A Grid must be created with New; the zero value has no cells.
type Grid struct {
	width  int       // Number of columns
	height int       // Number of rows
	cells  [][]*Cell // Indexed as cells[y][x]
}

// New allocates a grid sized by cfg with every wall closed and every cell unvisited.
func New(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	width, height := cfg.Columns(), cfg.Rows()
	cells := make([][]*Cell, height)
	for y := range cells {
		cells[y] = make([]*Cell, width)
		for x := range cells[y] {
			cells[y][x] = newCell(x, y)
		}
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inBound(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the cell at column x, row y.
func (g *Grid) Cell(x, y int) (*Cell, error) {
	if !g.inBound(x, y) {
		return nil, fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.cells[y][x], nil
}

// owns reports whether cell is the one stored at its own coordinates.
func (g *Grid) owns(cell *Cell) bool {
	return cell != nil && g.inBound(cell.x, cell.y) && g.cells[cell.y][cell.x] == cell
}

// Clip returns the neighbour of cell in direction d, regardless of walls.
func (g *Grid) Clip(cell *Cell, d Direction) (*Cell, error) {
	if !g.owns(cell) {
		return nil, ErrForeignCell
	}
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}

	dx, dy := d.Delta()
	return g.Cell(cell.x+dx, cell.y+dy)
}

// JoinCells opens the wall between cell and its neighbour in direction d on both sides.
// If the neighbour does not exist, neither wall is opened.
func (g *Grid) JoinCells(cell *Cell, d Direction) error {
	neighbour, err := g.Clip(cell, d)
	if err != nil {
		return err
	}

	cell.links[d] = true
	neighbour.links[d.Opposite()] = true
	return nil
}

// Move returns the neighbour of cell in direction d if the wall between them is open.
func (g *Grid) Move(cell *Cell, d Direction) (*Cell, error) {
	if !g.owns(cell) {
		return nil, ErrForeignCell
	}
	if !cell.IsOpen(d) {
		x, y := cell.Position()
		return nil, fmt.Errorf("%w: (%d, %d) %s", ErrWallBlocked, x, y, d)
	}
	return g.Clip(cell, d)
}

// Start returns a cursor bound to this grid, positioned at (0, 0).
// It panics on a Grid that was not created with New.
func (g *Grid) Start() *Cursor {
	return newCursor(g, g.cells[0][0])
}

// Cells calls fn for every cell in row-major order until fn returns false.
func (g *Grid) Cells(fn func(*Cell) bool) {
	for _, row := range g.cells {
		for _, cell := range row {
			if !fn(cell) {
				return
			}
		}
	}
}

// ResetVisited clears the visited mark on every cell.
func (g *Grid) ResetVisited() {
	g.Cells(func(c *Cell) bool {
		c.Unvisit()
		return true
	})
}

// Symmetric reports whether every shared wall is in the same state on both of its sides
// and every wall on the border of the grid is closed.
func (g *Grid) Symmetric() bool {
	for y, row := range g.cells {
		for x, cell := range row {
			if (x == 0 && cell.links[West]) || (x == g.width-1 && cell.links[East]) ||
				(y == 0 && cell.links[North]) || (y == g.height-1 && cell.links[South]) {
				return false
			}
			// East and south cover every adjacent pair once.
			if x+1 < g.width && cell.links[East] != g.cells[y][x+1].links[West] {
				return false
			}
			if y+1 < g.height && cell.links[South] != g.cells[y+1][x].links[North] {
				return false
			}
		}
	}
	return true
}

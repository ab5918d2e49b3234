package maze

import "github.com/google/uuid"

// Cursor tracks a current cell within a Grid and only moves through open walls.
// A Cursor must not be moved from more than one goroutine at a time.
type Cursor struct {
	id   uuid.UUID
	grid *Grid
	cell *Cell
}

func newCursor(g *Grid, start *Cell) *Cursor {
	return &Cursor{
		id:   uuid.New(),
		grid: g,
		cell: start,
	}
}

// ID returns the identifier assigned to the cursor when it was created.
func (c *Cursor) ID() uuid.UUID {
	return c.id
}

// Move steps to the neighbour in direction d.
// On failure the cursor stays where it was.
func (c *Cursor) Move(d Direction) error {
	next, err := c.grid.Move(c.cell, d)
	if err != nil {
		return err
	}
	c.cell = next
	return nil
}

// Cell returns a read-only view of the current cell.
func (c *Cursor) Cell() CellView {
	return cellView{c: c.cell}
}

// Position returns the column and row of the current cell.
func (c *Cursor) Position() (x, y int) {
	return c.cell.Position()
}

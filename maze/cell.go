package maze

import "fmt"

// CellKind classifies a cell by the number of open walls it has.
type CellKind int

const (
	Isolated CellKind = iota // no open walls
	Deadend                  // exactly one open wall
	Hallway                  // exactly two open walls
	Junction                 // three or four open walls
)

func (k CellKind) String() string {
	switch k {
	case Isolated:
		return "isolated"
	case Deadend:
		return "deadend"
	case Hallway:
		return "hallway"
	case Junction:
		return "junction"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

// CellView defines the read-only methods of a cell.
type CellView interface {
	// Position returns the column and row of the cell.
	Position() (x, y int)

	// IsOpen returns true if the wall toward the given direction is open.
	IsOpen(Direction) bool

	// Links returns the open state of every wall in North, East, South, West order.
	Links() [4]bool

	// Visited returns true if the cell is marked as visited.
	Visited() bool

	// Degree returns the number of open walls.
	Degree() int

	// Kind returns the classification derived from Degree.
	Kind() CellKind
}

// Cell represents a single location in the grid.
// It tracks which of its four walls are open and whether it has been visited.
type Cell struct {
	x, y    int     // Column and row, fixed at construction
	links   [4]bool // Open state per Direction
	visited bool    // Progress marker for traversal algorithms
}

func newCell(x, y int) *Cell {
	return &Cell{x: x, y: y}
}

// Position returns the column and row of the cell.
func (c *Cell) Position() (x, y int) {
	return c.x, c.y
}

// OpenWall opens the wall toward d on this cell only. Opening an already open wall is a no-op.
//
// The neighbour's matching wall is left untouched, so callers using OpenWall directly
// can break the mirror between adjacent cells. Grid.JoinCells keeps both sides in step.
func (c *Cell) OpenWall(d Direction) error {
	if !d.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	c.links[d] = true
	return nil
}

// IsOpen returns true if the wall toward d is open. Invalid directions read as closed.
func (c *Cell) IsOpen(d Direction) bool {
	return d.IsValid() && c.links[d]
}

// Links returns a copy of the wall flags in North, East, South, West order.
func (c *Cell) Links() [4]bool {
	return c.links
}

// Visit marks the cell as visited.
func (c *Cell) Visit() {
	c.visited = true
}

// Unvisit clears the visited mark.
func (c *Cell) Unvisit() {
	c.visited = false
}

// Visited returns true if the cell is marked as visited.
func (c *Cell) Visited() bool {
	return c.visited
}

// Degree returns the number of open walls.
func (c *Cell) Degree() int {
	n := 0
	for _, open := range c.links {
		if open {
			n++
		}
	}
	return n
}

// Kind returns the classification derived from Degree.
func (c *Cell) Kind() CellKind {
	switch d := c.Degree(); {
	case d == 0:
		return Isolated
	case d == 1:
		return Deadend
	case d == 2:
		return Hallway
	default:
		return Junction
	}
}

// IsIsolated returns true if the cell has no open walls.
func (c *Cell) IsIsolated() bool { return c.Kind() == Isolated }

// IsDeadend returns true if the cell has exactly one open wall.
func (c *Cell) IsDeadend() bool { return c.Kind() == Deadend }

// IsHallway returns true if the cell has exactly two open walls.
func (c *Cell) IsHallway() bool { return c.Kind() == Hallway }

// IsJunction returns true if the cell has more than two open walls.
func (c *Cell) IsJunction() bool { return c.Kind() == Junction }

// cellView hides the mutators of a Cell.
type cellView struct {
	c *Cell
}

func (v cellView) Position() (int, int) { return v.c.Position() }
func (v cellView) IsOpen(d Direction) bool { return v.c.IsOpen(d) }
func (v cellView) Links() [4]bool { return v.c.Links() }
func (v cellView) Visited() bool { return v.c.Visited() }
func (v cellView) Degree() int { return v.c.Degree() }
func (v cellView) Kind() CellKind { return v.c.Kind() }

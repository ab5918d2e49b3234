package maze

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass directions a cell can open a wall toward.
type Direction int

// The order matches Cell.Links.
const (
	North Direction = iota
	East
	South
	West
)

var (
	directionNames = [...]string{"North", "East", "South", "West"}

	// deltas indexed by Direction, in grid coordinates (y grows southward).
	deltas = [...]struct{ dx, dy int }{
		North: {0, -1},
		East:  {1, 0},
		South: {0, 1},
		West:  {-1, 0},
	}
)

// Directions returns every direction in link order.
func Directions() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// ParseDirection converts a case-insensitive direction name ("north", "East", ...) to a Direction.
func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
}

// IsValid reports whether d is one of the four compass directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the inverse direction. Invalid directions are returned unchanged.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the unit coordinate offset for d.
func (d Direction) Delta() (dx, dy int) {
	if !d.IsValid() {
		return 0, 0
	}
	return deltas[d].dx, deltas[d].dy
}

func (d Direction) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

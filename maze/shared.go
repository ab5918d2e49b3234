package maze

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/beka-birhanu/vinom-grid/config"
	"github.com/google/uuid"
)

// default prefix for the shared grid logger
const defaultLogPrefix = "maze"

// SharedOptions configures a SharedGrid.
type SharedOptions struct {
	// Logger for rejected operations
	Logger *log.Logger
}

// SharedGrid guards a Grid with a grid-wide lock so that several walkers can use it at once.
// Joins take the write lock, so readers never see one side of a shared wall open without the other.
type SharedGrid struct {
	grid    *Grid
	walkers map[uuid.UUID]*Walker
	logger  *log.Logger
	mu      sync.RWMutex
}

// Walker is a Cursor registered with a SharedGrid.
// Each Walker has a single owner; only its moves are synchronised against joins.
type Walker struct {
	shared *SharedGrid
	cursor *Cursor
}

// NewShared wraps grid for concurrent use.
func NewShared(grid *Grid, opts *SharedOptions) *SharedGrid {
	if opts == nil {
		opts = &SharedOptions{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, fmt.Sprintf("%s: ", defaultLogPrefix), log.LstdFlags|log.Lshortfile)
	}

	return &SharedGrid{
		grid:    grid,
		walkers: make(map[uuid.UUID]*Walker),
		logger:  opts.Logger,
	}
}

// Join opens the wall between (x, y) and its neighbour in direction d.
func (s *SharedGrid) Join(x, y int, d Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cell, err := s.grid.Cell(x, y)
	if err == nil {
		err = s.grid.JoinCells(cell, d)
	}
	if err != nil {
		s.logger.Printf("%s[ERROR]%s join (%d, %d) %s rejected: %v", config.LogErrorColor, config.LogColorReset, x, y, d, err)
		return err
	}
	return nil
}

// Links returns the wall flags of the cell at (x, y).
func (s *SharedGrid) Links(x, y int) ([4]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cell, err := s.grid.Cell(x, y)
	if err != nil {
		return [4]bool{}, err
	}
	return cell.Links(), nil
}

// Kind returns the classification of the cell at (x, y).
func (s *SharedGrid) Kind(x, y int) (CellKind, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cell, err := s.grid.Cell(x, y)
	if err != nil {
		return Isolated, err
	}
	return cell.Kind(), nil
}

// Symmetric reports whether the wrapped grid passes Grid.Symmetric.
func (s *SharedGrid) Symmetric() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Symmetric()
}

// Spawn registers a new walker starting at (0, 0).
func (s *SharedGrid) Spawn() *Walker {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := &Walker{shared: s, cursor: s.grid.Start()}
	s.walkers[w.cursor.ID()] = w
	return w
}

// Walker returns the registered walker with the given id.
func (s *SharedGrid) Walker(id uuid.UUID) (*Walker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.walkers[id]
	return w, ok
}

// Release forgets the walker with the given id. Unknown ids are ignored.
func (s *SharedGrid) Release(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.walkers, id)
}

// Walkers returns the number of registered walkers.
func (s *SharedGrid) Walkers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.walkers)
}

// ID returns the walker's identifier.
func (w *Walker) ID() uuid.UUID {
	return w.cursor.ID()
}

// Move steps the walker in direction d. On failure the walker stays where it was.
func (w *Walker) Move(d Direction) error {
	w.shared.mu.RLock()
	defer w.shared.mu.RUnlock()
	return w.cursor.Move(d)
}

// Position returns the column and row of the walker's current cell.
func (w *Walker) Position() (x, y int) {
	return w.cursor.Position()
}

// Links returns the wall flags of the walker's current cell.
func (w *Walker) Links() [4]bool {
	w.shared.mu.RLock()
	defer w.shared.mu.RUnlock()
	return w.cursor.Cell().Links()
}

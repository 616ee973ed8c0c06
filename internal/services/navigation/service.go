// Package navigation provides cursor and navigation state management for the
// grid of landing spots
package navigation

// Grid describes the layout of spots: Spots cells laid out row-major in
// Columns columns. The last row may be short.
type Grid struct {
	Spots   int
	Columns int
}

// Rows returns the number of rows the grid occupies
func (g Grid) Rows() int {
	if g.Spots <= 0 || g.Columns <= 0 {
		return 0
	}
	return (g.Spots + g.Columns - 1) / g.Columns
}

// Position represents a computed position in the grid
type Position struct {
	Row    int
	Column int
	Valid  bool // Whether the position names an existing spot
}

// PositionOf converts a spot index to its row and column
func (g Grid) PositionOf(index int) Position {
	if g.Columns <= 0 || index < 0 || index >= g.Spots {
		return Position{}
	}
	return Position{Row: index / g.Columns, Column: index % g.Columns, Valid: true}
}

// IndexOf converts a row and column to a spot index, or -1 when no spot
// lives there
func (g Grid) IndexOf(row, col int) int {
	if row < 0 || col < 0 || col >= g.Columns {
		return -1
	}
	idx := row*g.Columns + col
	if idx >= g.Spots {
		return -1
	}
	return idx
}

// Cursor tracks the selected spot by index
type Cursor struct {
	Index int
}

// MoveVertical moves up or down within a column. Moving past either edge
// clamps; moving down into a short last row lands on its final spot.
func (c *Cursor) MoveVertical(g Grid, delta int) int {
	pos := g.PositionOf(c.Index)
	if !pos.Valid {
		return c.Index
	}

	row := pos.Row + delta
	if row < 0 {
		row = 0
	}
	if last := g.Rows() - 1; row > last {
		row = last
	}

	idx := g.IndexOf(row, pos.Column)
	if idx < 0 {
		idx = g.Spots - 1
	}
	c.Index = idx
	return c.Index
}

// MoveHorizontal moves left or right within a row, clamped to the row
func (c *Cursor) MoveHorizontal(g Grid, delta int) int {
	pos := g.PositionOf(c.Index)
	if !pos.Valid {
		return c.Index
	}

	col := pos.Column + delta
	if col < 0 {
		col = 0
	}
	if col >= g.Columns {
		col = g.Columns - 1
	}

	if idx := g.IndexOf(pos.Row, col); idx >= 0 {
		c.Index = idx
	} else {
		c.Index = g.Spots - 1
	}
	return c.Index
}

// Service manages navigation state
type Service struct {
	grid   Grid
	cursor Cursor
}

// NewService creates a new navigation service for the grid
func NewService(grid Grid) *Service {
	return &Service{grid: grid}
}

// Grid returns the grid the service navigates
func (s *Service) Grid() Grid {
	return s.grid
}

// GetCursor returns the current cursor (for read access)
func (s *Service) GetCursor() *Cursor {
	return &s.cursor
}

// Current returns the selected spot index
func (s *Service) Current() int {
	return s.cursor.Index
}

// GetPosition returns the row and column of the selected spot
func (s *Service) GetPosition() Position {
	return s.grid.PositionOf(s.cursor.Index)
}

// MoveDown moves cursor down a row
func (s *Service) MoveDown() {
	s.cursor.MoveVertical(s.grid, 1)
}

// MoveUp moves cursor up a row
func (s *Service) MoveUp() {
	s.cursor.MoveVertical(s.grid, -1)
}

// MoveLeft moves cursor to the left spot
func (s *Service) MoveLeft() {
	s.cursor.MoveHorizontal(s.grid, -1)
}

// MoveRight moves cursor to the right spot
func (s *Service) MoveRight() {
	s.cursor.MoveHorizontal(s.grid, 1)
}

// JumpTo selects a spot directly, reporting whether it exists
func (s *Service) JumpTo(index int) bool {
	if index < 0 || index >= s.grid.Spots {
		return false
	}
	s.cursor.Index = index
	return true
}

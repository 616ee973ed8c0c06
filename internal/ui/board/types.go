package board

import "github.com/riordanpawley/starport/internal/dom"

// Spot is one landing spot on the board
type Spot struct {
	Label  string
	Body   string
	Active bool

	// Element, when set, marks the rendered cell so layout can locate it
	Element *dom.Element
}

// Size is the inner size shared by every spot cell
type Size struct {
	Width  int
	Height int
}

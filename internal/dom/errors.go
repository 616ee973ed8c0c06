package dom

import "errors"

var (
	// ErrForeignElement is returned when elements from different pages are combined.
	ErrForeignElement = errors.New("element belongs to another page")
	// ErrCycle is returned when an element would become its own ancestor.
	ErrCycle = errors.New("element cycle")
)

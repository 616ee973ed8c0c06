package floating

import (
	"fmt"
	"strings"

	"github.com/riordanpawley/starport/internal/dom"
)

// Style is the overlay's computed placement, expressed in the CSS vocabulary
// of the placeholder pattern. Offsets are in terminal cells.
type Style struct {
	Position      string
	Opacity       float64
	PointerEvents string
	Left          int
	Top           int
	// Placed is false for the hidden style, which carries no offsets.
	Placed     bool
	Transition string
}

// Visible reports whether the overlay should be drawn.
func (s Style) Visible() bool {
	return s.Opacity > 0
}

// Interactive reports whether the overlay receives mouse events.
func (s Style) Interactive() bool {
	return s.PointerEvents != "none"
}

// String renders the style as CSS declarations.
func (s Style) String() string {
	var decls []string
	if s.Transition != "" {
		decls = append(decls, "transition: "+s.Transition)
	}
	decls = append(decls, "position: "+s.Position)
	if !s.Visible() {
		decls = append(decls, "opacity: 0")
	}
	if s.PointerEvents != "" {
		decls = append(decls, "pointer-events: "+s.PointerEvents)
	}
	if s.Placed {
		decls = append(decls, fmt.Sprintf("left: %dpx", s.Left), fmt.Sprintf("top: %dpx", s.Top))
	}
	return strings.Join(decls, "; ")
}

// ComputeStyle derives the overlay style from the last measured rectangle and
// whether any element is tracked. Without both the overlay is hidden and
// ignores the pointer rather than sitting at a stale or default position.
func ComputeStyle(rect *dom.Rect, tracked bool, durations int) Style {
	if rect == nil || !tracked {
		return Style{
			Position:      "fixed",
			Opacity:       0,
			PointerEvents: "none",
		}
	}
	return Style{
		Position:   "fixed",
		Opacity:    1,
		Left:       rect.Left,
		Top:        rect.Top,
		Placed:     true,
		Transition: fmt.Sprintf("all %dms ease-in-out", durations),
	}
}

// Package dom provides the small page runtime the floating layer is built on:
// elements marked inside a rendered frame, their laid-out rectangles, mutation
// observation, resize listeners and a mount/unmount lifecycle.
package dom

import "fmt"

// Rect is an element's on-screen rectangle in terminal cells.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Contains reports whether the cell (x, y) is within the rectangle bounds.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.Left, r.Top, r.Width, r.Height)
}

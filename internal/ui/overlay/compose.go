package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetStyle = "\x1b[m"

// Place draws layer over base with its top-left corner at cell (x, y). Cells
// of base outside the layer are kept; the layer is clipped to the frame, whose
// width is that of the widest base line.
func Place(base, layer string, x, y int) string {
	if layer == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	frameWidth := 0
	for _, l := range baseLines {
		frameWidth = max(frameWidth, ansi.StringWidth(l))
	}

	for i, line := range strings.Split(layer, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		col := x
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			col = 0
		}
		if col >= frameWidth {
			continue
		}
		line = ansi.Truncate(line, frameWidth-col, "")
		lw := ansi.StringWidth(line)
		if lw == 0 {
			continue
		}

		under := baseLines[row]
		left := ansi.Truncate(under, col, "")
		if w := ansi.StringWidth(left); w < col {
			left += strings.Repeat(" ", col-w)
		}
		right := ansi.TruncateLeft(under, col+lw, "")
		baseLines[row] = left + resetStyle + line + resetStyle + right
	}
	return strings.Join(baseLines, "\n")
}

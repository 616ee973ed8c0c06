// Package board renders the grid of landing spots
package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/starport/internal/ui/styles"
)

// Render lays spots out row-major, columns to a row. Every cell has room for
// a size.Width x size.Height body under its label.
func Render(spots []Spot, columns int, size Size, s *styles.Styles) string {
	if len(spots) == 0 || columns <= 0 {
		return ""
	}

	var rows []string
	for start := 0; start < len(spots); start += columns {
		end := min(start+columns, len(spots))

		cells := make([]string, 0, end-start)
		for _, spot := range spots[start:end] {
			cells = append(cells, renderSpot(spot, size, s))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	// Join rows vertically
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

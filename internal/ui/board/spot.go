package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/starport/internal/ui/styles"
)

// renderSpot renders a bordered spot with its label above the body
func renderSpot(spot Spot, size Size, s *styles.Styles) string {
	style := s.Spot
	if spot.Active {
		style = s.SpotActive
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.SpotLabel.Render(spot.Label),
		spot.Body,
	)

	// Width includes the horizontal padding
	cell := style.
		Width(size.Width + style.GetHorizontalPadding()).
		Height(size.Height + 1).
		Render(content)

	if spot.Element != nil {
		return spot.Element.Mark(cell)
	}
	return cell
}

// RenderSpot is the exported version for testing
func RenderSpot(spot Spot, size Size, s *styles.Styles) string {
	return renderSpot(spot, size, s)
}

package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/starport/internal/ui/styles"
)

// Styles holds the modal overlay styles
type Styles struct {
	// Overlay is the bordered modal box
	Overlay lipgloss.Style
	// Title is the modal title line
	Title lipgloss.Style
	// Footer is the dismissal hint under the content
	Footer lipgloss.Style
}

// New creates overlay styles from the shared palette
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Italic(true),
	}
}

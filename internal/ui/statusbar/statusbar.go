package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/starport/internal/types"
	"github.com/riordanpawley/starport/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	width  int
	info   string
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithInfo returns a copy showing info ahead of the hints, such as the
// floating card's computed style
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	parts := []string{sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")}
	separator := sb.styles.StatusHint.Render(" │ ")

	// Info comes before hints so narrow terminals truncate the hints first
	if sb.info != "" {
		parts = append(parts, separator, sb.styles.StatusInfo.Render(sb.info))
	}
	if hints := GetHints(sb.mode); hints != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	// Truncate rather than wrap so the bar stays one line
	return sb.styles.StatusBar.Width(sb.width).MaxWidth(sb.width).MaxHeight(1).Render(content)
}

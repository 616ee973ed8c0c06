package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/starport/internal/types"
	"github.com/riordanpawley/starport/internal/ui/overlay"
	"github.com/riordanpawley/starport/internal/ui/styles"
)

// maxWidth caps the toast column
const maxWidth = 40

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles *styles.Styles
}

// New creates a new ToastRenderer with the given styles
func New(styles *styles.Styles) *ToastRenderer {
	return &ToastRenderer{
		styles: styles,
	}
}

// Render stacks toasts vertically, right aligned, in a column a third of the
// screen wide. Returns empty string if no toasts to display
func (r *ToastRenderer) Render(toasts []types.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	toastWidth := min(width/3, maxWidth)
	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, r.styleForLevel(t.Level).Width(toastWidth).Render(t.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// Overlay draws the toasts onto frame, one cell in from the top-right corner
func (r *ToastRenderer) Overlay(frame string, toasts []types.Toast, width int) string {
	view := r.Render(toasts, width)
	if view == "" {
		return frame
	}
	return overlay.Place(frame, view, max(width-lipgloss.Width(view)-1, 0), 1)
}

// styleForLevel returns the appropriate style for a toast level
func (r *ToastRenderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	default:
		return r.styles.ToastInfo
	}
}

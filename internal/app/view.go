package app

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/starport/internal/types"
	"github.com/riordanpawley/starport/internal/ui/board"
	"github.com/riordanpawley/starport/internal/ui/statusbar"
	"github.com/riordanpawley/starport/internal/ui/toast"
)

// View renders the spot grid, lays it out, then draws the floating card,
// toasts and any modal overlay on top
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.config.Demo.Title),
		m.styles.Subtitle.Render("one card, many landing spots"),
		"",
	)
	main := lipgloss.JoinVertical(lipgloss.Left, header, m.renderGrid())
	main = lipgloss.NewStyle().MaxHeight(max(m.height-1, 0)).Render(main)
	main = lipgloss.PlaceVertical(max(m.height-1, 0), lipgloss.Top, main)

	// The status bar carries no elements, so the card's style is final once
	// the main area is laid out
	main = m.page.Layout(main)
	sb := statusbar.New(m.mode, m.width, m.styles).WithInfo(m.card.Style().String())
	frame := lipgloss.JoinVertical(lipgloss.Left, main, sb.Render())

	frame = m.card.Overlay(frame)

	frame = toast.New(m.styles).Overlay(frame, types.Live(m.toasts, m.now()), m.width)

	return m.overlayStack.Render(frame, m.width, m.height)
}

// renderGrid lays the spots out; only the selected spot hosts a proxy, and
// none does while undocked
func (m Model) renderGrid() string {
	spots := make([]board.Spot, len(m.spots))
	for i, el := range m.spots {
		spot := board.Spot{
			Label:   "#" + strconv.Itoa(i+1),
			Body:    m.styles.SpotHint.Render("press " + strconv.Itoa(i+1)),
			Active:  i == m.nav.Current(),
			Element: el,
		}
		if spot.Active && m.mode == types.ModeDocked {
			spot.Body = m.proxies[i].Render(m.attrs(i), placeholder(m.size))
		}
		spots[i] = spot
	}
	return board.Render(spots, m.nav.Grid().Columns, board.Size{Width: CardWidth(MaxCardSize), Height: cardHeight}, m.styles)
}

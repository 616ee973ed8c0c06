package overlay

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var closeHelp = key.NewBinding(key.WithKeys("esc", "q", "?"))

// HelpOverlay displays the full key binding reference of a help.KeyMap
type HelpOverlay struct {
	keys   help.KeyMap
	help   help.Model
	styles *Styles
}

// NewHelpOverlay creates a help overlay for keys
func NewHelpOverlay(keys help.KeyMap) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	return &HelpOverlay{keys: keys, help: h, styles: New()}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update closes the overlay on esc, q or ?
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, closeHelp) {
		return h, func() tea.Msg { return CloseOverlayMsg{} }
	}
	return h, nil
}

// View renders every binding group followed by a dismissal hint
func (h *HelpOverlay) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		h.help.View(h.keys),
		"",
		h.styles.Footer.Render("esc to close"),
	)
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Keys"
}

// Size returns the content box size
func (h *HelpOverlay) Size() (width, height int) {
	body := h.help.View(h.keys)
	return max(lipgloss.Width(body), 30), lipgloss.Height(body) + 4
}

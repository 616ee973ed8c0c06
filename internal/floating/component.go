package floating

import tea "github.com/charmbracelet/bubbletea"

// Component is the floating content. It is rendered exactly once per frame,
// by the Container, with the attributes of the active Proxy.
type Component interface {
	View(attrs Attrs) string
}

// Updater is implemented by stateful components that consume Bubble Tea
// messages. The Container forwards every message it does not handle itself.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// MouseHandler is implemented by components that react to the mouse. Events
// arrive in component-local coordinates and only while the overlay is
// interactive.
type MouseHandler interface {
	HandleMouse(msg tea.MouseMsg) tea.Cmd
}

// ComponentFunc adapts a plain render function to Component.
type ComponentFunc func(attrs Attrs) string

// View calls f.
func (f ComponentFunc) View(attrs Attrs) string {
	return f(attrs)
}

// Initializer is implemented by components that start commands when the
// Container starts, such as tickers.
type Initializer interface {
	Init() tea.Cmd
}

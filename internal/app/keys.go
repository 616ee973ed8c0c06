package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the demo's key bindings. It implements help.KeyMap for the
// help overlay.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Jump   key.Binding
	Grow   key.Binding
	Shrink key.Binding
	Accent key.Binding
	Pause  key.Binding
	Undock key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "spot above")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "spot below")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "spot left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "spot right")),
		Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to spot")),
		Grow:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bigger card")),
		Shrink: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "smaller card")),
		Accent: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle color")),
		Pause:  key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "pause stopwatch")),
		Undock: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undock/dock")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in compact help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Undock, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped in columns
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Jump},
		{k.Grow, k.Shrink, k.Accent, k.Pause},
		{k.Undock, k.Help, k.Quit},
	}
}

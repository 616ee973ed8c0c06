package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all the UI styles
type Styles struct {
	// Landing spots
	Spot       lipgloss.Style
	SpotActive lipgloss.Style
	SpotLabel  lipgloss.Style
	SpotHint   lipgloss.Style

	// Floating card
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardBody  lipgloss.Style

	// Header
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Spot: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		SpotActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Padding(0, 1),

		SpotLabel: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		SpotHint: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Bold(true),

		CardBody: lipgloss.NewStyle().
			Foreground(Text),

		Title: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Text),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true),

		StatusHint: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0),

		StatusInfo: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Yellow),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Padding(0, 1),
	}
}

// CardWith returns the card style bordered in the named accent
func (s *Styles) CardWith(accent string) lipgloss.Style {
	return s.Card.BorderForeground(Accent(accent))
}

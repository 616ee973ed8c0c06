package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/starport/internal/floating"
	"github.com/riordanpawley/starport/internal/ui/styles"
)

// Card size bounds for the forwarded "size" attribute
const (
	MinCardSize = 1
	MaxCardSize = 3
)

// cardHeight is the outer height of a card: border plus three lines
const cardHeight = 5

// CardWidth returns the outer width of a card of the given size
func CardWidth(size int) int {
	size = min(max(size, MinCardSize), MaxCardSize)
	return 14 + 4*(size-1)
}

// Card is the floating component. It keeps a stopwatch and a spinner running
// so it is visible that the same instance survives every teleport.
type Card struct {
	styles    *styles.Styles
	stopwatch stopwatch.Model
	spinner   spinner.Model
	clicks    int
}

// NewCard creates a card with a one second stopwatch
func NewCard(s *styles.Styles) *Card {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	return &Card{
		styles:    s,
		stopwatch: stopwatch.NewWithInterval(time.Second),
		spinner:   sp,
	}
}

// Init starts the stopwatch and the spinner
func (c *Card) Init() tea.Cmd {
	return tea.Batch(c.stopwatch.Init(), c.spinner.Tick)
}

// Update consumes the card's own tick messages
func (c *Card) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg.(type) {
	case stopwatch.TickMsg, stopwatch.StartStopMsg, stopwatch.ResetMsg:
		c.stopwatch, cmd = c.stopwatch.Update(msg)
	case spinner.TickMsg:
		c.spinner, cmd = c.spinner.Update(msg)
	}
	return cmd
}

// HandleMouse counts left clicks and pauses or resumes the stopwatch
func (c *Card) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	c.clicks++
	return c.stopwatch.Toggle()
}

// Toggle pauses or resumes the stopwatch
func (c *Card) Toggle() tea.Cmd {
	return c.stopwatch.Toggle()
}

// Elapsed returns the stopwatch reading
func (c *Card) Elapsed() time.Duration {
	return c.stopwatch.Elapsed()
}

// Running reports whether the stopwatch is counting
func (c *Card) Running() bool {
	return c.stopwatch.Running()
}

// Clicks returns how many times the card was clicked
func (c *Card) Clicks() int {
	return c.clicks
}

// View renders the card for the attributes of the active landing spot
func (c *Card) View(attrs floating.Attrs) string {
	width := CardWidth(attrs.Int("size", MinCardSize))

	title := c.styles.CardTitle.Foreground(styles.Accent(attrs.Get("accent"))).
		Render(c.spinner.View() + " spot " + attrs.Get("spot"))
	clock := c.stopwatch.View()
	if !c.stopwatch.Running() {
		clock += " ‖"
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		c.styles.CardBody.Render(clock),
		c.styles.CardBody.Render(fmt.Sprintf("clicks %d", c.clicks)),
	)

	// Width includes padding but not the border
	return c.styles.CardWith(attrs.Get("accent")).
		Width(width - 2).
		MaxHeight(cardHeight).
		Render(body)
}

// placeholder reserves the cells a card of size will cover
func placeholder(size int) string {
	line := strings.Repeat(" ", CardWidth(size))
	return strings.TrimSuffix(strings.Repeat(line+"\n", cardHeight), "\n")
}

// Package app contains the demo application model and TEA implementation.
package app

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/starport/internal/config"
	"github.com/riordanpawley/starport/internal/dom"
	"github.com/riordanpawley/starport/internal/floating"
	"github.com/riordanpawley/starport/internal/services/navigation"
	"github.com/riordanpawley/starport/internal/types"
	"github.com/riordanpawley/starport/internal/ui/overlay"
	"github.com/riordanpawley/starport/internal/ui/styles"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
)

// toastTTL is how long a toast stays on screen
const toastTTL = 3 * time.Second

// Model is the main application state
type Model struct {
	// Floating card and the page it moves over
	page    *dom.Page
	card    *floating.Container[*Card]
	proxies []*floating.Proxy

	// One element per landing spot, for mouse hit testing
	spots []*dom.Element

	// Navigation over the spot grid
	nav *navigation.Service

	// Forwarded attributes
	size   int
	accent string

	mode types.Mode

	// UI state
	overlayStack *overlay.Stack
	toasts       []Toast
	keys         KeyMap

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// New creates a new application model with the given config
func New(cfg *config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	s := styles.New()
	page := dom.NewPage(logger)

	card, proxies := floating.New(page, NewCard(s), floating.Options{
		Durations:      cfg.Floating.Durations,
		ClearOnUnmount: cfg.Floating.ClearOnUnmount,
		FrameInterval:  cfg.Floating.FrameInterval(),
		Logger:         logger,
	})

	m := Model{
		page:         page,
		card:         card,
		nav:          navigation.NewService(navigation.Grid{Spots: cfg.Demo.Spots, Columns: cfg.Demo.Columns}),
		size:         MinCardSize,
		accent:       styles.AccentNames[0],
		mode:         types.ModeDocked,
		overlayStack: overlay.NewStack(),
		keys:         DefaultKeyMap(),
		styles:       s,
		config:       cfg,
		logger:       logger,
		now:          time.Now,
	}
	for range cfg.Demo.Spots {
		m.proxies = append(m.proxies, proxies.New())
		m.spots = append(m.spots, page.NewElement())
	}
	return m
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return m.card.Init()
}

// Update handles incoming messages and updates the model. A card move
// begun by the last View gets its animation frames started here
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, tea.Batch(cmd, m.card.Frames())
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.page.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case toastExpiredMsg:
		m.toasts = types.Live(m.toasts, m.now())
		return m, nil
	}

	// Animation frames and the card's own ticks
	return m, m.card.Update(msg)
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.card.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.keys))

	case key.Matches(msg, m.keys.Up):
		return m.moveTo(m.nav.MoveUp)
	case key.Matches(msg, m.keys.Down):
		return m.moveTo(m.nav.MoveDown)
	case key.Matches(msg, m.keys.Left):
		return m.moveTo(m.nav.MoveLeft)
	case key.Matches(msg, m.keys.Right):
		return m.moveTo(m.nav.MoveRight)
	case key.Matches(msg, m.keys.Jump):
		n, _ := strconv.Atoi(msg.String())
		return m.moveTo(func() { m.nav.JumpTo(n - 1) })

	case key.Matches(msg, m.keys.Grow):
		m.size = min(m.size+1, MaxCardSize)
		return m, nil
	case key.Matches(msg, m.keys.Shrink):
		m.size = max(m.size-1, MinCardSize)
		return m, nil
	case key.Matches(msg, m.keys.Accent):
		m.accent = styles.NextAccent(m.accent)
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		return m, m.card.Component().Toggle()

	case key.Matches(msg, m.keys.Undock):
		return m.toggleDock()
	}
	return m, nil
}

// moveTo applies a navigation step and announces the teleport if the
// selection changed
func (m Model) moveTo(step func()) (tea.Model, tea.Cmd) {
	from := m.nav.Current()
	step()
	to := m.nav.Current()
	if to == from || m.mode != types.ModeDocked {
		return m, nil
	}
	m.logger.Info("teleport", "from", from+1, "to", to+1)
	return m, m.addToast(ToastInfo, fmt.Sprintf("Teleporting %d → %d", from+1, to+1))
}

// toggleDock switches between rendering the selected proxy and rendering none
func (m Model) toggleDock() (tea.Model, tea.Cmd) {
	if m.mode == types.ModeDocked {
		m.mode = types.ModeUndocked
		if m.config.Floating.ClearOnUnmount {
			return m, m.addToast(ToastWarning, "Undocked: card hidden")
		}
		return m, m.addToast(ToastWarning, "Undocked: card stays put")
	}
	m.mode = types.ModeDocked
	return m, m.addToast(ToastSuccess, fmt.Sprintf("Docked at spot %d", m.nav.Current()+1))
}

// handleMouse gives the card first refusal, then selects a clicked spot
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.overlayStack.IsEmpty() {
		return m, nil
	}
	if box, ok := m.card.Bounds(); ok && m.card.Style().Interactive() && box.Contains(msg.X, msg.Y) {
		return m, m.card.Update(msg)
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for i, el := range m.spots {
		if r, ok := el.BoundingRect(); ok && r.Contains(msg.X, msg.Y) {
			return m.moveTo(func() { m.nav.JumpTo(i) })
		}
	}
	return m, nil
}

type toastExpiredMsg struct{}

// addToast shows a toast and schedules its removal
func (m *Model) addToast(level types.ToastLevel, message string) tea.Cmd {
	m.toasts = append(m.toasts, Toast{
		Level:   level,
		Message: message,
		Expires: m.now().Add(toastTTL),
	})
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

// attrs returns the attributes forwarded by the proxy at spot
func (m Model) attrs(spot int) floating.Attrs {
	return floating.Attrs{
		"size":   strconv.Itoa(m.size),
		"accent": m.accent,
		"spot":   strconv.Itoa(spot + 1),
	}
}

// Card returns the floating card container
func (m Model) Card() *floating.Container[*Card] {
	return m.card
}

// Selected returns the selected spot index
func (m Model) Selected() int {
	return m.nav.Current()
}

// Mode returns whether a proxy is rendered
func (m Model) Mode() types.Mode {
	return m.mode
}

package floating

import (
	"log/slog"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/starport/internal/dom"
	"github.com/riordanpawley/starport/internal/ui/overlay"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// FrameMsg advances a Container's animation. Each Container only accepts its
// own frames.
type FrameMsg struct {
	Time time.Time
	id   int
	tag  int
}

// Container renders the floating component once and places it over whichever
// Proxy element the Port tracks.
type Container[C Component] struct {
	id        int
	tag       int
	page      *dom.Page
	port      *Port
	component C
	opts      Options
	logger    *slog.Logger
	now       func() time.Time

	rect     *dom.Rect
	measured *dom.Element
	style    Style
	motion   transition

	observer *dom.MutationObserver
	observed *dom.Element
	stops    []func()
	closed   bool

	// framing is set while a FrameMsg is in flight; pending while a started
	// transition still waits for its first frame.
	framing bool
	pending bool
}

func newContainer[C Component](page *dom.Page, port *Port, component C, opts Options) *Container[C] {
	c := &Container[C]{
		id:        nextID(),
		page:      page,
		port:      port,
		component: component,
		opts:      opts,
		logger:    opts.Logger,
		now:       time.Now,
		motion:    transition{duration: time.Duration(opts.Durations) * time.Millisecond},
	}
	c.observer = page.NewMutationObserver(func(records []dom.MutationRecord, _ *dom.MutationObserver) {
		c.logger.Debug("tracked element mutated", "records", len(records), "first", records[0].Type.String())
		c.update()
	})
	c.stops = append(c.stops,
		page.OnResize(func(width, height int) {
			c.logger.Debug("viewport resized", "width", width, "height", height)
			c.update()
		}),
		port.Subscribe(c.update),
	)
	c.update()
	return c
}

// update re-measures the tracked element and recomputes the style.
func (c *Container[C]) update() {
	if c.closed {
		return
	}
	tracked := c.port.Tracked()
	if tracked != c.observed {
		c.observer.Disconnect()
		if tracked != nil {
			c.observer.Observe(tracked, dom.MutationObserverInit{
				ChildList:     true,
				Subtree:       true,
				Attributes:    true,
				CharacterData: true,
			})
		}
		c.observed = tracked
	}

	if tracked == nil {
		c.rect, c.measured = nil, nil
	} else if r, ok := tracked.BoundingRect(); ok {
		c.rect, c.measured = &r, tracked
	} else if tracked != c.measured {
		c.rect, c.measured = nil, nil
	}
	// Otherwise the tracked element has left the page and keeps the
	// rectangle it was last laid out at.

	style := ComputeStyle(c.rect, tracked != nil, c.opts.Durations)
	if !style.Visible() {
		c.motion.reset()
	} else if now := c.now(); c.motion.retarget(style.Left, style.Top, now) {
		c.logger.Debug("container retargeted", "left", style.Left, "top", style.Top)
		if c.motion.active(now) && !c.framing {
			c.pending = true
		}
	}
	c.style = style
}

// Init starts the component's own commands, and the animation clock if a
// transition is already under way.
func (c *Container[C]) Init() tea.Cmd {
	cmds := []tea.Cmd{c.Frames()}
	if i, ok := any(c.component).(Initializer); ok {
		cmds = append(cmds, i.Init())
	}
	return tea.Batch(cmds...)
}

// Update advances animation frames, routes mouse events to the component
// while the overlay is interactive, and forwards everything else to an
// Updater component. Frames are only scheduled while a transition runs.
func (c *Container[C]) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.id != c.id || msg.tag != c.tag {
			return nil
		}
		c.framing = false
		if c.Animating() {
			return c.tick()
		}
		return nil
	case tea.MouseMsg:
		cmd = c.handleMouse(msg)
	default:
		if u, ok := any(c.component).(Updater); ok {
			cmd = u.Update(msg)
		}
	}
	return tea.Batch(cmd, c.Frames())
}

// Frames returns the command that starts animation frames for a transition
// begun by the last layout, or nil when none is waiting. Hosts that do not
// route every message through Update call it after handling their own.
func (c *Container[C]) Frames() tea.Cmd {
	if !c.pending {
		return nil
	}
	return c.tick()
}

func (c *Container[C]) tick() tea.Cmd {
	c.pending = false
	if c.closed {
		return nil
	}
	c.framing = true
	c.tag++
	id, tag := c.id, c.tag
	return tea.Tick(c.opts.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, id: id, tag: tag}
	})
}

func (c *Container[C]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !c.style.Interactive() {
		return nil
	}
	box, ok := c.Bounds()
	if !ok || !box.Contains(msg.X, msg.Y) {
		return nil
	}
	h, ok := any(c.component).(MouseHandler)
	if !ok {
		return nil
	}
	msg.X -= box.Left
	msg.Y -= box.Top
	return h.HandleMouse(msg)
}

// View renders the component with the forwarded attributes.
func (c *Container[C]) View() string {
	return c.component.View(c.port.Attrs())
}

// Overlay draws the component over a laid-out frame at its current animated
// position. A hidden overlay leaves the frame unchanged.
func (c *Container[C]) Overlay(base string) string {
	x, y, ok := c.Position()
	if !ok {
		return base
	}
	return overlay.Place(base, c.View(), x, y)
}

// Position returns the cell the component is drawn at right now, which lags
// the style's offsets while a transition runs.
func (c *Container[C]) Position() (x, y int, ok bool) {
	if !c.style.Visible() {
		return 0, 0, false
	}
	x, y = c.motion.cell(c.now())
	return x, y, true
}

// Bounds returns the drawn box of the component.
func (c *Container[C]) Bounds() (dom.Rect, bool) {
	x, y, ok := c.Position()
	if !ok {
		return dom.Rect{}, false
	}
	view := c.View()
	return dom.Rect{Left: x, Top: y, Width: lipgloss.Width(view), Height: lipgloss.Height(view)}, true
}

// Animating reports whether a position transition is in progress.
func (c *Container[C]) Animating() bool {
	return c.style.Visible() && c.motion.active(c.now())
}

// Style returns the computed style.
func (c *Container[C]) Style() Style {
	return c.style
}

// Rect returns the last measured rectangle of the tracked element.
func (c *Container[C]) Rect() (dom.Rect, bool) {
	if c.rect == nil {
		return dom.Rect{}, false
	}
	return *c.rect, true
}

// Component returns the floating component.
func (c *Container[C]) Component() C {
	return c.component
}

// Close detaches the Container from the page and stops animation frames.
func (c *Container[C]) Close() {
	if c.closed {
		return
	}
	for _, stop := range c.stops {
		stop()
	}
	c.stops = nil
	c.observer.Disconnect()
	c.closed = true
}

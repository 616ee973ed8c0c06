package floating

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/starport/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// card is a stateful test component that records what the Container gave it.
type card struct {
	attrs  Attrs
	views  int
	msgs   []tea.Msg
	clicks []tea.MouseMsg
}

func (c *card) View(attrs Attrs) string {
	c.attrs = attrs
	c.views++
	label := attrs.Get("label")
	if label == "" {
		label = "##"
	}
	return label
}

func (c *card) Update(msg tea.Msg) tea.Cmd {
	c.msgs = append(c.msgs, msg)
	return nil
}

func (c *card) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	c.clicks = append(c.clicks, msg)
	return nil
}

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	page      *dom.Page
	container *Container[*card]
	proxies   *Proxies
	card      *card
	clock     *clock
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	page := dom.NewPage(nil)
	c := &card{}
	container, proxies := New(page, c, opts)
	clk := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	container.now = clk.Now
	return &fixture{page: page, container: container, proxies: proxies, card: c, clock: clk}
}

// at renders a frame with the proxy's two-cell placeholder at (x, y).
func at(p *Proxy, x, y int, attrs Attrs) string {
	return strings.Repeat("\n", y) + strings.Repeat(" ", x) + p.Render(attrs, "..")
}

func TestNewWithoutProxy(t *testing.T) {
	page := dom.NewPage(nil)
	container, proxies := New(page, &card{}, Options{})
	t.Cleanup(container.Close)

	assert.Nil(t, proxies.Port().Tracked())
	assert.False(t, container.Style().Visible())
	_, ok := container.Rect()
	assert.False(t, ok)
	_, _, ok = container.Position()
	assert.False(t, ok)

	page.Resize(80, 24)
	assert.False(t, container.Style().Visible())
}

func TestContainerHiddenBeforeProxyMounts(t *testing.T) {
	f := newFixture(t, Options{})

	style := f.container.Style()
	assert.Equal(t, "fixed", style.Position)
	assert.Zero(t, style.Opacity)
	assert.Equal(t, "none", style.PointerEvents)
	assert.False(t, style.Placed)
	assert.Empty(t, style.Transition)

	// Rendered but not yet laid out is still not mounted.
	p := f.proxies.New()
	frame := at(p, 4, 1, nil)
	assert.False(t, f.container.Style().Visible())

	base := "plain frame"
	assert.Equal(t, base, f.container.Overlay(base))
	_, _, ok := f.container.Position()
	assert.False(t, ok)

	f.page.Layout(frame)
	assert.True(t, f.container.Style().Visible())
}

func TestContainerFollowsProxyRect(t *testing.T) {
	f := newFixture(t, Options{})
	p := f.proxies.New()

	f.page.Layout(at(p, 3, 2, nil))

	style := f.container.Style()
	assert.True(t, style.Placed)
	assert.Equal(t, 3, style.Left)
	assert.Equal(t, 2, style.Top)
	assert.Equal(t, "transition: all 1500ms ease-in-out; position: fixed; left: 3px; top: 2px", style.String())

	rect, ok := f.container.Rect()
	require.True(t, ok)
	assert.Equal(t, dom.Rect{Left: 3, Top: 2, Width: 2, Height: 1}, rect)

	x, y, ok := f.container.Position()
	require.True(t, ok)
	assert.Equal(t, 3, x, "first placement jumps")
	assert.Equal(t, 2, y)
}

func TestTransitionDurations(t *testing.T) {
	tests := []struct {
		name      string
		durations int
		want      string
	}{
		{"default", 0, "all 1500ms ease-in-out"},
		{"negative falls back", -5, "all 1500ms ease-in-out"},
		{"configured", 300, "all 300ms ease-in-out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{Durations: tt.durations})
			a, b := f.proxies.New(), f.proxies.New()

			f.page.Layout(at(a, 0, 0, nil))
			assert.Equal(t, tt.want, f.container.Style().Transition)

			f.page.Layout(at(b, 9, 3, nil))
			assert.Equal(t, tt.want, f.container.Style().Transition)
		})
	}
}

func TestAttributesForwardedLastWriterWins(t *testing.T) {
	f := newFixture(t, Options{})
	a, b := f.proxies.New(), f.proxies.New()

	frame := at(a, 0, 0, Attrs{"label": "AA"}) + "\n" + at(b, 0, 0, Attrs{"label": "BB"})
	frame = f.page.Layout(frame)

	assert.Equal(t, "BB", f.container.View())
	assert.Equal(t, Attrs{"label": "BB"}, f.card.attrs)

	// b mounted last, so once the move settles the card sits over b's line.
	f.clock.Advance(1500 * time.Millisecond)
	y := strings.Split(ansi.Strip(f.container.Overlay(frame)), "\n")
	assert.Equal(t, "BB", y[1])
}

func TestPortAttrsAreCopies(t *testing.T) {
	f := newFixture(t, Options{})
	p := f.proxies.New()

	attrs := Attrs{"label": "AA"}
	f.page.Layout(p.Render(attrs))
	attrs["label"] = "mutated"

	assert.Equal(t, "AA", f.proxies.Port().Attrs().Get("label"))
}

func TestAttrsFollowLastMountedProxy(t *testing.T) {
	f := newFixture(t, Options{})
	a, b := f.proxies.New(), f.proxies.New()

	f.page.Layout(at(b, 0, 1, Attrs{"label": "BB"}))
	require.Same(t, b.Element(), f.proxies.Port().Tracked())

	// a mounts after b but renders before it in the frame.
	f.page.Layout(at(a, 0, 0, Attrs{"label": "AA"}) + "\n" + at(b, 0, 0, Attrs{"label": "BB"}))

	require.Same(t, a.Element(), f.proxies.Port().Tracked())
	assert.Equal(t, "AA", f.container.View())

	// Only the tracked proxy republishes changed attrs.
	f.page.Layout(at(a, 0, 0, Attrs{"label": "A2"}) + "\n" + at(b, 0, 0, Attrs{"label": "B2"}))
	assert.Equal(t, "A2", f.container.View())
}

func TestRenderBeforeMountPublishesNothing(t *testing.T) {
	f := newFixture(t, Options{})
	p := f.proxies.New()

	frame := p.Render(Attrs{"label": "AA"}, "..")
	assert.Empty(t, f.proxies.Port().Attrs())

	f.page.Layout(frame)
	assert.Equal(t, "AA", f.proxies.Port().Attrs().Get("label"))
}

func TestRemeasureTriggers(t *testing.T) {
	tests := []struct {
		name    string
		trigger func(t *testing.T, f *fixture, p *Proxy)
	}{
		{"child list", func(t *testing.T, f *fixture, p *Proxy) { p.Element().SetChildren("changed") }},
		{"attribute", func(t *testing.T, f *fixture, p *Proxy) { p.Element().SetAttr("data-x", "1") }},
		{"character data", func(t *testing.T, f *fixture, p *Proxy) { p.Element().SetText("hello") }},
		{"subtree", func(t *testing.T, f *fixture, p *Proxy) {
			child := f.page.NewElement()
			require.NoError(t, p.Element().AppendChild(child))
		}},
		{"resize", func(t *testing.T, f *fixture, p *Proxy) { f.page.Resize(120, 40) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			p := f.proxies.New()
			f.page.Layout(at(p, 0, 0, nil))
			require.Equal(t, 0, f.container.Style().Left)

			// A layout shift alone is not observed.
			shifted := at(p, 6, 1, nil)
			f.page.Layout(shifted)
			assert.Equal(t, 0, f.container.Style().Left)

			tt.trigger(t, f, p)
			f.page.Layout(shifted)

			style := f.container.Style()
			assert.Equal(t, 6, style.Left)
			assert.Equal(t, 1, style.Top)
		})
	}
}

func TestUnmountKeepsStaleRectByDefault(t *testing.T) {
	f := newFixture(t, Options{})
	p := f.proxies.New()
	f.page.Layout(at(p, 5, 1, nil))

	f.page.Layout("no proxy here")
	f.page.Resize(80, 24)
	f.page.Layout("no proxy here")

	assert.False(t, p.Mounted())
	assert.Same(t, p.Element(), f.proxies.Port().Tracked())
	style := f.container.Style()
	assert.True(t, style.Visible())
	assert.Equal(t, 5, style.Left)
	assert.Equal(t, 1, style.Top)
}

func TestClearOnUnmountHidesContainer(t *testing.T) {
	f := newFixture(t, Options{ClearOnUnmount: true})
	p := f.proxies.New()
	f.page.Layout(at(p, 5, 1, nil))
	require.True(t, f.container.Style().Visible())

	f.page.Layout("no proxy here")

	assert.Nil(t, f.proxies.Port().Tracked())
	assert.False(t, f.container.Style().Visible())
	_, ok := f.container.Rect()
	assert.False(t, ok)
}

func TestClearOnUnmountKeepsNewerProxy(t *testing.T) {
	f := newFixture(t, Options{ClearOnUnmount: true})
	a, b := f.proxies.New(), f.proxies.New()
	f.page.Layout(at(a, 0, 0, nil) + "\n" + at(b, 0, 0, nil))
	require.Same(t, b.Element(), f.proxies.Port().Tracked())

	f.page.Layout(at(b, 0, 0, nil))

	assert.Same(t, b.Element(), f.proxies.Port().Tracked())
	assert.True(t, f.container.Style().Visible())
}

func TestAnimatedMoveBetweenProxies(t *testing.T) {
	f := newFixture(t, Options{})
	a, b := f.proxies.New(), f.proxies.New()

	f.page.Layout(at(a, 0, 0, nil))
	f.page.Layout(at(b, 10, 0, nil))

	style := f.container.Style()
	assert.Equal(t, 10, style.Left, "style holds the target")

	x, _, _ := f.container.Position()
	assert.Equal(t, 0, x, "drawn position starts at the old spot")
	assert.True(t, f.container.Animating())

	f.clock.Advance(750 * time.Millisecond)
	x, _, _ = f.container.Position()
	assert.Equal(t, 5, x, "ease-in-out is halfway at half time")

	f.clock.Advance(750 * time.Millisecond)
	x, _, _ = f.container.Position()
	assert.Equal(t, 10, x)
	assert.False(t, f.container.Animating())
}

func TestRetargetMidFlightStartsFromCurrentPosition(t *testing.T) {
	f := newFixture(t, Options{Durations: 1000})
	a, b, c := f.proxies.New(), f.proxies.New(), f.proxies.New()

	f.page.Layout(at(a, 0, 0, nil))
	f.page.Layout(at(b, 20, 0, nil))
	f.clock.Advance(500 * time.Millisecond)
	f.page.Layout(at(c, 0, 0, nil))

	x, _, _ := f.container.Position()
	assert.Equal(t, 10, x)

	f.clock.Advance(1000 * time.Millisecond)
	x, _, _ = f.container.Position()
	assert.Equal(t, 0, x)
}

func TestOverlayDrawsAtPosition(t *testing.T) {
	f := newFixture(t, Options{})
	p := f.proxies.New()

	frame := f.page.Layout("line0\n" + "ab" + p.Render(Attrs{"label": "XY"}, "..") + "cd")
	out := ansi.Strip(f.container.Overlay(frame))

	assert.Equal(t, "line0\nabXYcd", out)
	assert.Positive(t, f.card.views)
}

func TestMouseRouting(t *testing.T) {
	f := newFixture(t, Options{})
	click := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	}

	f.container.Update(click(0, 0))
	assert.Empty(t, f.card.clicks, "hidden overlay ignores the pointer")

	p := f.proxies.New()
	f.page.Layout(at(p, 4, 2, nil))

	f.container.Update(click(9, 9))
	assert.Empty(t, f.card.clicks)

	f.container.Update(click(5, 2))
	require.Len(t, f.card.clicks, 1)
	assert.Equal(t, 1, f.card.clicks[0].X)
	assert.Equal(t, 0, f.card.clicks[0].Y)
}

func TestUpdateForwardsMessages(t *testing.T) {
	f := newFixture(t, Options{})

	f.container.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, f.card.msgs, 1)
	assert.IsType(t, tea.KeyMsg{}, f.card.msgs[0])
}

func TestFrameMsgTags(t *testing.T) {
	f := newFixture(t, Options{})
	a, b := f.proxies.New(), f.proxies.New()
	f.page.Layout(at(a, 0, 0, nil))
	f.page.Layout(at(b, 10, 0, nil))
	require.NotNil(t, f.container.Frames())

	current := FrameMsg{id: f.container.id, tag: f.container.tag}
	stale := FrameMsg{id: f.container.id, tag: f.container.tag - 1}
	foreign := FrameMsg{id: f.container.id + 1000, tag: f.container.tag}

	assert.Nil(t, f.container.Update(stale))
	assert.Nil(t, f.container.Update(foreign))
	assert.NotNil(t, f.container.Update(current))
	assert.Empty(t, f.card.msgs, "frames are not forwarded")
}

func TestFramesOnlyWhileAnimating(t *testing.T) {
	f := newFixture(t, Options{})
	a, b := f.proxies.New(), f.proxies.New()

	assert.Nil(t, f.container.Init(), "nothing to animate yet")

	f.page.Layout(at(a, 0, 0, nil))
	assert.Nil(t, f.container.Frames(), "first placement jumps")

	f.page.Layout(at(b, 10, 0, nil))
	require.True(t, f.container.Animating())
	// The next message of any kind starts the frames, exactly once.
	require.NotNil(t, f.container.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Nil(t, f.container.Frames())

	f.clock.Advance(750 * time.Millisecond)
	assert.NotNil(t, f.container.Update(FrameMsg{id: f.container.id, tag: f.container.tag}), "mid-flight frame re-arms")

	f.clock.Advance(750 * time.Millisecond)
	require.False(t, f.container.Animating())
	assert.Nil(t, f.container.Update(FrameMsg{id: f.container.id, tag: f.container.tag}), "settled frame stops")
	assert.Nil(t, f.container.Update(tea.KeyMsg{Type: tea.KeyEnter}), "idle updates schedule nothing")
}

func TestCloseDetachesContainer(t *testing.T) {
	f := newFixture(t, Options{})
	p := f.proxies.New()
	f.container.Close()

	f.page.Layout(at(p, 3, 3, nil))

	assert.False(t, f.container.Style().Visible())
	assert.Nil(t, f.container.tick())
}

func TestProxyCloseReleasesElement(t *testing.T) {
	f := newFixture(t, Options{})
	p := f.proxies.New()
	f.page.Layout(at(p, 3, 3, nil))
	require.True(t, f.container.Style().Visible())

	p.Close()

	assert.Nil(t, f.proxies.Port().Tracked())
	assert.False(t, f.container.Style().Visible())
}

func TestProxyRenderWithoutChildren(t *testing.T) {
	f := newFixture(t, Options{})
	p := f.proxies.New()

	out := f.page.Layout("x" + p.Render(nil))

	assert.Equal(t, "x", out)
	rect, ok := p.Element().BoundingRect()
	require.True(t, ok)
	assert.Equal(t, dom.Rect{Left: 1, Top: 0, Width: 0, Height: 1}, rect)
}

package dom

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Element markers are private CSI sequences (ESC [ id ; kind z). They have no
// display width, so lipgloss measures and joins marked blocks correctly.
const (
	markStart = 1
	markEnd   = 2
)

func startMarker(id int) string {
	return fmt.Sprintf("\x1b[%d;%dz", id, markStart)
}

func endMarker(id int) string {
	return fmt.Sprintf("\x1b[%d;%dz", id, markEnd)
}

// marker reports whether the sequence p last decoded is an element marker.
func marker(p *ansi.Parser) (id, kind int, ok bool) {
	cmd := ansi.Cmd(p.Command())
	if cmd.Final() != 'z' || cmd.Prefix() != 0 || cmd.Intermediate() != 0 || len(p.Params()) != 2 {
		return 0, 0, false
	}
	id, _ = p.Param(0, -1)
	kind, _ = p.Param(1, 0)
	if id < 0 || (kind != markStart && kind != markEnd) {
		return 0, 0, false
	}
	return id, kind, true
}

type hook struct {
	id int
	fn func()
}

type resizeHook struct {
	id int
	fn func(width, height int)
}

// Page owns the elements of one rendered frame and runs their lifecycle.
//
// A Page is not safe for concurrent use. Drive it from the Bubble Tea event
// loop: mutate elements and call Resize from Update, call Layout from View.
type Page struct {
	logger *slog.Logger

	nextID   int
	elements map[int]*Element

	width, height int
	resized       bool

	nextHook     int
	resizeHooks  []resizeHook
	mountHooks   map[*Element][]hook
	unmountHooks map[*Element][]hook

	observers []*MutationObserver
}

// NewPage creates an empty page. A nil logger uses slog.Default().
func NewPage(logger *slog.Logger) *Page {
	if logger == nil {
		logger = slog.Default()
	}
	return &Page{
		logger:       logger,
		elements:     make(map[int]*Element),
		mountHooks:   make(map[*Element][]hook),
		unmountHooks: make(map[*Element][]hook),
	}
}

// NewElement creates a detached element owned by the page.
func (p *Page) NewElement() *Element {
	p.nextID++
	el := &Element{page: p, id: p.nextID}
	p.elements[el.id] = el
	return el
}

// Release forgets an element. Its hooks are dropped without being called.
func (p *Page) Release(el *Element) {
	if el == nil || el.page != p {
		return
	}
	if el.parent != nil {
		el.parent.RemoveChild(el)
	}
	delete(p.elements, el.id)
	delete(p.mountHooks, el)
	delete(p.unmountHooks, el)
	el.attached = false
}

// Size returns the last viewport size passed to Resize.
func (p *Page) Size() (width, height int) {
	return p.width, p.height
}

// Resize records the viewport size. Resize listeners run during the next
// Layout, after element rectangles reflect the new size.
func (p *Page) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height
	p.resized = true
}

// OnResize registers a viewport resize listener and returns its remover.
func (p *Page) OnResize(fn func(width, height int)) func() {
	p.nextHook++
	id := p.nextHook
	p.resizeHooks = append(p.resizeHooks, resizeHook{id: id, fn: fn})
	return func() {
		p.resizeHooks = slices.DeleteFunc(p.resizeHooks, func(h resizeHook) bool { return h.id == id })
	}
}

// OnMount registers fn to run when el first appears in a laid-out frame.
func (p *Page) OnMount(el *Element, fn func()) func() {
	return p.addHook(p.mountHooks, el, fn)
}

// OnBeforeUnmount registers fn to run when el disappears from the frame,
// while it still reports its last rectangle.
func (p *Page) OnBeforeUnmount(el *Element, fn func()) func() {
	return p.addHook(p.unmountHooks, el, fn)
}

func (p *Page) addHook(hooks map[*Element][]hook, el *Element, fn func()) func() {
	p.nextHook++
	id := p.nextHook
	hooks[el] = append(hooks[el], hook{id: id, fn: fn})
	return func() {
		hooks[el] = slices.DeleteFunc(hooks[el], func(h hook) bool { return h.id == id })
		if len(hooks[el]) == 0 {
			delete(hooks, el)
		}
	}
}

func (p *Page) record(r MutationRecord) {
	for _, o := range p.observers {
		o.enqueue(r)
	}
}

type point struct{ x, y int }

// Layout locates every marked element in frame, updates rectangles, runs the
// mount sweep, then delivers resize events and queued mutation records. It
// returns the frame with all markers removed.
func (p *Page) Layout(frame string) string {
	lines := strings.Split(frame, "\n")
	starts := make(map[int]point)
	ends := make(map[int]point)

	parser := ansi.GetParser()
	defer ansi.PutParser(parser)

	for y, line := range lines {
		if !strings.Contains(line, "z") {
			continue
		}
		var b strings.Builder
		var state byte
		x := 0
		for rest := line; len(rest) > 0; {
			seq, width, n, next := ansi.DecodeSequence(rest, state, parser)
			if n == 0 {
				b.WriteString(rest)
				break
			}
			state, rest = next, rest[n:]
			if ansi.HasCsiPrefix(seq) {
				if id, kind, ok := marker(parser); ok {
					if kind == markStart {
						starts[id] = point{x: x, y: y}
					} else {
						ends[id] = point{x: x, y: y}
					}
					continue
				}
			}
			b.WriteString(seq)
			x += width
		}
		lines[y] = b.String()
	}

	seen := make(map[int]Rect, len(starts))
	for id, s := range starts {
		e, ok := ends[id]
		if !ok || e.y < s.y || (e.y == s.y && e.x < s.x) {
			p.logger.Debug("unbalanced element marker", "element", id)
			continue
		}
		seen[id] = Rect{Left: s.x, Top: s.y, Width: max(e.x-s.x, 0), Height: e.y - s.y + 1}
	}

	var mounted, unmounted []*Element
	for _, id := range p.sortedIDs() {
		el := p.elements[id]
		if r, ok := seen[id]; ok {
			el.rect = r
			if !el.attached {
				mounted = append(mounted, el)
			}
		} else if el.attached {
			unmounted = append(unmounted, el)
		}
	}

	for _, el := range unmounted {
		p.logger.Debug("element unmounted", "element", el.id)
		runHooks(p.unmountHooks[el])
		el.attached = false
	}
	for _, el := range mounted {
		el.attached = true
		p.logger.Debug("element mounted", "element", el.id, "rect", el.rect.String())
		runHooks(p.mountHooks[el])
	}

	if p.resized {
		p.resized = false
		for _, h := range slices.Clone(p.resizeHooks) {
			h.fn(p.width, p.height)
		}
	}

	for _, o := range slices.Clone(p.observers) {
		if records := o.TakeRecords(); len(records) > 0 {
			o.callback(records, o)
		}
	}

	return strings.Join(lines, "\n")
}

func (p *Page) sortedIDs() []int {
	ids := make([]int, 0, len(p.elements))
	for id := range p.elements {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func runHooks(hooks []hook) {
	for _, h := range slices.Clone(hooks) {
		h.fn()
	}
}

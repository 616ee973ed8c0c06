package floating

import (
	"maps"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/starport/internal/dom"
)

// Proxy marks a landing spot for the floating component. It draws only the
// children it is given and, once mounted, becomes the element the Container
// follows.
type Proxy struct {
	page           *dom.Page
	port           *Port
	el             *dom.Element
	attrs          Attrs
	clearOnUnmount bool
	stops          []func()
}

func newProxy(page *dom.Page, port *Port, opts Options) *Proxy {
	p := &Proxy{
		page:           page,
		port:           port,
		el:             page.NewElement(),
		attrs:          Attrs{},
		clearOnUnmount: opts.ClearOnUnmount,
	}
	p.stops = append(p.stops,
		page.OnMount(p.el, func() {
			opts.Logger.Debug("proxy mounted", "element", p.el.ID())
			port.Claim(p.el, p.attrs)
		}),
		page.OnBeforeUnmount(p.el, func() {
			opts.Logger.Debug("proxy unmounting", "element", p.el.ID(), "clear", p.clearOnUnmount)
			if p.clearOnUnmount {
				port.Untrack(p.el)
			}
		}),
	)
	return p
}

// Render stores attrs and returns the marked wrapper around children.
// Children are stacked vertically; with none the wrapper is empty. The
// attributes reach the Container when this proxy mounts, and on every render
// while it is the tracked proxy.
func (p *Proxy) Render(attrs Attrs, children ...string) string {
	if !maps.Equal(p.attrs, attrs) {
		p.attrs = attrs.Clone()
		if p.port.Tracked() == p.el {
			p.port.SetAttrs(p.attrs)
		}
	}
	p.el.SetChildren(children...)
	return p.el.Mark(lipgloss.JoinVertical(lipgloss.Left, children...))
}

// Element returns the proxy's wrapping element.
func (p *Proxy) Element() *dom.Element {
	return p.el
}

// Mounted reports whether the proxy was in the last laid-out frame.
func (p *Proxy) Mounted() bool {
	return p.el.Attached()
}

// Close releases the proxy's element. The element no longer exists, so it
// stops being tracked regardless of ClearOnUnmount.
func (p *Proxy) Close() {
	for _, stop := range p.stops {
		stop()
	}
	p.stops = nil
	p.port.Untrack(p.el)
	p.page.Release(p.el)
}

// Package floating keeps one component instance alive in an overlay and moves
// it, with an eased transition, to whichever placeholder is currently on
// screen.
//
// New returns a Container, which owns and draws the component, and a Proxies
// factory. Each Proxy reserves a spot in the page; the most recently mounted
// one is followed. A typical Bubble Tea View:
//
//	frame := lipgloss.JoinVertical(lipgloss.Left, header, proxy.Render(attrs, placeholder))
//	frame = page.Layout(frame)
//	return container.Overlay(frame)
package floating

import "github.com/riordanpawley/starport/internal/dom"

// Proxies creates Proxy instances bound to one Container.
type Proxies struct {
	page *dom.Page
	port *Port
	opts Options
}

// New creates a floating pair for component on page.
func New[C Component](page *dom.Page, component C, opts Options) (*Container[C], *Proxies) {
	opts = opts.withDefaults()
	port := newPort()
	return newContainer(page, port, component, opts), &Proxies{page: page, port: port, opts: opts}
}

// New creates a Proxy sharing the Container's position state.
func (ps *Proxies) New() *Proxy {
	return newProxy(ps.page, ps.port, ps.opts)
}

// Port returns the shared position state.
func (ps *Proxies) Port() *Port {
	return ps.port
}

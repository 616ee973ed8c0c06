package floating

import (
	"maps"
	"slices"

	"github.com/riordanpawley/starport/internal/dom"
)

// Port is the position state shared by one Container and every Proxy made by
// the same New call.
//
// Proxies are the writers: each mount stores its element together with that
// proxy's attributes, last mount wins, and the tracked proxy republishes its
// attributes when they change. The Container is the single reader.
// Every write notifies subscribers synchronously, which is how the Container
// learns it must re-measure. All access happens on the Bubble Tea event loop.
type Port struct {
	tracked *dom.Element
	attrs   Attrs

	nextSub int
	subs    []subscriber
}

type subscriber struct {
	id int
	fn func()
}

func newPort() *Port {
	return &Port{attrs: Attrs{}}
}

// Tracked returns the element the Container follows, or nil.
func (p *Port) Tracked() *dom.Element {
	return p.tracked
}

// Claim makes el the followed element and attrs the forwarded attributes,
// notifying once.
func (p *Port) Claim(el *dom.Element, attrs Attrs) {
	if p.tracked == el && maps.Equal(p.attrs, attrs) {
		return
	}
	p.tracked = el
	p.attrs = attrs.Clone()
	p.notify()
}

// Untrack clears the followed element if it is el. It reports whether the
// element was cleared.
func (p *Port) Untrack(el *dom.Element) bool {
	if el == nil || p.tracked != el {
		return false
	}
	p.tracked = nil
	p.notify()
	return true
}

// Attrs returns a copy of the attributes forwarded to the component.
func (p *Port) Attrs() Attrs {
	return p.attrs.Clone()
}

// SetAttrs replaces the forwarded attributes.
func (p *Port) SetAttrs(attrs Attrs) {
	p.attrs = attrs.Clone()
	p.notify()
}

// Subscribe registers fn to run after every write and returns its remover.
func (p *Port) Subscribe(fn func()) func() {
	p.nextSub++
	id := p.nextSub
	p.subs = append(p.subs, subscriber{id: id, fn: fn})
	return func() {
		p.subs = slices.DeleteFunc(p.subs, func(s subscriber) bool { return s.id == id })
	}
}

func (p *Port) notify() {
	for _, s := range slices.Clone(p.subs) {
		s.fn()
	}
}

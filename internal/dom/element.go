package dom

import (
	"fmt"
	"slices"
)

// Element is a marked region of a rendered frame. Its rectangle is assigned by
// Page.Layout each time the frame is laid out; attributes, children and text
// are tracked so that mutation observers can react to content changes.
type Element struct {
	page   *Page
	id     int
	parent *Element

	attrs    map[string]string
	blocks   []string
	children []*Element
	text     string

	rect     Rect
	attached bool
}

// ID returns the element's page-unique identifier.
func (e *Element) ID() int {
	return e.id
}

// Parent returns the element this one was appended to, or nil.
func (e *Element) Parent() *Element {
	return e.parent
}

// Attached reports whether the element was present in the last laid-out frame.
func (e *Element) Attached() bool {
	return e.attached
}

// BoundingRect returns the rectangle from the most recent layout pass.
// The second return is false while the element is detached or nil.
func (e *Element) BoundingRect() (Rect, bool) {
	if e == nil || !e.attached {
		return Rect{}, false
	}
	return e.rect, true
}

// Attr returns the named attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr sets an attribute, recording a mutation when the value changes.
func (e *Element) SetAttr(name, value string) {
	old, ok := e.attrs[name]
	if ok && old == value {
		return
	}
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
	e.page.record(MutationRecord{Type: MutationAttributes, Target: e, AttributeName: name, OldValue: old})
}

// RemoveAttr deletes an attribute, recording a mutation if it was present.
func (e *Element) RemoveAttr(name string) {
	old, ok := e.attrs[name]
	if !ok {
		return
	}
	delete(e.attrs, name)
	e.page.record(MutationRecord{Type: MutationAttributes, Target: e, AttributeName: name, OldValue: old})
}

// Blocks returns the element's rendered child content.
func (e *Element) Blocks() []string {
	return slices.Clone(e.blocks)
}

// SetChildren replaces the element's rendered child content.
func (e *Element) SetChildren(blocks ...string) {
	if slices.Equal(e.blocks, blocks) {
		return
	}
	e.blocks = slices.Clone(blocks)
	e.page.record(MutationRecord{Type: MutationChildList, Target: e})
}

// Children returns nested elements in append order.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// AppendChild nests child under e. A child already attached elsewhere is
// moved.
func (e *Element) AppendChild(child *Element) error {
	if child.page != e.page {
		return fmt.Errorf("append element %d to %d: %w", child.id, e.id, ErrForeignElement)
	}
	for p := e; p != nil; p = p.parent {
		if p == child {
			return fmt.Errorf("append element %d to %d: %w", child.id, e.id, ErrCycle)
		}
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	e.page.record(MutationRecord{Type: MutationChildList, Target: e})
	return nil
}

// RemoveChild detaches a nested element. It is a no-op for non-children.
func (e *Element) RemoveChild(child *Element) {
	idx := slices.Index(e.children, child)
	if idx < 0 {
		return
	}
	e.children = slices.Delete(e.children, idx, idx+1)
	child.parent = nil
	e.page.record(MutationRecord{Type: MutationChildList, Target: e})
}

// Text returns the element's character data.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the element's character data.
func (e *Element) SetText(s string) {
	if s == e.text {
		return
	}
	old := e.text
	e.text = s
	e.page.record(MutationRecord{Type: MutationCharacterData, Target: e, OldValue: old})
}

// Mark wraps content in the element's zero-width markers so the next layout
// pass can locate it. Content is expected to be a rectangular block, which is
// what lipgloss renders.
func (e *Element) Mark(content string) string {
	return startMarker(e.id) + content + endMarker(e.id)
}

// contains reports whether e is other or one of its ancestors.
func (e *Element) contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

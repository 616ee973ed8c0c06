package floating

import (
	"maps"
	"strconv"
)

// Attrs are the attributes a Proxy was rendered with. The Container forwards
// the most recently written set to the floating component.
type Attrs map[string]string

// Get returns the attribute value, or "" when unset.
func (a Attrs) Get(name string) string {
	return a[name]
}

// Int parses an integer attribute, returning fallback when it is unset or
// malformed.
func (a Attrs) Int(name string, fallback int) int {
	v, ok := a[name]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Clone returns a copy that does not share storage with a.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return Attrs{}
	}
	return maps.Clone(a)
}

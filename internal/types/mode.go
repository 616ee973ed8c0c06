// Package types contains shared types used across the application.
package types

// Mode describes whether a landing spot currently hosts the floating card
type Mode int

const (
	// ModeDocked means a proxy is on screen and the card follows it
	ModeDocked Mode = iota
	// ModeUndocked means no proxy is on screen
	ModeUndocked
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeDocked:
		return "DOCKED"
	case ModeUndocked:
		return "UNDOCKED"
	default:
		return "UNKNOWN"
	}
}

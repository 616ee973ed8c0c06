package floating

import (
	"log/slog"
	"time"
)

const (
	// DefaultDurations is the transition length in milliseconds.
	DefaultDurations = 1500
	// DefaultFrameInterval paces animation frames (about 60 fps).
	DefaultFrameInterval = 16 * time.Millisecond
)

// Options configures one floating pair.
type Options struct {
	// Durations is the position transition length in milliseconds.
	Durations int
	// ClearOnUnmount stops tracking a Proxy's element when that Proxy leaves
	// the page, hiding the Container until another Proxy mounts. When false
	// the Container stays at the last tracked rectangle.
	ClearOnUnmount bool
	// FrameInterval is the delay between animation frames.
	FrameInterval time.Duration
	// Logger receives debug output. Nil uses slog.Default().
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Durations <= 0 {
		o.Durations = DefaultDurations
	}
	if o.FrameInterval <= 0 {
		o.FrameInterval = DefaultFrameInterval
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

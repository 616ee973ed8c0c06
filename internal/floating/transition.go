package floating

import (
	"math"
	"time"
)

// easeInOut is CSS ease-in-out, cubic-bezier(0.42, 0, 0.58, 1).
func easeInOut(p float64) float64 {
	return cubicBezier(0.42, 0, 0.58, 1, p)
}

// cubicBezier evaluates a CSS timing function at progress p in [0, 1].
func cubicBezier(x1, y1, x2, y2, p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	bez := func(a, b, t float64) float64 {
		u := 1 - t
		return 3*u*u*t*a + 3*u*t*t*b + t*t*t
	}
	// x(t) is monotonic for valid timing functions, so bisection converges.
	lo, hi := 0.0, 1.0
	t := p
	for range 30 {
		x := bez(x1, x2, t)
		if math.Abs(x-p) < 1e-6 {
			break
		}
		if x < p {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bez(y1, y2, t)
}

// transition moves the drawn position toward a target over a fixed duration.
type transition struct {
	duration time.Duration

	fromX, fromY float64
	toX, toY     int
	start        time.Time
	placed       bool
}

// jump places the position at (x, y) with no animation.
func (t *transition) jump(x, y int) {
	t.fromX, t.fromY = float64(x), float64(y)
	t.toX, t.toY = x, y
	t.start = time.Time{}
	t.placed = true
}

// retarget starts moving from the current position toward (x, y). It reports
// whether the target changed.
func (t *transition) retarget(x, y int, now time.Time) bool {
	if !t.placed {
		t.jump(x, y)
		return true
	}
	if x == t.toX && y == t.toY {
		return false
	}
	t.fromX, t.fromY = t.at(now)
	t.toX, t.toY = x, y
	t.start = now
	return true
}

func (t *transition) reset() {
	*t = transition{duration: t.duration}
}

// at returns the exact position at now.
func (t *transition) at(now time.Time) (float64, float64) {
	if !t.active(now) {
		return float64(t.toX), float64(t.toY)
	}
	p := easeInOut(float64(now.Sub(t.start)) / float64(t.duration))
	return t.fromX + (float64(t.toX)-t.fromX)*p, t.fromY + (float64(t.toY)-t.fromY)*p
}

// cell returns the position at now rounded to terminal cells.
func (t *transition) cell(now time.Time) (int, int) {
	x, y := t.at(now)
	return int(math.Round(x)), int(math.Round(y))
}

func (t *transition) active(now time.Time) bool {
	if t.start.IsZero() || t.duration <= 0 {
		return false
	}
	return now.Before(t.start.Add(t.duration))
}

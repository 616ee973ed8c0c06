package floating

import (
	"testing"

	"github.com/riordanpawley/starport/internal/dom"
	"github.com/stretchr/testify/assert"
)

func TestComputeStyle(t *testing.T) {
	rect := &dom.Rect{Left: 7, Top: 3, Width: 10, Height: 4}

	tests := []struct {
		name    string
		rect    *dom.Rect
		tracked bool
		want    Style
	}{
		{
			name: "never measured",
			want: Style{Position: "fixed", PointerEvents: "none"},
		},
		{
			name:    "tracked but unmeasured",
			tracked: true,
			want:    Style{Position: "fixed", PointerEvents: "none"},
		},
		{
			name: "measured but untracked",
			rect: rect,
			want: Style{Position: "fixed", PointerEvents: "none"},
		},
		{
			name:    "measured and tracked",
			rect:    rect,
			tracked: true,
			want: Style{
				Position:   "fixed",
				Opacity:    1,
				Left:       7,
				Top:        3,
				Placed:     true,
				Transition: "all 250ms ease-in-out",
			},
		},
		{
			name:    "zero rect",
			rect:    &dom.Rect{},
			tracked: true,
			want: Style{
				Position:   "fixed",
				Opacity:    1,
				Placed:     true,
				Transition: "all 250ms ease-in-out",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStyle(tt.rect, tt.tracked, 250))
		})
	}
}

func TestHiddenStyleString(t *testing.T) {
	s := ComputeStyle(nil, false, 1500)

	assert.Equal(t, "position: fixed; opacity: 0; pointer-events: none", s.String())
	assert.False(t, s.Visible())
	assert.False(t, s.Interactive())
}

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, 0.0, easeInOut(0))
	assert.Equal(t, 1.0, easeInOut(1))
	assert.InDelta(t, 0.5, easeInOut(0.5), 1e-6)

	// Slow start and end, symmetric around the midpoint.
	assert.Less(t, easeInOut(0.1), 0.1)
	assert.Greater(t, easeInOut(0.9), 0.9)
	assert.InDelta(t, 1-easeInOut(0.2), easeInOut(0.8), 1e-4)

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := easeInOut(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

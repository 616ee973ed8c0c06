package statusbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/starport/internal/types"
	"github.com/riordanpawley/starport/internal/ui/styles"
)

func TestStatusBar_RenderDockedMode(t *testing.T) {
	sb := New(types.ModeDocked, 200, styles.New())

	result := sb.Render()

	if !strings.Contains(result, "DOCKED") {
		t.Errorf("Expected status bar to contain 'DOCKED', got: %s", result)
	}
	if !strings.Contains(result, "u: undock") {
		t.Errorf("Expected status bar to contain undock hint, got: %s", result)
	}
}

func TestStatusBar_RenderUndockedMode(t *testing.T) {
	sb := New(types.ModeUndocked, 200, styles.New())

	result := sb.Render()

	if !strings.Contains(result, "UNDOCKED") {
		t.Errorf("Expected status bar to contain 'UNDOCKED', got: %s", result)
	}
	if !strings.Contains(result, "u: dock") {
		t.Errorf("Expected status bar to contain dock hint, got: %s", result)
	}
}

func TestStatusBar_RenderInfo(t *testing.T) {
	sb := New(types.ModeDocked, 300, styles.New()).WithInfo("left: 4px; top: 2px")

	result := sb.Render()

	if !strings.Contains(result, "left: 4px; top: 2px") {
		t.Errorf("Expected status bar to contain info, got: %s", result)
	}
}

func TestStatusBar_SingleLineAtWidth(t *testing.T) {
	sb := New(types.ModeDocked, 30, styles.New()).WithInfo("a long info section that cannot fit")

	result := sb.Render()

	if h := lipgloss.Height(result); h != 1 {
		t.Errorf("Expected a single line, got %d", h)
	}
	if w := lipgloss.Width(result); w != 30 {
		t.Errorf("Expected width 30, got %d", w)
	}
}

func TestGetHints(t *testing.T) {
	if GetHints(types.Mode(99)) != "" {
		t.Error("unknown mode should have no hints")
	}
}

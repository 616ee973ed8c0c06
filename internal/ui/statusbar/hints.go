package statusbar

import "github.com/riordanpawley/starport/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeDocked:
		return "←/→/↑/↓: move  1-9: jump  +/-: size  c: color  u: undock  ?: help  q: quit"
	case types.ModeUndocked:
		return "u: dock  ?: help  q: quit"
	default:
		return ""
	}
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pressure-zone/internal/core"
)

// KeyMapper translates Bubble Tea key messages to frontend actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit
	case " ", "up", "w", "k":
		return core.ActionRise
	case "m":
		return core.ActionMute
	case "ctrl+s":
		return core.ActionShot
	}
	return core.ActionNone
}

// riseKeyName returns the router key name for a rise key press. Letter
// aliases are reported as "up".
func riseKeyName(msg tea.KeyMsg) string {
	if msg.String() == " " {
		return "space"
	}
	return "up"
}

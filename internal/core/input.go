package core

// Action represents a semantic frontend action, abstracted from physical
// key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionRise         // Space, Up - primary action (start, restart, rise)
	ActionMute         // M - toggle the persisted mute flag
	ActionQuit         // Q, Ctrl+C - exit
	ActionShot         // Ctrl+S - save a text screenshot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRise:
		return "Rise"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	case ActionShot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

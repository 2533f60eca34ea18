package game

import "time"

// EventKind distinguishes pointer input, which has coordinates, from keys.
type EventKind int

const (
	EventPointer EventKind = iota
	EventKey
)

// Event is a raw input event from a frontend. X and Y are world pixels and
// only meaningful for pointer events.
type Event struct {
	Kind EventKind
	X, Y float64
	Key  string
	At   time.Time
}

// Outcome tells the frontend what the router did with an event.
type Outcome int

const (
	Ignored Outcome = iota
	MuteToggled
	Debounced
	Primary
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case MuteToggled:
		return "mute"
	case Debounced:
		return "debounced"
	case Primary:
		return "primary"
	default:
		return "unknown"
	}
}

// Target receives routed input.
type Target interface {
	Primary()
	ToggleMute()
}

// Router turns raw input into a mute toggle or a debounced primary action.
type Router struct {
	target   Target
	debounce time.Duration
	muteBox  float64

	last     time.Time
	accepted bool
}

// NewRouter creates a router forwarding to target.
func NewRouter(target Target, debounce time.Duration, muteBox float64) *Router {
	return &Router{target: target, debounce: debounce, muteBox: muteBox}
}

// riseKeys are the key names that act as the primary action.
var riseKeys = map[string]bool{
	" ":     true,
	"space": true,
	"up":    true,
}

// InMuteBox reports whether the world point lies in the reserved mute region.
func (r *Router) InMuteBox(x, y float64) bool {
	return x >= 0 && y >= 0 && x < r.muteBox && y < r.muteBox
}

// Route dispatches one event. The mute box is checked before the debounce
// window, so mute taps are never swallowed and never reach the game.
func (r *Router) Route(ev Event) Outcome {
	switch ev.Kind {
	case EventPointer:
		if r.InMuteBox(ev.X, ev.Y) {
			r.target.ToggleMute()
			return MuteToggled
		}
	case EventKey:
		if !riseKeys[ev.Key] {
			return Ignored
		}
	default:
		return Ignored
	}

	if r.accepted && ev.At.Sub(r.last) < r.debounce {
		return Debounced
	}
	r.last = ev.At
	r.accepted = true

	r.target.Primary()
	return Primary
}

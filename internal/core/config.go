package core

// RuntimeConfig contains host settings passed to a frontend at start-up.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window)
	ScreenH  int   // Screen height in characters (or pixels for the window)
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed; 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

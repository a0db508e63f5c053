package core

// RuntimeConfig contains configuration passed to the front-end at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Gravity steps per second; 0 advances only on key press
	Seed     int64 // RNG seed for virus placement and faller colors
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 0,
		Seed:     0, // 0 means use current time in platform layer
	}
}

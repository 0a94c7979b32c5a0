package types

// Input is what the host samples once per frame. The direction and feed
// flags mean "was pressed this frame"; Elapsed is the frame time in seconds.
type Input struct {
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Grow    bool
	Shrink  bool
	Elapsed float64
}

// Game constants
const (
	DefaultVelocity = 32.0 // Pixels per second, one tile each second
	InitialLength   = 4
	FoodSpawnCycles = 8 // Steps between pickup spawns
	MaxPickups      = 3
)

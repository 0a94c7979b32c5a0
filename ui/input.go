package ui

import (
	"tile-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PollInput samples this frame's key presses and frame time.
func PollInput() types.Input {
	return types.Input{
		Up:      rl.IsKeyPressed(rl.KeyUp),
		Down:    rl.IsKeyPressed(rl.KeyDown),
		Left:    rl.IsKeyPressed(rl.KeyLeft),
		Right:   rl.IsKeyPressed(rl.KeyRight),
		Grow:    rl.IsKeyPressed(rl.KeyG),
		Shrink:  rl.IsKeyPressed(rl.KeyS),
		Elapsed: float64(rl.GetFrameTime()),
	}
}

// PausePressed reports whether the pause toggle was pressed this frame.
func PausePressed() bool {
	return rl.IsKeyPressed(rl.KeySpace)
}

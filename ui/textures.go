package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tile-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrTextureLoad is wrapped by every texture loading failure.
var ErrTextureLoad = errors.New("texture load failed")

const (
	snakeHeadFile  = "snake_head.png"
	snakeNeckFile  = "snake_neck.png"
	snakeBodyFile  = "snake_body.png"
	snakeTailFile  = "snake_tail.png"
	growthFoodFile = "growth_food.png"
	shrinkFoodFile = "shrink_food.png"
)

// Textures holds every texture the renderer draws. It must be loaded after
// the window is open.
type Textures struct {
	Snake      map[game.Role]rl.Texture2D
	GrowthFood rl.Texture2D
	ShrinkFood rl.Texture2D
}

// LoadTextures loads all textures from dir. On failure the textures loaded
// so far are released.
func LoadTextures(dir string) (*Textures, error) {
	t := &Textures{Snake: make(map[game.Role]rl.Texture2D, 4)}

	snakeFiles := map[game.Role]string{
		game.RoleHead: snakeHeadFile,
		game.RoleNeck: snakeNeckFile,
		game.RoleBody: snakeBodyFile,
		game.RoleTail: snakeTailFile,
	}
	for role, name := range snakeFiles {
		tex, err := loadTexture(dir, name)
		if err != nil {
			t.Unload()
			return nil, fmt.Errorf("could not load snake %s texture: %w", role, err)
		}
		t.Snake[role] = tex
	}

	var err error
	if t.GrowthFood, err = loadTexture(dir, growthFoodFile); err != nil {
		t.Unload()
		return nil, fmt.Errorf("could not load growth food texture: %w", err)
	}
	if t.ShrinkFood, err = loadTexture(dir, shrinkFoodFile); err != nil {
		t.Unload()
		return nil, fmt.Errorf("could not load shrink food texture: %w", err)
	}

	return t, nil
}

func loadTexture(dir, name string) (rl.Texture2D, error) {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		return rl.Texture2D{}, fmt.Errorf("%w: %w", ErrTextureLoad, err)
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("%w: %s", ErrTextureLoad, path)
	}
	return tex, nil
}

func (t *Textures) Unload() {
	for _, tex := range t.Snake {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
	}
	for _, tex := range []rl.Texture2D{t.GrowthFood, t.ShrinkFood} {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
	}
}

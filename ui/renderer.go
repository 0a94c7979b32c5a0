package ui

import (
	"tile-snake/game"
	"tile-snake/game/entity"
	"tile-snake/game/grid"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const headSize = grid.TileSize + 1 // The head is drawn one pixel larger

var (
	backgroundColor = rl.NewColor(74, 38, 1, 255)
	tint            = rl.White
)

type Renderer struct {
	textures *Textures
}

func NewRenderer(textures *Textures) *Renderer {
	return &Renderer{textures: textures}
}

func (r *Renderer) Draw(g *game.Game, paused bool) {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	for _, p := range g.Pickups() {
		tex := r.textures.GrowthFood
		if p.Kind == entity.FoodShrink {
			tex = r.textures.ShrinkFood
		}
		r.drawTile(tex, p.Point.PixelX(), p.Point.PixelY(), grid.TileSize, 0)
	}

	// Tail first so the head ends up on top.
	segments := g.Renderables()
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		size := float32(grid.TileSize)
		if seg.Role == game.RoleHead {
			size = headSize
		}
		r.drawTile(r.textures.Snake[seg.Role], seg.X, seg.Y, size, game.Rotation(seg.Facing))
	}

	if paused {
		r.drawPaused()
	}

	rl.EndDrawing()
}

// drawTile draws tex over the tile whose top-left corner is (x, y), rotated
// around the tile center.
func (r *Renderer) drawTile(tex rl.Texture2D, x, y, size, rotation float32) {
	half := size / 2
	source := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dest := rl.NewRectangle(x+half, y+half, size, size)
	rl.DrawTexturePro(tex, source, dest, rl.NewVector2(half, half), rotation*rl.Rad2deg, tint)
}

func (r *Renderer) drawPaused() {
	const (
		text     = "PAUSED - press space"
		fontSize = int32(40)
	)
	width := rl.MeasureText(text, fontSize)
	x := (int32(rl.GetScreenWidth()) - width) / 2
	y := (int32(rl.GetScreenHeight()) - fontSize) / 2
	rl.DrawText(text, x, y, fontSize, rl.RayWhite)
}

package game

import (
	"time"

	"tile-snake/game/entity"
	"tile-snake/game/grid"
	"tile-snake/game/manager"
	"tile-snake/game/types"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Config holds the startup values a Game is built from.
type Config struct {
	Width    float32 // viewport width in pixels
	Height   float32 // viewport height in pixels
	Velocity float64 // pixels per second
	Food     bool    // spawn grow/shrink pickups
	Seed     uint64  // pickup RNG seed; 0 picks one from the clock
	Logger   *log.Logger
}

// Game owns all mutable state of one session. It is driven by a single
// host loop and is not safe for concurrent use.
type Game struct {
	UUID      string
	Grid      grid.Grid
	Snake     *entity.Snake
	Food      *manager.FoodManager // nil when pickups are disabled
	Steps     int
	StartTime time.Time

	logger *log.Logger
}

func NewGame(cfg Config) *Game {
	gameUUID := uuid.New().String()

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("game", gameUUID)

	velocity := cfg.Velocity
	if velocity <= 0 {
		velocity = types.DefaultVelocity
	}

	g := grid.New(cfg.Width, cfg.Height)
	start := g.PointAt(cfg.Width/2, cfg.Height/2)

	game := &Game{
		UUID:      gameUUID,
		Grid:      g,
		Snake:     entity.NewSnake(g, start, velocity),
		StartTime: time.Now(),
		logger:    logger,
	}

	if cfg.Food {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(game.StartTime.UnixNano())
		}
		game.Food = manager.NewFoodManager(g, seed)
	}

	logger.Info("Game created",
		"rows", g.Rows(),
		"columns", g.Columns(),
		"start_x", start.X(),
		"start_y", start.Y(),
		"velocity", velocity,
		"food", cfg.Food)

	return game
}

// Tick runs one frame: latch input, accumulate travel, and resolve a step
// when a full tile has been covered.
func (g *Game) Tick(in types.Input) {
	before := g.Snake.Direction()
	pending := g.Snake.FoodSource()

	g.Snake.HandleInput(in)

	if d := g.Snake.Direction(); d != before {
		g.logger.Debug("Direction latched", "from", before, "to", d)
	}
	if f := g.Snake.FoodSource(); f != pending {
		g.logger.Debug("Feed requested", "effect", f)
	}

	if !g.Snake.Update(g.Grid, in.Elapsed) {
		return
	}
	g.Steps++

	if g.Food == nil {
		return
	}
	if p, ok := g.Food.Consume(g.Snake); ok {
		g.logger.Debug("Pickup eaten", "effect", p.Kind, "x", p.Point.X(), "y", p.Point.Y())
	}
	if p, ok := g.Food.Update(g.Snake); ok {
		g.logger.Debug("Pickup spawned", "effect", p.Kind, "x", p.Point.X(), "y", p.Point.Y())
	}
}

// Pickups returns the food on the board, or nil when pickups are disabled.
func (g *Game) Pickups() []manager.Pickup {
	if g.Food == nil {
		return nil
	}
	return g.Food.GetFoodList()
}

// ElapsedTime returns the session length in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}

// Close logs the end of the session.
func (g *Game) Close() {
	g.logger.Info("Game finished",
		"steps", g.Steps,
		"length", g.Snake.Len(),
		"seconds", g.ElapsedTime())
}

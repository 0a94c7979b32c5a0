package main

import (
	"flag"
	"os"
	"time"

	"tile-snake/game"
	"tile-snake/game/types"
	"tile-snake/ui"
	"tile-snake/ui/term"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	width := flag.Int("width", 1600, "Window width in pixels")
	height := flag.Int("height", 1000, "Window height in pixels")
	velocity := flag.Float64("velocity", types.DefaultVelocity, "Snake speed in pixels per second")
	assets := flag.String("assets", "assets", "Directory holding the textures")
	frontend := flag.String("frontend", "raylib", "Front end: raylib or term")
	fps := flag.Int("fps", 60, "Target frames per second")
	food := flag.Bool("food", true, "Spawn grow and shrink pickups")
	seed := flag.Uint64("seed", 0, "Pickup seed (0 = from clock)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	logFile := flag.String("log", "snake.log", "Log file for the term front end")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := game.Config{
		Velocity: *velocity,
		Food:     *food,
		Seed:     *seed,
		Logger:   logger,
	}

	switch *frontend {
	case "raylib":
		runRaylib(cfg, int32(*width), int32(*height), int32(*fps), *assets, logger)
	case "term":
		runTerm(cfg, *fps, *logFile, logger)
	default:
		logger.Fatal("Unknown front end", "frontend", *frontend)
	}
}

func runRaylib(cfg game.Config, width, height, fps int32, assets string, logger *log.Logger) {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(fps)

	textures, err := ui.LoadTextures(assets)
	if err != nil {
		logger.Fatal("Could not load textures", "dir", assets, "err", err)
	}
	defer textures.Unload()

	cfg.Width = float32(rl.GetScreenWidth())
	cfg.Height = float32(rl.GetScreenHeight())
	g := game.NewGame(cfg)
	defer g.Close()

	renderer := ui.NewRenderer(textures)
	paused := true

	// Escape is raylib's default exit key.
	for !rl.WindowShouldClose() {
		if ui.PausePressed() {
			paused = !paused
		}
		if !paused {
			g.Tick(ui.PollInput())
		}
		renderer.Draw(g, paused)
	}
}

func runTerm(cfg game.Config, fps int, logFile string, logger *log.Logger) {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.Fatal("Could not open log file", "path", logFile, "err", err)
	}
	defer f.Close()
	logger.SetOutput(f)

	if fps <= 0 {
		fps = 60
	}

	model := term.NewModel(func(w, h float32) *game.Game {
		c := cfg
		c.Width, c.Height = w, h
		return game.NewGame(c)
	}, time.Second/time.Duration(fps))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("Terminal front end failed", "err", err)
		os.Exit(1)
	}
}

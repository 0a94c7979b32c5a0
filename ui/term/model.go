// Package term runs the game in a terminal, one character cell per tile.
package term

import (
	"strings"
	"time"

	"tile-snake/game"
	"tile-snake/game/entity"
	"tile-snake/game/grid"
	"tile-snake/game/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NewGameFunc builds the game once the terminal size is known.
type NewGameFunc func(width, height float32) *game.Game

type frameMsg time.Time

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("94")).
			Background(lipgloss.Color("52"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	headStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	growStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render("+")
	shrinkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("-")

	headRunes = map[grid.Direction]rune{
		grid.Up:    '▲',
		grid.Down:  '▼',
		grid.Left:  '◀',
		grid.Right: '▶',
	}
	neckRunes = map[grid.Direction]rune{
		grid.Up:    '║',
		grid.Down:  '║',
		grid.Left:  '═',
		grid.Right: '═',
	}
	bodyRunes = map[grid.Direction]rune{
		grid.Up:    '│',
		grid.Down:  '│',
		grid.Left:  '─',
		grid.Right: '─',
	}
	tailRune = '•'
)

const statusLines = 1

type Model struct {
	newGame  NewGameFunc
	game     *game.Game
	interval time.Duration
	pending  types.Input
	last     time.Time
	paused   bool
}

// NewModel returns a model that ticks every interval. The game starts paused.
func NewModel(newGame NewGameFunc, interval time.Duration) Model {
	return Model{
		newGame:  newGame,
		interval: interval,
		paused:   true,
	}
}

// Game returns the running game, or nil before the first window size.
func (m Model) Game() *game.Game { return m.game }

func (m Model) Paused() bool { return m.paused }

func (m Model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// The grid is fixed for the whole session, later resizes are ignored.
		if m.game == nil {
			cols := msg.Width - 2 // border
			rows := msg.Height - 2 - statusLines
			m.game = m.newGame(float32(cols*grid.TileSize), float32(rows*grid.TileSize))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			if m.game != nil {
				m.game.Close()
			}
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "up", "k":
			m.pending.Up = true
		case "down", "j":
			m.pending.Down = true
		case "left", "h":
			m.pending.Left = true
		case "right", "l":
			m.pending.Right = true
		case "g":
			m.pending.Grow = true
		case "s":
			m.pending.Shrink = true
		}
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		if m.game == nil || m.last.IsZero() {
			// Nothing to measure elapsed time against yet; keep the keys.
			m.last = now
			return m, m.nextFrame()
		}
		// Keys pressed while paused are dropped, as in the window front end.
		if !m.paused {
			in := m.pending
			in.Elapsed = now.Sub(m.last).Seconds()
			m.game.Tick(in)
		}
		m.pending = types.Input{}
		m.last = now
		return m, m.nextFrame()
	}

	return m, nil
}

func (m Model) View() string {
	if m.game == nil {
		return "Loading..."
	}

	g := m.game
	rows, cols := g.Grid.Rows(), g.Grid.Columns()
	if rows <= 0 || cols <= 0 {
		return "Terminal too small"
	}

	cells := make([][]string, rows)
	for y := range cells {
		cells[y] = make([]string, cols)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}

	for _, p := range g.Pickups() {
		cell := growStyle
		if p.Kind == entity.FoodShrink {
			cell = shrinkStyle
		}
		put(cells, p.Point.X(), p.Point.Y(), cell)
	}

	segments := g.Renderables()
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		x, y := int(seg.X)/grid.TileSize, int(seg.Y)/grid.TileSize
		put(cells, x, y, segmentCell(seg))
	}

	var b strings.Builder
	for y, row := range cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(row, ""))
	}

	status := "arrows/hjkl move · g grow · s shrink · space pause · q quit"
	if m.paused {
		status = "PAUSED · " + status
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		boardStyle.Render(b.String()),
		statusStyle.Render(status))
}

func segmentCell(seg game.Renderable) string {
	switch seg.Role {
	case game.RoleHead:
		return headStyle.Render(string(headRunes[seg.Facing]))
	case game.RoleNeck:
		return bodyStyle.Render(string(neckRunes[seg.Facing]))
	case game.RoleBody:
		return bodyStyle.Render(string(bodyRunes[seg.Facing]))
	default:
		return bodyStyle.Render(string(tailRune))
	}
}

// put ignores cells outside the board; the snake may leave the grid.
func put(cells [][]string, x, y int, s string) {
	if y < 0 || y >= len(cells) || x < 0 || x >= len(cells[y]) {
		return
	}
	cells[y][x] = s
}

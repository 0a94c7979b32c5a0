package manager

import (
	"testing"

	"tile-snake/game/entity"
	"tile-snake/game/grid"
	"tile-snake/game/types"
)

func onSnake(s *entity.Snake, p grid.Point) bool {
	for _, seg := range s.Segments() {
		if seg.Point == p {
			return true
		}
	}
	return false
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	g := grid.New(256, 64) // 8x2
	s := entity.NewSnake(g, g.TileAt(4, 0), types.DefaultVelocity)

	for seed := uint64(1); seed <= 50; seed++ {
		fm := NewFoodManager(g, seed)
		p, ok := fm.GenerateFood(s)
		if !ok {
			t.Fatalf("seed %d: no food generated", seed)
		}
		if !g.Contains(p.Point) {
			t.Fatalf("seed %d: food off grid at %+v", seed, p.Point)
		}
		if onSnake(s, p.Point) {
			t.Fatalf("seed %d: food under the snake at %+v", seed, p.Point)
		}
		if p.Kind != entity.FoodGrow && p.Kind != entity.FoodShrink {
			t.Fatalf("seed %d: kind = %v", seed, p.Kind)
		}
	}
}

func TestGenerateFoodFullBoard(t *testing.T) {
	g := grid.New(128, 32) // one row of four tiles
	s := entity.NewSnake(g, g.TileAt(3, 0), types.DefaultVelocity)
	fm := NewFoodManager(g, 7)

	if _, ok := fm.GenerateFood(s); ok {
		t.Fatal("generated food on a full board")
	}
	if _, ok := fm.Update(s); ok {
		t.Fatal("Update spawned on a full board")
	}
}

func TestGenerateFoodEmptyGrid(t *testing.T) {
	g := grid.New(0, 0)
	s := entity.NewSnake(g, g.TileAt(0, 0), types.DefaultVelocity)
	if _, ok := NewFoodManager(g, 1).GenerateFood(s); ok {
		t.Fatal("generated food on a zero sized grid")
	}
}

func TestUpdateSpawnSchedule(t *testing.T) {
	g := grid.New(1600, 1000)
	s := entity.NewSnake(g, g.PointAt(800, 500), types.DefaultVelocity)
	fm := NewFoodManager(g, 42)

	if _, ok := fm.Update(s); !ok {
		t.Fatal("empty board should spawn immediately")
	}
	for i := 1; i < types.FoodSpawnCycles; i++ {
		if _, ok := fm.Update(s); ok {
			t.Fatalf("spawned after %d steps, want %d", i, types.FoodSpawnCycles)
		}
	}
	if _, ok := fm.Update(s); !ok {
		t.Fatal("no spawn after a full cycle")
	}

	for i := 0; i < types.FoodSpawnCycles*types.MaxPickups*2; i++ {
		fm.Update(s)
	}
	if n := len(fm.GetFoodList()); n != types.MaxPickups {
		t.Fatalf("pickups = %d, want cap %d", n, types.MaxPickups)
	}
}

func TestConsume(t *testing.T) {
	g := grid.New(1600, 1000)
	s := entity.NewSnake(g, g.PointAt(800, 500), types.DefaultVelocity)
	fm := NewFoodManager(g, 1)

	ahead := g.Advance(s.Head().Point, grid.Right)
	fm.AddFood(Pickup{Point: ahead, Kind: entity.FoodGrow})

	if _, ok := fm.Consume(s); ok {
		t.Fatal("consumed food that is not under the head")
	}

	s.Update(g, 1)
	got, ok := fm.Consume(s)
	if !ok || got.Kind != entity.FoodGrow {
		t.Fatalf("Consume = %+v, %v; want grow pickup", got, ok)
	}
	if s.FoodSource() != entity.FoodGrow {
		t.Fatalf("food source = %v, want grow", s.FoodSource())
	}
	if len(fm.GetFoodList()) != 0 {
		t.Fatal("pickup still on the board")
	}
}

func TestConsumeKeepsPickupWhileEffectPending(t *testing.T) {
	g := grid.New(1600, 1000)
	s := entity.NewSnake(g, g.PointAt(800, 500), types.DefaultVelocity)
	fm := NewFoodManager(g, 1)

	fm.AddFood(Pickup{Point: s.Head().Point, Kind: entity.FoodShrink})
	s.Feed(entity.FoodGrow)

	if _, ok := fm.Consume(s); ok {
		t.Fatal("consumed while another effect was pending")
	}
	if s.FoodSource() != entity.FoodGrow {
		t.Fatalf("food source = %v, want grow", s.FoodSource())
	}
	if len(fm.GetFoodList()) != 1 {
		t.Fatal("pickup was removed")
	}
}

func TestRemoveFood(t *testing.T) {
	g := grid.New(320, 320)
	fm := NewFoodManager(g, 1)
	a, b, c := g.TileAt(1, 1), g.TileAt(2, 2), g.TileAt(3, 3)
	for _, p := range []grid.Point{a, b, c} {
		fm.AddFood(Pickup{Point: p, Kind: entity.FoodGrow})
	}

	fm.RemoveFood(a)
	fm.RemoveFood(g.TileAt(9, 9))

	list := fm.GetFoodList()
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	for _, f := range list {
		if f.Point == a {
			t.Fatal("removed pickup still present")
		}
	}
}

func TestGenerateFoodIgnoresSegmentsOffGrid(t *testing.T) {
	g := grid.New(96, 32) // one row of three tiles
	// Head at (0, 0), the rest trails off the left edge.
	s := entity.NewSnake(g, g.TileAt(0, 0), types.DefaultVelocity)

	for seed := uint64(1); seed <= 20; seed++ {
		p, ok := NewFoodManager(g, seed).GenerateFood(s)
		if !ok {
			t.Fatalf("seed %d: no food generated", seed)
		}
		if p.Point != g.TileAt(1, 0) && p.Point != g.TileAt(2, 0) {
			t.Fatalf("seed %d: food at %+v, want a free tile right of the head", seed, p.Point)
		}
	}
}

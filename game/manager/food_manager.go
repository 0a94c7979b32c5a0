package manager

import (
	"tile-snake/game/entity"
	"tile-snake/game/grid"
	"tile-snake/game/types"

	"golang.org/x/exp/rand"
)

// Pickup is a food item lying on a tile.
type Pickup struct {
	Point grid.Point
	Kind  entity.FoodSource
}

type FoodManager struct {
	grid       grid.Grid
	foodList   []Pickup
	spawnTimer int
	rng        *rand.Rand
}

func NewFoodManager(g grid.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid:     g,
		foodList: make([]Pickup, 0, types.MaxPickups),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Update is called once per snake step. It spawns a pickup right away when
// the board is empty, then one every FoodSpawnCycles steps up to MaxPickups.
func (fm *FoodManager) Update(snake *entity.Snake) (Pickup, bool) {
	fm.spawnTimer++

	if len(fm.foodList) > 0 && (fm.spawnTimer < types.FoodSpawnCycles || len(fm.foodList) >= types.MaxPickups) {
		return Pickup{}, false
	}

	p, ok := fm.GenerateFood(snake)
	if !ok {
		return Pickup{}, false
	}
	fm.foodList = append(fm.foodList, p)
	fm.spawnTimer = 0
	return p, true
}

// GenerateFood picks a random free tile and a random kind. It fails when
// no tile is free.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (Pickup, bool) {
	occupied := make(map[[2]int]bool, snake.Len()+len(fm.foodList))
	for _, seg := range snake.Segments() {
		// Segments off the board can't block a spawn.
		if fm.grid.Contains(seg.Point) {
			occupied[[2]int{seg.Point.X(), seg.Point.Y()}] = true
		}
	}
	for _, f := range fm.foodList {
		occupied[[2]int{f.Point.X(), f.Point.Y()}] = true
	}

	var free []grid.Point
	for y := 0; y < fm.grid.Rows(); y++ {
		for x := 0; x < fm.grid.Columns(); x++ {
			if !occupied[[2]int{x, y}] {
				free = append(free, fm.grid.TileAt(x, y))
			}
		}
	}
	if len(free) == 0 {
		return Pickup{}, false
	}

	kind := entity.FoodGrow
	if fm.rng.Intn(2) == 1 {
		kind = entity.FoodShrink
	}
	return Pickup{Point: free[fm.rng.Intn(len(free))], Kind: kind}, true
}

// Consume feeds the snake with the pickup under its head. The pickup stays
// on the board when the snake already has an effect pending.
func (fm *FoodManager) Consume(snake *entity.Snake) (Pickup, bool) {
	head := snake.Head().Point
	for _, f := range fm.foodList {
		if f.Point != head {
			continue
		}
		if !snake.Feed(f.Kind) {
			return Pickup{}, false
		}
		fm.RemoveFood(f.Point)
		return f, true
	}
	return Pickup{}, false
}

// GetFoodList returns a copy of the pickups on the board.
func (fm *FoodManager) GetFoodList() []Pickup {
	out := make([]Pickup, len(fm.foodList))
	copy(out, fm.foodList)
	return out
}

func (fm *FoodManager) AddFood(p Pickup) {
	fm.foodList = append(fm.foodList, p)
}

func (fm *FoodManager) RemoveFood(p grid.Point) {
	for i, f := range fm.foodList {
		if f.Point == p {
			// Swap with the last element and truncate.
			fm.foodList[i] = fm.foodList[len(fm.foodList)-1]
			fm.foodList = fm.foodList[:len(fm.foodList)-1]
			return
		}
	}
}

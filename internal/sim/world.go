package sim

import (
	"fmt"
	"math/rand"

	"gridnav/pkg/grid"
)

// Параметры генерации поля препятствий
const (
	maxRooms = 8
	minSize  = 4
	maxSize  = 10
)

// Rect - вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// World - поле демо-симуляции: карта проходимости и карта высот
// поверх одной топологии.
type World struct {
	Topo     *grid.Topology
	Walkable *grid.BoolLayer
	Heights  *grid.IntLayer
}

// GenerateWorld строит поле препятствий: сплошная стена, в которой
// вырезаются комнаты, соединённые Г-образными коридорами. Высоты
// внутри проходимых клеток - пологий холм к центру карты, чтобы
// метрике высот было что штрафовать.
func GenerateWorld(cfg Config, rng *rand.Rand) (*World, error) {
	if cfg.Width < maxSize+2 || cfg.Height < maxSize+2 {
		return nil, fmt.Errorf("world %dx%d is too small to carve rooms", cfg.Width, cfg.Height)
	}

	topo, err := grid.NewTopology([]int{cfg.Width, cfg.Height}, cfg.Periodic)
	if err != nil {
		return nil, err
	}

	// 1. Заполняем стенами
	walkable := grid.NewBoolLayer(topo, false)

	// 2. Вырезаем комнаты
	var rooms []Rect
	for i := 0; i < maxRooms; i++ {
		w := randRange(rng, minSize, maxSize)
		h := randRange(rng, minSize, maxSize)
		x := randRange(rng, 1, cfg.Width-w-1)
		y := randRange(rng, 1, cfg.Height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}
		failed := false
		for _, other := range rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		carveRoom(walkable, newRoom)

		// Соединяем с предыдущей комнатой
		if len(rooms) > 0 {
			prevX, prevY := rooms[len(rooms)-1].Center()
			currX, currY := newRoom.Center()
			if rng.Intn(2) == 0 {
				carveHCorridor(walkable, prevX, currX, prevY)
				carveVCorridor(walkable, prevY, currY, currX)
			} else {
				carveVCorridor(walkable, prevY, currY, prevX)
				carveHCorridor(walkable, prevX, currX, currY)
			}
		}
		rooms = append(rooms, newRoom)
	}

	if len(rooms) == 0 {
		return nil, fmt.Errorf("world generation carved no rooms")
	}

	// 3. Холм высот к центру карты
	heights := grid.NewIntLayer(topo)
	cx, cy := cfg.Width/2, cfg.Height/2
	for idx := 0; idx < topo.Len(); idx++ {
		p := topo.PointAt(idx)
		dx, dy := abs(p[0]-cx), abs(p[1]-cy)
		dist := dx
		if dy > dist {
			dist = dy
		}
		h := 10 - dist
		if h < 0 {
			h = 0
		}
		heights.Set(p, h)
	}

	return &World{Topo: topo, Walkable: walkable, Heights: heights}, nil
}

// RandomWalkableCell возвращает случайную проходимую клетку.
func (w *World) RandomWalkableCell(rng *rand.Rand) grid.Point {
	for {
		idx := rng.Intn(w.Topo.Len())
		if w.Walkable.AtIndex(idx) {
			return w.Topo.PointAt(idx)
		}
	}
}

func carveRoom(walkable *grid.BoolLayer, room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			walkable.Set(grid.Point{x, y}, true)
		}
	}
}

func carveHCorridor(walkable *grid.BoolLayer, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		walkable.Set(grid.Point{x, y}, true)
	}
}

func carveVCorridor(walkable *grid.BoolLayer, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		walkable.Set(grid.Point{x, y}, true)
	}
}

func randRange(rng *rand.Rand, lo, hi int) int {
	return rng.Intn(hi-lo+1) + lo
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

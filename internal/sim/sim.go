package sim

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"gridnav/pkg/grid"
	"gridnav/pkg/logger"
	"gridnav/pkg/pathfind"
)

// Agent - участник демо-симуляции. Следопыт про него знает только
// целочисленный ключ; позицию ведёт симуляция.
type Agent struct {
	Key    int
	Pos    grid.Point
	Target grid.Point
	Trips  int // сколько маршрутов агент прошёл до конца
}

// Simulation - демо-хост следопыта: мир с препятствиями и агенты,
// блуждающие между случайными целями. Каждый тик: стоящие агенты
// получают новую цель, идущие снимают очередную путевую точку.
type Simulation struct {
	cfg    Config
	world  *World
	pf     *pathfind.Pathfinder
	agents []*Agent
	rng    *rand.Rand
	tick   int
	log    *logrus.Entry

	// OnTick вызывается после каждого шага со свежим снапшотом
	// (его забирает websocket-рассылка). Может быть nil.
	OnTick func(Snapshot)

	// mu защищает состояние от конкурентного чтения снапшотов.
	// Внутри шага следопыт никогда не трогается извне.
	mu sync.RWMutex
}

// New генерирует мир и расставляет агентов. Весь рандом идёт от
// cfg.Seed: одинаковый сид - одинаковая симуляция.
func New(cfg Config) (*Simulation, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	world, err := GenerateWorld(cfg, rng)
	if err != nil {
		return nil, err
	}

	opts := []pathfind.Option{pathfind.WithWalkable(world.Walkable)}
	if cfg.Periodic {
		opts = append(opts, pathfind.WithPeriodic())
	}
	if cfg.UseHeightmap {
		opts = append(opts, pathfind.WithMetric(pathfind.NewHeightMap(world.Heights, nil)))
	}

	pf, err := pathfind.New([]int{cfg.Width, cfg.Height}, opts...)
	if err != nil {
		return nil, err
	}

	agents := make([]*Agent, 0, cfg.Agents)
	for key := 1; key <= cfg.Agents; key++ {
		pos := world.RandomWalkableCell(rng)
		agents = append(agents, &Agent{Key: key, Pos: pos, Target: pos.Clone()})
	}

	return &Simulation{
		cfg:    cfg,
		world:  world,
		pf:     pf,
		agents: agents,
		rng:    rng,
		log:    logger.WithComponent("sim"),
	}, nil
}

// Pathfinder отдает следопыта симуляции (для интроспекции).
func (s *Simulation) Pathfinder() *pathfind.Pathfinder { return s.pf }

// Step выполняет один тик симуляции.
func (s *Simulation) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tick++

	// 1. Стоящие агенты выбирают новые цели; маршруты прокладываем
	// пакетно - поиски независимы и идут параллельно.
	routes := make(map[int]pathfind.Route)
	for _, a := range s.agents {
		if !s.pf.IsStationary(a.Key) {
			continue
		}
		a.Target = s.world.RandomWalkableCell(s.rng)
		routes[a.Key] = pathfind.Route{From: a.Pos, To: a.Target}
	}
	if len(routes) > 0 {
		routed := s.pf.SetTargets(routes)
		s.log.WithFields(logrus.Fields{
			"tick":    s.tick,
			"planned": len(routes),
			"routed":  routed,
		}).Debug("planned new routes")
	}

	// 2. Двигаем идущих. Следопыт выдает клетку, позицию применяет хост.
	arrived := 0
	for _, a := range s.agents {
		next, ok := s.pf.Advance(a.Key)
		if !ok {
			continue
		}
		a.Pos = next
		if s.pf.IsStationary(a.Key) {
			a.Trips++
			arrived++
		}
	}
	if arrived > 0 {
		s.log.WithFields(logrus.Fields{"tick": s.tick, "arrived": arrived}).Debug("agents arrived")
	}
}

// Run крутит симуляцию до отмены контекста.
func (s *Simulation) Run(ctx context.Context) {
	interval := s.cfg.TickInterval
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.WithFields(logrus.Fields{
		"seed":   s.cfg.Seed,
		"size":   []int{s.cfg.Width, s.cfg.Height},
		"agents": len(s.agents),
	}).Info("simulation started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info("simulation stopped")
			return
		case <-ticker.C:
			s.Step()
			if s.OnTick != nil {
				s.OnTick(s.Snapshot())
			}
		}
	}
}

package pathfind

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"gridnav/pkg/grid"
)

// Pathfinder владеет конфигурацией поиска и очередями путей агентов.
// Конфигурация после конструирования неизменна; мутируются только
// карта проходимости (снаружи, между поисками) и мапа agent -> Path.
//
// Синхронизацию внешних мутаций обеспечивает хост: один поиск или
// правка карты за тик. Сами поиски состояние не разделяют.
type Pathfinder struct {
	topo          *grid.Topology
	offsets       []grid.Point
	moore         bool
	admissibility float64
	metric        CostMetric
	walkable      *grid.BoolLayer

	// Ключ агента назначает хост. Записи удаляются при Remove
	// и при исчерпании пути в Advance.
	paths map[int]*Path
}

type settings struct {
	periodic      bool
	vonNeumann    bool
	admissibility float64
	walkable      *grid.BoolLayer
	metric        CostMetric
}

// Option настраивает следопыта при конструировании.
type Option func(*settings)

// WithPeriodic замыкает решётку в тор: каждая ось заворачивается.
func WithPeriodic() Option {
	return func(s *settings) { s.periodic = true }
}

// WithVonNeumann ограничивает соседство осевыми шагами (без диагоналей).
func WithVonNeumann() Option {
	return func(s *settings) { s.vonNeumann = true }
}

// WithAdmissibility задает коэффициент релаксации eps >= 0.
// Ноль - оптимальный поиск, больше - быстрее, но путь может быть длиннее.
func WithAdmissibility(eps float64) Option {
	return func(s *settings) { s.admissibility = eps }
}

// WithWalkable задает карту проходимости (по умолчанию всё проходимо).
func WithWalkable(mask *grid.BoolLayer) Option {
	return func(s *settings) { s.walkable = mask }
}

// WithMetric задает метрику стоимости (по умолчанию DirectDistance).
func WithMetric(m CostMetric) Option {
	return func(s *settings) { s.metric = m }
}

// New конструирует следопыта для решётки с размерами dims.
// Ошибки конфигурации (неположительные размеры, eps < 0, несовпадение
// форм карт) фатальны: следопыт не создается.
func New(dims []int, opts ...Option) (*Pathfinder, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	topo, err := grid.NewTopology(dims, s.periodic)
	if err != nil {
		return nil, err
	}

	if s.admissibility < 0 {
		return nil, fmt.Errorf("admissibility must be non-negative, got %v", s.admissibility)
	}

	if s.walkable == nil {
		s.walkable = grid.NewBoolLayer(topo, true)
	} else if err := grid.SameShape(s.walkable.Topology().Dims, dims); err != nil {
		return nil, fmt.Errorf("walkable mask: %w", err)
	}

	if s.metric == nil {
		s.metric = NewDirectDistance(len(dims))
	}
	if err := validateMetric(s.metric, dims); err != nil {
		return nil, err
	}

	var offsets []grid.Point
	if s.vonNeumann {
		offsets = grid.VonNeumannOffsets(len(dims))
	} else {
		offsets = grid.MooreOffsets(len(dims))
	}

	return &Pathfinder{
		topo:          topo,
		offsets:       offsets,
		moore:         !s.vonNeumann,
		admissibility: s.admissibility,
		metric:        s.metric,
		walkable:      s.walkable,
		paths:         make(map[int]*Path),
	}, nil
}

// Topology возвращает топологию решётки.
func (pf *Pathfinder) Topology() *grid.Topology { return pf.topo }

// Cost оценивает стоимость перемещения между клетками по активной
// метрике с учётом периодичности.
func (pf *Pathfinder) Cost(from, to grid.Point) int {
	return pf.metric.Estimate(pf.topo, pf.moore, from, to)
}

// FindPath ищет маршрут от from к to, не трогая состояние агентов.
// Пустой путь означает "маршрута нет" или "уже на месте".
func (pf *Pathfinder) FindPath(from, to grid.Point) *Path {
	return pf.findPath(from, to).path
}

// SetTarget прокладывает маршрут агента и замещает его текущий путь.
// Возвращает true, если маршрут существует.
func (pf *Pathfinder) SetTarget(agent int, from, to grid.Point) bool {
	path := pf.findPath(from, to).path
	pf.paths[agent] = path
	return !path.Empty()
}

// Route - пара старт/цель для пакетной прокладки маршрутов.
type Route struct {
	From, To grid.Point
}

// SetTargets прокладывает маршруты нескольких агентов за один вызов.
// Поиски независимы (состояние у каждого своё), поэтому выполняются
// параллельно; пути фиксируются уже последовательно, после всех поисков.
// Карту проходимости в это время менять нельзя.
// Возвращает число агентов, получивших непустой маршрут.
func (pf *Pathfinder) SetTargets(routes map[int]Route) int {
	keys := make([]int, 0, len(routes))
	for k := range routes {
		keys = append(keys, k)
	}
	results := make([]*Path, len(keys))

	var g errgroup.Group
	for i, k := range keys {
		i, r := i, routes[k]
		g.Go(func() error {
			results[i] = pf.findPath(r.From, r.To).path
			return nil
		})
	}
	_ = g.Wait() // поиски ошибок не возвращают

	routed := 0
	for i, k := range keys {
		pf.paths[k] = results[i]
		if !results[i].Empty() {
			routed++
		}
	}
	return routed
}

// IsStationary сообщает, стоит ли агент на месте: у него нет записи
// или его путь пуст. Неизвестный ключ - это штатно "нет пути".
func (pf *Pathfinder) IsStationary(agent int) bool {
	return pf.paths[agent].Empty()
}

// Advance снимает очередную путевую точку агента. Применить её как
// новую позицию обязан хост - следопыт агентов не двигает.
// Для неизвестного ключа или пустого пути возвращает (nil, false).
func (pf *Pathfinder) Advance(agent int) (grid.Point, bool) {
	path, ok := pf.paths[agent]
	if !ok {
		return nil, false
	}
	next, ok := path.PopFront()
	if path.Empty() {
		delete(pf.paths, agent) // путь исчерпан - запись больше не нужна
	}
	return next, ok
}

// Remaining возвращает число путевых точек, оставшихся агенту.
func (pf *Pathfinder) Remaining(agent int) int {
	return pf.paths[agent].Len()
}

// Remove удаляет путь агента (агент покинул симуляцию).
func (pf *Pathfinder) Remove(agent int) {
	delete(pf.paths, agent)
}

// Heightmap возвращает активную карту высот, если метрика - HeightMap,
// иначе nil. Для интроспекции и визуализации на стороне хоста.
func (pf *Pathfinder) Heightmap() *grid.IntLayer {
	if hm, ok := pf.metric.(*HeightMap); ok {
		return hm.Heights
	}
	return nil
}

// Walkmap возвращает карту проходимости. Хост может править её между
// поисками; во время поиска карта должна оставаться неизменной.
func (pf *Pathfinder) Walkmap() *grid.BoolLayer {
	return pf.walkable
}

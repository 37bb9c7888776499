package pathfind

import (
	"fmt"
	"math"
	"sort"

	"gridnav/pkg/grid"
)

// CostMetric оценивает стоимость перемещения между двумя клетками.
// Оценка используется и как эвристика поиска, и как цена шага между
// соседями, поэтому обязана быть неотрицательной и симметричной.
// Периодичность уже учтена: расстояния считаются через topo.Delta.
//
// Хост может подставить собственную метрику, реализовав этот интерфейс.
type CostMetric interface {
	Estimate(topo *grid.Topology, moore bool, from, to grid.Point) int
}

// DefaultCosts возвращает таблицу цен по умолчанию для размерности d:
// floor(10·√k) за шаг, меняющий k осей одновременно (10, 14, 17, ...).
func DefaultCosts(d int) []int {
	costs := make([]int, d)
	for k := 1; k <= d; k++ {
		costs[k-1] = int(math.Floor(10 * math.Sqrt(float64(k))))
	}
	return costs
}

// DirectDistance - метрика кратчайшего пути по пустой решётке.
// Costs[k-1] - цена шага, меняющего k осей одновременно.
type DirectDistance struct {
	Costs []int
}

// NewDirectDistance создает метрику с таблицей цен по умолчанию.
func NewDirectDistance(d int) *DirectDistance {
	return &DirectDistance{Costs: DefaultCosts(d)}
}

// Estimate считает точную стоимость перемещения по пустой решётке.
//
// Мур: сортируем дельту по возрастанию и идём от самой длинной оси вниз.
// Первые delta_min шагов меняют все D осей сразу (цена Costs[D-1]),
// следующий отрезок - D-1 осей, и так далее; остаток добирается
// одиночными шагами по цене Costs[0].
//
// Фон Нейман: диагонали запрещены, просто сумма дельт по цене Costs[0].
func (m *DirectDistance) Estimate(topo *grid.Topology, moore bool, from, to grid.Point) int {
	delta := topo.Delta(from, to)

	if !moore {
		total := 0
		for _, d := range delta {
			total += d * m.Costs[0]
		}
		return total
	}

	sort.Ints(delta)
	d := len(delta)
	total, carry := 0, 0
	for i := 0; i < d; i++ {
		total += m.Costs[d-1-i] * (delta[i] - carry)
		carry = delta[i]
	}
	return total
}

// Chebyshev - метрика "число ходов короля": максимум по осям.
type Chebyshev struct{}

func (Chebyshev) Estimate(topo *grid.Topology, _ bool, from, to grid.Point) int {
	delta := topo.Delta(from, to)
	max := 0
	for _, d := range delta {
		if d > max {
			max = d
		}
	}
	return max
}

// HeightMap оборачивает базовую метрику и добавляет штраф за перепад
// высот между клетками. Форма карты высот обязана совпадать с решёткой -
// проверяется при конструировании следопыта, не при оценке.
type HeightMap struct {
	Base    CostMetric
	Heights *grid.IntLayer
}

// NewHeightMap создает метрику высот. При base == nil базой становится
// DirectDistance с таблицей по умолчанию.
func NewHeightMap(heights *grid.IntLayer, base CostMetric) *HeightMap {
	if base == nil {
		base = NewDirectDistance(heights.Topology().Arity())
	}
	return &HeightMap{Base: base, Heights: heights}
}

func (m *HeightMap) Estimate(topo *grid.Topology, moore bool, from, to grid.Point) int {
	climb := m.Heights.At(to) - m.Heights.At(from)
	if climb < 0 {
		climb = -climb
	}
	return m.Base.Estimate(topo, moore, from, to) + climb
}

// validateMetric проверяет согласованность метрики с решёткой.
// Вложенные HeightMap проверяются рекурсивно.
func validateMetric(m CostMetric, dims []int) error {
	switch metric := m.(type) {
	case *DirectDistance:
		if len(metric.Costs) < len(dims) {
			return fmt.Errorf("direct distance needs %d cost entries, got %d", len(dims), len(metric.Costs))
		}
	case *HeightMap:
		if metric.Heights == nil {
			return fmt.Errorf("height map metric has no height layer")
		}
		if err := grid.SameShape(metric.Heights.Topology().Dims, dims); err != nil {
			return fmt.Errorf("height map: %w", err)
		}
		return validateMetric(metric.Base, dims)
	}
	return nil
}

package grid

import "fmt"

// Topology описывает прямоугольную решётку: размеры по осям и
// периодичность. Периодичность общая для всех осей: либо мир
// замкнут в тор целиком, либо нигде.
type Topology struct {
	Dims     []int
	Periodic bool

	// strides - шаги row-major индексации (последняя ось самая быстрая)
	strides []int
	size    int
}

// NewTopology проверяет размеры и предвычисляет шаги индексации.
func NewTopology(dims []int, periodic bool) (*Topology, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("topology needs at least one dimension")
	}
	size := 1
	for i, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("dimension %d must be positive, got %d", i, d)
		}
		size *= d
	}

	strides := make([]int, len(dims))
	acc := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= dims[i]
	}

	t := &Topology{
		Dims:     append([]int(nil), dims...),
		Periodic: periodic,
		strides:  strides,
		size:     size,
	}
	return t, nil
}

// Len возвращает общее число клеток решётки.
func (t *Topology) Len() int { return t.size }

// Arity возвращает размерность D.
func (t *Topology) Arity() int { return len(t.Dims) }

// Contains проверяет, что точка лежит внутри границ (без учёта периодичности).
func (t *Topology) Contains(p Point) bool {
	if len(p) != len(t.Dims) {
		return false
	}
	for i, v := range p {
		if v < 0 || v >= t.Dims[i] {
			return false
		}
	}
	return true
}

// Index сворачивает точку в плоский row-major индекс.
// Точка обязана лежать внутри границ.
func (t *Topology) Index(p Point) int {
	idx := 0
	for i, v := range p {
		idx += v * t.strides[i]
	}
	return idx
}

// PointAt разворачивает плоский индекс обратно в координату.
func (t *Topology) PointAt(idx int) Point {
	p := make(Point, len(t.Dims))
	for i, s := range t.strides {
		p[i] = idx / s
		idx %= s
	}
	return p
}

// Wrap нормализует точку: на периодической решётке координаты
// сворачиваются по модулю размеров, на обычной - проверяются границы.
// Второе значение false означает, что клетка вне мира.
func (t *Topology) Wrap(p Point) (Point, bool) {
	if t.Periodic {
		w := make(Point, len(p))
		for i, v := range p {
			d := t.Dims[i]
			w[i] = ((v % d) + d) % d
		}
		return w, true
	}
	if !t.Contains(p) {
		return nil, false
	}
	return p, true
}

// Delta возвращает покомпонентное расстояние между точками с учётом
// периодичности: на торе берётся минимум прямого и кругового пути.
func (t *Topology) Delta(from, to Point) []int {
	delta := make([]int, len(from))
	for i := range from {
		d := to[i] - from[i]
		if d < 0 {
			d = -d
		}
		if t.Periodic {
			if wrap := t.Dims[i] - d; wrap < d {
				d = wrap
			}
		}
		delta[i] = d
	}
	return delta
}

package pathfind

import "gridnav/pkg/grid"

// Path - очередь путевых точек от клетки после старта до цели
// включительно. Пустой путь означает "маршрута нет" либо "уже на месте".
// Потребление через PopFront за O(1): клетки не удаляются из среза,
// сдвигается курсор головы.
type Path struct {
	cells []grid.Point
	head  int
}

// Len возвращает число оставшихся путевых точек.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.cells) - p.head
}

// Empty сообщает, исчерпан ли путь.
func (p *Path) Empty() bool { return p.Len() == 0 }

// PopFront снимает и возвращает ближайшую путевую точку.
func (p *Path) PopFront() (grid.Point, bool) {
	if p.Empty() {
		return nil, false
	}
	next := p.cells[p.head]
	p.cells[p.head] = nil // отпускаем память пройденной клетки
	p.head++
	return next, true
}

// Points возвращает оставшиеся путевые точки по порядку следования.
func (p *Path) Points() []grid.Point {
	if p == nil {
		return nil
	}
	return p.cells[p.head:]
}

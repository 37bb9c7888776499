package grid

import "fmt"

// BoolLayer - булева карта поверх решётки (проходимость клеток).
// Хранится плоским срезом в row-major порядке топологии.
type BoolLayer struct {
	topo  *Topology
	cells []bool
}

// NewBoolLayer создает слой, заполненный значением fill.
func NewBoolLayer(topo *Topology, fill bool) *BoolLayer {
	cells := make([]bool, topo.Len())
	if fill {
		for i := range cells {
			cells[i] = true
		}
	}
	return &BoolLayer{topo: topo, cells: cells}
}

func (l *BoolLayer) Topology() *Topology { return l.topo }

func (l *BoolLayer) At(p Point) bool       { return l.cells[l.topo.Index(p)] }
func (l *BoolLayer) AtIndex(idx int) bool  { return l.cells[idx] }
func (l *BoolLayer) Set(p Point, v bool)   { l.cells[l.topo.Index(p)] = v }
func (l *BoolLayer) SetIndex(i int, v bool) { l.cells[i] = v }

// Count возвращает число клеток со значением true.
func (l *BoolLayer) Count() int {
	n := 0
	for _, v := range l.cells {
		if v {
			n++
		}
	}
	return n
}

// Cells отдает плоское содержимое слоя (для сериализации снапшотов).
// Вызывающий не должен его менять.
func (l *BoolLayer) Cells() []bool { return l.cells }

// IntLayer - целочисленная карта поверх решётки (карта высот и т.п.).
type IntLayer struct {
	topo  *Topology
	cells []int
}

func NewIntLayer(topo *Topology) *IntLayer {
	return &IntLayer{topo: topo, cells: make([]int, topo.Len())}
}

func (l *IntLayer) Topology() *Topology  { return l.topo }
func (l *IntLayer) At(p Point) int       { return l.cells[l.topo.Index(p)] }
func (l *IntLayer) AtIndex(idx int) int  { return l.cells[idx] }
func (l *IntLayer) Set(p Point, v int)   { l.cells[l.topo.Index(p)] = v }
func (l *IntLayer) Cells() []int         { return l.cells }

// SameShape проверяет, что размеры слоя совпадают с dims.
// Несовпадение - фатальная ошибка конфигурации, ловим при конструировании.
func SameShape(layerDims, dims []int) error {
	if len(layerDims) != len(dims) {
		return fmt.Errorf("shape mismatch: arity %d vs %d", len(layerDims), len(dims))
	}
	for i := range dims {
		if layerDims[i] != dims[i] {
			return fmt.Errorf("shape mismatch on axis %d: %d vs %d", i, layerDims[i], dims[i])
		}
	}
	return nil
}

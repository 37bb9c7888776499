package grid

import (
	"fmt"
	"strings"
)

// Point - координата клетки на D-мерной решётке.
// Срез, а не массив: размерность известна только во время выполнения.
type Point []int

// Clone возвращает независимую копию точки.
func (p Point) Clone() Point {
	c := make(Point, len(p))
	copy(c, p)
	return c
}

// Equal сравнивает покомпонентно. Точки разной размерности не равны.
func (p Point) Equal(other Point) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Add возвращает новую точку со смещением (не меняя текущую,
// т.к. срез разделяет память - всегда копируем).
func (p Point) Add(offset Point) Point {
	c := make(Point, len(p))
	for i := range p {
		c[i] = p[i] + offset[i]
	}
	return c
}

func (p Point) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

package pathfind

import (
	"container/heap"
	"math"

	"gridnav/pkg/grid"
)

// searchNode - клетка фронтира поиска. Живет только в рамках одного
// вызова findPath, наружу не отдается.
type searchNode struct {
	idx     int // плоский индекс клетки
	g       int // лучшая известная стоимость от старта
	h       int // эвристическая оценка до цели
	f       int // g + round((1+eps)·h)
	parent  int
	heapPos int
	closed  bool
}

// frontier - min-куча по f. При равных f меньший плоский индекс
// извлекается первым: это фиксирует детерминированный порядок обхода
// (лексикографический по координатам при row-major индексации).
type frontier []*searchNode

func (q frontier) Len() int { return len(q) }
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].idx < q[j].idx
}
func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].heapPos = i
	q[j].heapPos = j
}

func (q *frontier) Push(x any) {
	n := x.(*searchNode)
	n.heapPos = len(*q)
	*q = append(*q, n)
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.heapPos = -1
	*q = old[:n-1]
	return item
}

// searchResult - итог одного поиска. expanded нужен для проверки
// свойства релаксации: рост eps не увеличивает число раскрытых узлов.
type searchResult struct {
	path     *Path
	expanded int
}

// findPath выполняет взвешенный A* от from к to.
//
// Недостижимая или непроходимая цель - штатный исход: возвращается
// пустой путь, не ошибка. from == to тоже дает пустой путь.
// Всё состояние поиска локально для вызова, поэтому параллельные
// поиски по одному следопыту безопасны, пока никто не меняет
// карту проходимости.
func (pf *Pathfinder) findPath(from, to grid.Point) searchResult {
	empty := searchResult{path: &Path{}}

	if from.Equal(to) || !pf.walkable.At(to) || !pf.walkable.At(from) {
		return empty
	}

	fromIdx := pf.topo.Index(from)
	toIdx := pf.topo.Index(to)

	start := &searchNode{
		idx:    fromIdx,
		g:      0,
		h:      pf.Cost(from, to),
		parent: -1,
	}
	start.f = pf.weightedF(start.g, start.h)

	nodes := map[int]*searchNode{fromIdx: start}
	open := frontier{start}
	heap.Init(&open)

	expanded := 0
	found := false

	for open.Len() > 0 {
		cur := heap.Pop(&open).(*searchNode)
		if cur.idx == toIdx {
			found = true
			break
		}
		cur.closed = true
		expanded++

		curPoint := pf.topo.PointAt(cur.idx)
		for _, offset := range pf.offsets {
			cand, ok := pf.topo.Wrap(curPoint.Add(offset))
			if !ok {
				continue // вышли за край непериодического мира
			}
			candIdx := pf.topo.Index(cand)
			if !pf.walkable.AtIndex(candIdx) {
				continue
			}
			next, seen := nodes[candIdx]
			if seen && next.closed {
				continue
			}

			g := cur.g + pf.Cost(curPoint, cand)
			if seen && g >= next.g {
				continue
			}

			if !seen {
				next = &searchNode{idx: candIdx, heapPos: -1}
				nodes[candIdx] = next
			}
			next.parent = cur.idx
			next.g = g
			next.h = pf.Cost(cand, to)
			next.f = pf.weightedF(next.g, next.h)
			if next.heapPos >= 0 {
				heap.Fix(&open, next.heapPos)
			} else {
				heap.Push(&open, next)
			}
		}
	}

	if !found {
		empty.expanded = expanded
		return empty
	}

	// Раскрутка родительских ссылок от цели к старту: собираем в
	// обратном порядке и разворачиваем. Старт в путь не входит.
	var cells []grid.Point
	for idx := toIdx; idx != fromIdx; idx = nodes[idx].parent {
		cells = append(cells, pf.topo.PointAt(idx))
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	return searchResult{path: &Path{cells: cells}, expanded: expanded}
}

// weightedF считает приоритет клетки: g + round((1+eps)·h).
// При eps == 0 поиск оптимален, при eps > 0 эвристика переоценивается
// и поиск жертвует качеством пути ради скорости.
func (pf *Pathfinder) weightedF(g, h int) int {
	return g + int(math.Round((1+pf.admissibility)*float64(h)))
}

package grid

// MooreOffsets возвращает смещения окрестности Мура размерности d:
// все векторы из {-1,0,1}^d кроме нулевого, итого 3^d - 1 штук.
// Порядок детерминирован (лексикографический перебор).
func MooreOffsets(d int) []Point {
	offsets := make([]Point, 0, pow3(d)-1)
	cur := make(Point, d)
	for i := range cur {
		cur[i] = -1
	}
	for {
		if !isZero(cur) {
			offsets = append(offsets, cur.Clone())
		}
		// инкремент как счётчик по основанию 3 со значениями -1..1
		i := d - 1
		for ; i >= 0; i-- {
			if cur[i] < 1 {
				cur[i]++
				break
			}
			cur[i] = -1
		}
		if i < 0 {
			break
		}
	}
	return offsets
}

// VonNeumannOffsets возвращает смещения окрестности фон Неймана:
// ровно одна ненулевая компонента величины 1, итого 2d штук.
func VonNeumannOffsets(d int) []Point {
	offsets := make([]Point, 0, 2*d)
	for axis := 0; axis < d; axis++ {
		for _, v := range []int{-1, 1} {
			o := make(Point, d)
			o[axis] = v
			offsets = append(offsets, o)
		}
	}
	return offsets
}

func isZero(p Point) bool {
	for _, v := range p {
		if v != 0 {
			return false
		}
	}
	return true
}

func pow3(d int) int {
	r := 1
	for i := 0; i < d; i++ {
		r *= 3
	}
	return r
}

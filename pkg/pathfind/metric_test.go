package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridnav/pkg/grid"
)

// Height fixture: a ridge of height 100 along y=6, with a single pass
// of height 0 at (1,6).
func ridgeHeights(t *testing.T, periodic bool) *grid.IntLayer {
	t.Helper()
	topo, err := grid.NewTopology([]int{10, 10}, periodic)
	require.NoError(t, err)
	heights := grid.NewIntLayer(topo)
	for x := 0; x < 10; x++ {
		heights.Set(grid.Point{x, 6}, 100)
	}
	heights.Set(grid.Point{1, 6}, 0)
	return heights
}

func newTestPathfinder(t *testing.T, opts ...Option) *Pathfinder {
	t.Helper()
	pf, err := New([]int{10, 10}, opts...)
	require.NoError(t, err)
	return pf
}

func TestDirectDistanceCost(t *testing.T) {
	near := grid.Point{1, 1}
	far := grid.Point{4, 6}
	wrapped := grid.Point{8, 6}

	// Moore: 3 diagonal runs at 14 plus 2 straight at 10
	pf := newTestPathfinder(t)
	assert.Equal(t, 62, pf.Cost(near, far))

	// Same delta once the x axis wraps: |8-1|=7 folds to 3
	pf = newTestPathfinder(t, WithPeriodic())
	assert.Equal(t, 62, pf.Cost(near, wrapped))

	// Von Neumann: no diagonals, 8 straight steps
	pf = newTestPathfinder(t, WithVonNeumann())
	assert.Equal(t, 80, pf.Cost(near, far))

	pf = newTestPathfinder(t, WithVonNeumann(), WithPeriodic())
	assert.Equal(t, 80, pf.Cost(near, wrapped))
}

func TestChebyshevCost(t *testing.T) {
	near := grid.Point{1, 1}
	far := grid.Point{4, 6}
	wrapped := grid.Point{8, 6}

	cases := []struct {
		name string
		opts []Option
		to   grid.Point
	}{
		{"moore", []Option{WithMetric(Chebyshev{})}, far},
		{"moore periodic", []Option{WithMetric(Chebyshev{}), WithPeriodic()}, wrapped},
		{"von neumann", []Option{WithMetric(Chebyshev{}), WithVonNeumann()}, far},
		{"von neumann periodic", []Option{WithMetric(Chebyshev{}), WithVonNeumann(), WithPeriodic()}, wrapped},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pf := newTestPathfinder(t, tc.opts...)
			assert.Equal(t, 5, pf.Cost(near, tc.to))
		})
	}
}

func TestHeightMapCost(t *testing.T) {
	near := grid.Point{1, 1}
	far := grid.Point{4, 6}

	// Base distance plus the 100 climb onto the ridge
	pf := newTestPathfinder(t, WithMetric(NewHeightMap(ridgeHeights(t, false), nil)))
	assert.Equal(t, 162, pf.Cost(near, far))

	pf = newTestPathfinder(t, WithMetric(NewHeightMap(ridgeHeights(t, false), nil)), WithVonNeumann())
	assert.Equal(t, 180, pf.Cost(near, far))

	// The pass at (1,6) sits at height 0, so no climb penalty
	pf = newTestPathfinder(t, WithMetric(NewHeightMap(ridgeHeights(t, false), nil)))
	assert.Equal(t, 50, pf.Cost(near, grid.Point{1, 6}))
}

func TestCostSymmetryUnderPeriodicWrap(t *testing.T) {
	pairs := [][2]grid.Point{
		{{1, 1}, {8, 6}},
		{{0, 0}, {9, 9}},
		{{3, 7}, {7, 2}},
		{{5, 5}, {5, 5}},
	}

	metrics := map[string]CostMetric{
		"direct":    NewDirectDistance(2),
		"chebyshev": Chebyshev{},
		"heightmap": NewHeightMap(ridgeHeights(t, true), nil),
	}

	for name, metric := range metrics {
		t.Run(name, func(t *testing.T) {
			pf := newTestPathfinder(t, WithMetric(metric), WithPeriodic())
			for _, pair := range pairs {
				a, b := pair[0], pair[1]
				assert.Equal(t, pf.Cost(a, b), pf.Cost(b, a), "cost(%v,%v) vs cost(%v,%v)", a, b, b, a)
			}
		})
	}
}

func TestDefaultCosts(t *testing.T) {
	// floor(10·√k) for k = 1..4
	assert.Equal(t, []int{10, 14, 17, 20}, DefaultCosts(4))
}

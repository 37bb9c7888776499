package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridnav/pkg/grid"
)

// mazeWalkable carves the 7x6 corridor fixture: a solid block in the
// middle, the whole x=6 column, and the (1,0) cell are unwalkable, which
// leaves a single corridor up the x=0 column and along the y=5 row.
func mazeWalkable(t *testing.T, periodic bool) *grid.BoolLayer {
	t.Helper()
	topo, err := grid.NewTopology([]int{7, 6}, periodic)
	require.NoError(t, err)
	mask := grid.NewBoolLayer(topo, true)
	for x := 1; x <= 5; x++ {
		for y := 1; y <= 4; y++ {
			mask.Set(grid.Point{x, y}, false)
		}
	}
	for y := 0; y < 6; y++ {
		mask.Set(grid.Point{6, y}, false)
	}
	mask.Set(grid.Point{1, 0}, false)
	return mask
}

func pathPoints(p *Path) []grid.Point {
	return append([]grid.Point(nil), p.Points()...)
}

// pathCost accumulates the metric cost over consecutive path cells.
func pathCost(pf *Pathfinder, from grid.Point, p *Path) int {
	total := 0
	cur := from
	for _, next := range p.Points() {
		total += pf.Cost(cur, next)
		cur = next
	}
	return total
}

func TestFindPathMazeFixture(t *testing.T) {
	from := grid.Point{0, 0}
	to := grid.Point{5, 5}

	pf, err := New([]int{7, 6}, WithWalkable(mazeWalkable(t, false)))
	require.NoError(t, err)

	want := []grid.Point{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 5}, {2, 5}, {3, 5}, {4, 5}, {5, 5},
	}
	assert.Equal(t, want, pathPoints(pf.FindPath(from, to)))
}

func TestFindPathMazeFixturePeriodic(t *testing.T) {
	from := grid.Point{0, 0}
	to := grid.Point{5, 5}

	pf, err := New([]int{7, 6}, WithWalkable(mazeWalkable(t, true)), WithPeriodic())
	require.NoError(t, err)

	// Wrapping down through y=0 -> y=5 skips the corridor entirely
	want := []grid.Point{
		{1, 5}, {2, 5}, {3, 5}, {4, 5}, {5, 5},
	}
	assert.Equal(t, want, pathPoints(pf.FindPath(from, to)))
}

func TestFindPathEdgeCases(t *testing.T) {
	pf := newTestPathfinder(t)

	// Already arrived
	assert.True(t, pf.FindPath(grid.Point{3, 3}, grid.Point{3, 3}).Empty())

	// Unwalkable target is a normal "no route" outcome, not an error
	pf.Walkmap().Set(grid.Point{7, 7}, false)
	assert.True(t, pf.FindPath(grid.Point{0, 0}, grid.Point{7, 7}).Empty())
}

func TestPathEmptyIffUnreachable(t *testing.T) {
	from := grid.Point{1, 1}
	to := grid.Point{8, 8}

	// A fully blocking column cuts the flat grid in two
	topo, err := grid.NewTopology([]int{10, 10}, false)
	require.NoError(t, err)
	mask := grid.NewBoolLayer(topo, true)
	for y := 0; y < 10; y++ {
		mask.Set(grid.Point{5, y}, false)
	}

	pf, err := New([]int{10, 10}, WithWalkable(mask))
	require.NoError(t, err)
	assert.True(t, pf.FindPath(from, to).Empty())

	// The same wall on a torus is no obstacle: the route wraps around it
	torusMask := grid.NewBoolLayer(topo, true)
	for y := 0; y < 10; y++ {
		torusMask.Set(grid.Point{5, y}, false)
	}
	pf, err = New([]int{10, 10}, WithWalkable(torusMask), WithPeriodic())
	require.NoError(t, err)
	assert.False(t, pf.FindPath(from, to).Empty())
}

func TestOptimalityOnOpenGrid(t *testing.T) {
	// With eps = 0 and an exact metric the path cost must equal the
	// straight metric estimate for every pair of cells.
	for _, periodic := range []bool{false, true} {
		opts := []Option{}
		if periodic {
			opts = append(opts, WithPeriodic())
		}
		pf, err := New([]int{6, 6}, opts...)
		require.NoError(t, err)

		topo := pf.Topology()
		for a := 0; a < topo.Len(); a++ {
			for b := 0; b < topo.Len(); b++ {
				from, to := topo.PointAt(a), topo.PointAt(b)
				got := pathCost(pf, from, pf.FindPath(from, to))
				require.Equal(t, pf.Cost(from, to), got,
					"periodic=%v from=%v to=%v", periodic, from, to)
			}
		}
	}
}

func TestAdmissibilityTradeoff(t *testing.T) {
	// A wall with a gap at the bottom: the optimal route makes a detour,
	// a relaxed search may settle for a costlier one but must not expand
	// more nodes.
	newMask := func() *grid.BoolLayer {
		topo, err := grid.NewTopology([]int{10, 10}, false)
		require.NoError(t, err)
		mask := grid.NewBoolLayer(topo, true)
		for y := 0; y <= 7; y++ {
			mask.Set(grid.Point{5, y}, false)
		}
		return mask
	}
	from := grid.Point{2, 4}
	to := grid.Point{8, 4}

	prevCost := -1
	prevExpanded := -1
	for i, eps := range []float64{0, 2} {
		pf, err := New([]int{10, 10}, WithWalkable(newMask()), WithAdmissibility(eps))
		require.NoError(t, err)

		res := pf.findPath(from, to)
		require.False(t, res.path.Empty())
		cost := pathCost(pf, from, res.path)

		if i == 0 {
			// eps = 0 guarantees the true optimum: around the gap at y=8
			assert.Equal(t, 104, cost)
		} else {
			assert.GreaterOrEqual(t, cost, prevCost, "eps=%v", eps)
			assert.LessOrEqual(t, res.expanded, prevExpanded, "eps=%v", eps)
		}
		prevCost, prevExpanded = cost, res.expanded
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	pf, err := New([]int{7, 6}, WithWalkable(mazeWalkable(t, false)))
	require.NoError(t, err)

	first := pathPoints(pf.FindPath(grid.Point{0, 0}, grid.Point{5, 5}))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, pathPoints(pf.FindPath(grid.Point{0, 0}, grid.Point{5, 5})))
	}
}

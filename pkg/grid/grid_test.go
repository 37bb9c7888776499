package grid

import "testing"

func TestNewTopologyValidation(t *testing.T) {
	if _, err := NewTopology(nil, false); err == nil {
		t.Error("Expected error for empty dims")
	}
	if _, err := NewTopology([]int{10, 0}, false); err == nil {
		t.Error("Expected error for zero dimension")
	}
	if _, err := NewTopology([]int{10, -3}, false); err == nil {
		t.Error("Expected error for negative dimension")
	}
}

func TestIndexRoundtrip(t *testing.T) {
	topo, err := NewTopology([]int{4, 5, 6}, false)
	if err != nil {
		t.Fatal(err)
	}
	if topo.Len() != 120 {
		t.Errorf("Expected 120 cells, got %d", topo.Len())
	}
	for idx := 0; idx < topo.Len(); idx++ {
		p := topo.PointAt(idx)
		if !topo.Contains(p) {
			t.Fatalf("PointAt(%d) = %v out of bounds", idx, p)
		}
		if back := topo.Index(p); back != idx {
			t.Fatalf("Index(PointAt(%d)) = %d", idx, back)
		}
	}
}

func TestWrap(t *testing.T) {
	flat, _ := NewTopology([]int{10, 10}, false)
	torus, _ := NewTopology([]int{10, 10}, true)

	// Off the edge of a flat world
	if _, ok := flat.Wrap(Point{-1, 4}); ok {
		t.Error("Expected OOB on non-periodic grid")
	}
	if _, ok := flat.Wrap(Point{3, 10}); ok {
		t.Error("Expected OOB on non-periodic grid")
	}

	// Same points fold back on a torus
	p, ok := torus.Wrap(Point{-1, 4})
	if !ok || !p.Equal(Point{9, 4}) {
		t.Errorf("Expected (9,4), got %v", p)
	}
	p, ok = torus.Wrap(Point{3, 10})
	if !ok || !p.Equal(Point{3, 0}) {
		t.Errorf("Expected (3,0), got %v", p)
	}
}

func TestDelta(t *testing.T) {
	flat, _ := NewTopology([]int{10, 10}, false)
	torus, _ := NewTopology([]int{10, 10}, true)

	d := flat.Delta(Point{1, 1}, Point{8, 6})
	if d[0] != 7 || d[1] != 5 {
		t.Errorf("Expected [7 5], got %v", d)
	}

	// On a torus the short way around wins: |8-1|=7 vs 10-7=3
	d = torus.Delta(Point{1, 1}, Point{8, 6})
	if d[0] != 3 || d[1] != 5 {
		t.Errorf("Expected [3 5], got %v", d)
	}
}

func TestNeighborhoodCardinality(t *testing.T) {
	mooreWant := []int{2, 8, 26, 80} // 3^d - 1
	for d := 1; d <= 4; d++ {
		moore := MooreOffsets(d)
		if len(moore) != mooreWant[d-1] {
			t.Errorf("Moore d=%d: expected %d offsets, got %d", d, mooreWant[d-1], len(moore))
		}
		vn := VonNeumannOffsets(d)
		if len(vn) != 2*d {
			t.Errorf("VonNeumann d=%d: expected %d offsets, got %d", d, 2*d, len(vn))
		}
		for _, o := range moore {
			if isZero(o) {
				t.Errorf("Moore d=%d contains zero offset", d)
			}
		}
		for _, o := range vn {
			if isZero(o) {
				t.Errorf("VonNeumann d=%d contains zero offset", d)
			}
		}
	}
}

func TestLayers(t *testing.T) {
	topo, _ := NewTopology([]int{3, 3}, false)

	mask := NewBoolLayer(topo, true)
	if mask.Count() != 9 {
		t.Errorf("Expected 9 walkable cells, got %d", mask.Count())
	}
	mask.Set(Point{1, 1}, false)
	if mask.At(Point{1, 1}) {
		t.Error("Expected (1,1) blocked")
	}
	if mask.Count() != 8 {
		t.Errorf("Expected 8 walkable cells, got %d", mask.Count())
	}

	heights := NewIntLayer(topo)
	heights.Set(Point{2, 0}, 42)
	if heights.At(Point{2, 0}) != 42 {
		t.Error("Expected height 42")
	}

	if err := SameShape([]int{3, 3}, []int{3, 3}); err != nil {
		t.Errorf("Expected shapes to match: %v", err)
	}
	if err := SameShape([]int{3, 4}, []int{3, 3}); err == nil {
		t.Error("Expected shape mismatch error")
	}
	if err := SameShape([]int{3}, []int{3, 3}); err == nil {
		t.Error("Expected arity mismatch error")
	}
}

// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

func opts4() GridOptions { return GridOptions{Resolution: 1, Conn: Conn4} }
func opts8() GridOptions { return GridOptions{Resolution: 1, Conn: Conn8} }

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = walkable, 0 = blocked):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	g, err := From2D(grid, opts4())
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 checks that with Conn8 cells touching
// only at corners join one island.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	g, err := From2D(grid, opts8())
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := g.ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := len(comps[0]); size != 9 {
		t.Errorf("component size = %d; want 9", size)
	}

	g4, _ := From2D(grid, opts4())
	if n := len(g4.ConnectedComponents()); n != 9 {
		t.Errorf("Conn4: got %d components; want 9", n)
	}
}

// TestConnectedComponents_EmptyAndBlocked tests edge cases:
//   - completely blocked grid → zero components
//   - single walkable cell → one component of size 1
func TestConnectedComponents_EmptyAndBlocked(t *testing.T) {
	g1, _ := From2D([][]int{{0, 0}, {0, 0}}, opts4())
	if comps := g1.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all blocked: got %d components; want 0", len(comps))
	}

	g2, _ := From2D([][]int{{0, 1}}, opts4())
	comps := g2.ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("single cell: got %d components; want 1", len(comps))
	}
	if len(comps[0]) != 1 {
		t.Errorf("single cell: component size = %d; want 1", len(comps[0]))
	}
}

// TestFrom2D_Invalid ensures From2D rejects bad inputs.
func TestFrom2D_Invalid(t *testing.T) {
	if _, err := From2D(nil, opts4()); err != ErrEmptyGrid {
		t.Errorf("nil grid: got %v; want ErrEmptyGrid", err)
	}
	if _, err := From2D([][]int{{1}, {}}, opts4()); err != ErrNonRectangular {
		t.Errorf("jagged grid: got %v; want ErrNonRectangular", err)
	}
	if _, err := From2D([][]int{{1}}, GridOptions{}); err != ErrBadResolution {
		t.Errorf("zero resolution: got %v; want ErrBadResolution", err)
	}
}

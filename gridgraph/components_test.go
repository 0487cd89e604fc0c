// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// fromMask builds a grid from rows of '#' (obstacle) and '.' (passable).
// rows[0] is y=0.
func fromMask(t *testing.T, rows ...string) *GridGraph {
	t.Helper()
	var cells []Point
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	gg, err := NewGridGraph(len(rows[0]), len(rows), List(cells...))
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}

	return gg
}

// TestConnectedComponents_Simple tests ConnectedComponents on a 4×3 grid.
//
// Grid ('.' = passable, '#' = obstacle):
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple(t *testing.T) {
	gg := fromMask(t,
		"#..#",
		"..##",
		"##..",
	)

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	// Collect sizes and sort for comparison.
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_DiagonalDoesNotJoin checks that corner-touching cells stay separate.
func TestConnectedComponents_DiagonalDoesNotJoin(t *testing.T) {
	gg := fromMask(t,
		".#",
		"#.",
	)
	if n := len(gg.ConnectedComponents()); n != 2 {
		t.Errorf("got %d components; want 2", n)
	}
}

// TestConnectedComponents_EmptyAndAllBlocked tests edge cases:
//   - completely blocked grid → zero components
//   - open grid → one component covering every cell
func TestConnectedComponents_EmptyAndAllBlocked(t *testing.T) {
	gg1 := fromMask(t, "##", "##")
	if comps := gg1.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all-blocked: got %d components; want 0", len(comps))
	}

	gg2 := fromMask(t, "...", "...")
	comps := gg2.ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("open: got %d components; want 1", len(comps))
	}
	if len(comps[0]) != 6 {
		t.Errorf("open: component size = %d; want 6", len(comps[0]))
	}
}

// TestConnected covers the reachability oracle.
func TestConnected(t *testing.T) {
	gg := fromMask(t,
		".#.",
		".#.",
		".#.",
	)
	cases := []struct {
		a, b Point
		want bool
	}{
		{Point{0, 0}, Point{0, 2}, true},
		{Point{0, 1}, Point{2, 1}, false},
		{Point{2, 2}, Point{2, 2}, true},
		{Point{1, 1}, Point{1, 1}, false}, // obstacle endpoint
		{Point{0, 0}, Point{3, 0}, false}, // out of range
	}
	for _, tc := range cases {
		if got := gg.Connected(tc.a, tc.b); got != tc.want {
			t.Errorf("Connected(%v,%v) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

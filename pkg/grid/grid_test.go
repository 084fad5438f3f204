package grid

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetGetRoundTrip(t *testing.T) {
	g, err := New[int](5, 5)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range g.Coordinates() {
		want := c.Y*10 + c.X
		if err := g.Set(c.X, c.Y, want); err != nil {
			t.Fatalf("Set%v: %v", c, err)
		}
		got, err := g.Get(c.X, c.Y)
		if err != nil {
			t.Fatalf("Get%v: %v", c, err)
		}
		if got != want {
			t.Fatalf("Get%v = %d, want %d", c, got, want)
		}
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}} {
		if _, err := New[int](dims[0], dims[1]); !errors.Is(err, ErrBadDimensions) {
			t.Fatalf("New(%d, %d) err = %v, want ErrBadDimensions", dims[0], dims[1], err)
		}
	}
}

func TestOutOfRangeAccess(t *testing.T) {
	g, _ := New[int](3, 8)
	bad := []Coordinate{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 8}, {X: 10, Y: 10}}
	for _, c := range bad {
		if _, err := g.Get(c.X, c.Y); !errors.Is(err, ErrInvalidCoordinate) {
			t.Fatalf("Get%v err = %v, want ErrInvalidCoordinate", c, err)
		}
		if err := g.Set(c.X, c.Y, 1); !errors.Is(err, ErrInvalidCoordinate) {
			t.Fatalf("Set%v err = %v, want ErrInvalidCoordinate", c, err)
		}
		if got := g.GetOrDefault(c.X, c.Y, 42); got != 42 {
			t.Fatalf("GetOrDefault%v = %d, want default 42", c, got)
		}
	}
	g.Set(2, 7, 9)
	if got := g.GetOrDefault(2, 7, 42); got != 9 {
		t.Fatalf("GetOrDefault in range = %d, want 9", got)
	}
}

func TestNewWithFactory(t *testing.T) {
	g, err := NewWith(2, 2, func() []int { return make([]int, 1) })
	if err != nil {
		t.Fatal(err)
	}
	first, _ := g.Get(0, 0)
	second, _ := g.Get(1, 0)
	first[0] = 99
	if second[0] != 0 {
		t.Fatal("factory-allocated cells must not alias each other")
	}

	constant, _ := NewWith(2, 2, func() string { return "." })
	if v, _ := constant.Get(1, 1); v != "." {
		t.Fatalf("constant factory cell = %q, want %q", v, ".")
	}
}

func TestFromSliceRoundTrip(t *testing.T) {
	cells := []int{1, 0, 0, 1}
	g, err := FromSlice(2, 2, cells)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(g.Values(), cells) {
		t.Fatalf("Values() = %v, want %v", g.Values(), cells)
	}
	// The constructor copies; mutating the input must not leak in.
	cells[0] = 7
	if v, _ := g.Get(0, 0); v != 1 {
		t.Fatalf("grid aliases the input slice: got %d", v)
	}

	if _, err := FromSlice(2, 2, []int{1, 2, 3}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("short slice err = %v, want ErrLengthMismatch", err)
	}
}

func TestCloneIndependence(t *testing.T) {
	g, _ := New[int](4, 3)
	g.Set(2, 1, 5)

	c := g.Clone()
	if c == g {
		t.Fatal("Clone must return a distinct grid")
	}
	if !Equal(c, g) {
		t.Fatal("Clone must compare equal to its source")
	}
	c.Set(2, 1, 9)
	if v, _ := g.Get(2, 1); v != 5 {
		t.Fatalf("mutating the clone changed the source: got %d", v)
	}
}

func TestCloneFuncDeepCopiesReferenceCells(t *testing.T) {
	g, _ := NewWith(2, 2, func() []int { return make([]int, 2) })
	g.SetCloneFunc(func(v []int) []int { return slices.Clone(v) })

	c := g.Clone()
	cell, _ := c.Get(0, 0)
	cell[0] = 11
	orig, _ := g.Get(0, 0)
	if orig[0] != 0 {
		t.Fatal("clone hook must prevent aliasing of reference-typed cells")
	}

	vals := g.Values()
	vals[1][1] = 8
	orig, _ = g.Get(1, 0)
	if orig[1] != 0 {
		t.Fatal("Values snapshot must apply the clone hook")
	}
}

func TestEqual(t *testing.T) {
	a, _ := New[int](5, 5)
	b, _ := New[int](5, 5)
	if !Equal(a, b) {
		t.Fatal("fresh grids of equal dimensions must be equal")
	}
	b.Set(0, 0, 1)
	if Equal(a, b) {
		t.Fatal("grids with differing cells must not be equal")
	}
	c, _ := New[int](3, 3)
	if Equal(a, c) {
		t.Fatal("grids of differing dimensions must not be equal")
	}
	// Same cell count, transposed dimensions.
	d, _ := New[int](5, 3)
	e, _ := New[int](3, 5)
	if Equal(d, e) {
		t.Fatal("5x3 and 3x5 grids must not be equal")
	}
}

func TestArithmetic(t *testing.T) {
	a, _ := FromSlice(3, 1, []int{1, 2, 3})
	b, _ := FromSlice(3, 1, []int{10, 20, 30})

	sum, err := Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(sum.Values(), []int{11, 22, 33}) {
		t.Fatalf("Add values = %v", sum.Values())
	}

	diff, err := Sub(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(diff.Values(), []int{9, 18, 27}) {
		t.Fatalf("Sub values = %v", diff.Values())
	}

	// Operands must be untouched.
	if !slices.Equal(a.Values(), []int{1, 2, 3}) {
		t.Fatalf("Add mutated an operand: %v", a.Values())
	}

	c, _ := New[int](1, 3)
	if _, err := Add(a, c); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("Add mismatch err = %v, want ErrDimensionMismatch", err)
	}
	if _, err := Sub(a, c); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("Sub mismatch err = %v, want ErrDimensionMismatch", err)
	}
}

func TestCoordinatesRowMajorAndCached(t *testing.T) {
	g, _ := New[int](2, 2)
	want := []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	got := g.Coordinates()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Coordinates mismatch (-want +got):\n%s", diff)
	}
	again := g.Coordinates()
	if &got[0] != &again[0] {
		t.Fatal("Coordinates must be computed once and cached")
	}
}

func TestValuesSnapshot(t *testing.T) {
	g, _ := FromSlice(2, 2, []int{1, 2, 3, 4})
	vals := g.Values()
	vals[0] = 99
	if v, _ := g.Get(0, 0); v != 1 {
		t.Fatalf("Values must be a snapshot, grid saw %d", v)
	}
}

func TestItems(t *testing.T) {
	g, _ := FromSlice(2, 2, []int{1, 2, 3, 4})
	want := []Item[int]{
		{Coord: Coordinate{X: 0, Y: 0}, Value: 1},
		{Coord: Coordinate{X: 1, Y: 0}, Value: 2},
		{Coord: Coordinate{X: 0, Y: 1}, Value: 3},
		{Coord: Coordinate{X: 1, Y: 1}, Value: 4},
	}
	if diff := cmp.Diff(want, g.Items()); diff != "" {
		t.Fatalf("Items mismatch (-want +got):\n%s", diff)
	}
}

func TestAllIsRestartable(t *testing.T) {
	g, _ := FromSlice(2, 2, []int{1, 2, 3, 4})

	collect := func() []int {
		var out []int
		for _, v := range g.All() {
			out = append(out, v)
		}
		return out
	}
	first := collect()
	second := collect()
	if !slices.Equal(first, []int{1, 2, 3, 4}) || !slices.Equal(first, second) {
		t.Fatalf("All traversals = %v then %v", first, second)
	}

	// Early break must not poison later traversals.
	for c := range g.All() {
		if c.X == 1 {
			break
		}
	}
	if !slices.Equal(collect(), first) {
		t.Fatal("traversal after early break differs")
	}
}

func TestDump(t *testing.T) {
	g, _ := FromSlice(3, 2, []int{0, 1, 0, 1, 0, 1})
	want := "0 1 0\n1 0 1\n"
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestReleasedGridRejectsAccess(t *testing.T) {
	g, _ := New[int](2, 2)
	g.Release()
	if !g.Released() {
		t.Fatal("Released() must report true after Release")
	}
	if _, err := g.Get(0, 0); !errors.Is(err, ErrReleased) {
		t.Fatalf("Get after Release err = %v, want ErrReleased", err)
	}
	if err := g.Set(0, 0, 1); !errors.Is(err, ErrReleased) {
		t.Fatalf("Set after Release err = %v, want ErrReleased", err)
	}
	if got := g.GetOrDefault(0, 0, 7); got != 7 {
		t.Fatalf("GetOrDefault after Release = %d, want default", got)
	}
}

func TestCoordinateOrdering(t *testing.T) {
	cases := []struct {
		a, b Coordinate
		want bool
	}{
		{Coordinate{X: 0, Y: 0}, Coordinate{X: 1, Y: 0}, true},
		{Coordinate{X: 1, Y: 0}, Coordinate{X: 0, Y: 1}, true},
		{Coordinate{X: 0, Y: 1}, Coordinate{X: 1, Y: 0}, false},
		{Coordinate{X: 2, Y: 2}, Coordinate{X: 2, Y: 2}, false},
	}
	for _, tc := range cases {
		if got := tc.a.Less(tc.b); got != tc.want {
			t.Fatalf("%v.Less(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
	if got := (Coordinate{X: 3, Y: 4}).String(); got != "(3, 4)" {
		t.Fatalf("String() = %q", got)
	}
}

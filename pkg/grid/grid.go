// Package grid provides bounds-checked 2D storage with torus and slice-view
// variants. Cells are held in a flat row-major backing slice and addressed by
// (x, y) coordinate pairs.
package grid

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

var (
	// ErrInvalidCoordinate reports an access outside the addressable bounds.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrDimensionMismatch reports arithmetic between grids of unequal size.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInvalidRange reports a slice request with inverted or negative corners.
	ErrInvalidRange = errors.New("invalid range")
	// ErrStaleSlice reports access through a view whose parent was released.
	ErrStaleSlice = errors.New("stale slice: parent grid released")
	// ErrReleased reports access to a grid after Release.
	ErrReleased = errors.New("grid released")
	// ErrBadDimensions reports a construction attempt with a non-positive size.
	ErrBadDimensions = errors.New("grid dimensions must be positive")
	// ErrLengthMismatch reports a backing slice whose length is not width*height.
	ErrLengthMismatch = errors.New("cell count does not match grid dimensions")
)

// Coordinate addresses a single cell as an (x, y) integer pair.
type Coordinate struct {
	X, Y int
}

// Less orders coordinates row-major: by Y first, then by X.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// String renders the coordinate as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Item pairs a coordinate with the value stored there.
type Item[V any] struct {
	Coord Coordinate
	Value V
}

// Grid stores width*height cells of type V in row-major order. The dimensions
// are fixed for the grid's lifetime; the linear index of (x, y) is y*width+x.
type Grid[V any] struct {
	w, h   int
	cells  []V
	coords []Coordinate
	clone  func(V) V
}

// New allocates a grid with every cell set to the zero value of V.
func New[V any](w, h int) (*Grid[V], error) {
	return NewWith[V](w, h, nil)
}

// NewWith allocates a grid whose cells are initialized by invoking factory
// once per cell. A nil factory leaves cells at the zero value. Factories that
// return a shared value and factories that build a fresh value per cell are
// both legitimate; the caller picks the aliasing semantics.
func NewWith[V any](w, h int, factory func() V) (*Grid[V], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}
	g := &Grid[V]{w: w, h: h, cells: make([]V, w*h)}
	if factory != nil {
		for i := range g.cells {
			g.cells[i] = factory()
		}
	}
	return g, nil
}

// FromSlice builds a grid from a row-major flat slice of length w*h. The
// cells are copied, not aliased.
func FromSlice[V any](w, h int, cells []V) (*Grid[V], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrLengthMismatch, len(cells), w, h)
	}
	g := &Grid[V]{w: w, h: h, cells: make([]V, w*h)}
	copy(g.cells, cells)
	return g, nil
}

// SetCloneFunc installs a per-value deep-copy hook used by Clone and Values.
// Without a hook values are copied by plain assignment, which aliases
// reference-typed cells.
func (g *Grid[V]) SetCloneFunc(fn func(V) V) { g.clone = fn }

// Width returns the number of columns.
func (g *Grid[V]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[V]) Height() int { return g.h }

// Dimensions returns the width and height.
func (g *Grid[V]) Dimensions() (int, int) { return g.w, g.h }

// Len returns the total number of cells.
func (g *Grid[V]) Len() int { return g.w * g.h }

// Released reports whether the backing storage has been dropped.
func (g *Grid[V]) Released() bool { return g.cells == nil }

// Release drops the backing storage. Further access through the grid fails
// with ErrReleased and access through any live Slice fails with ErrStaleSlice.
func (g *Grid[V]) Release() {
	g.cells = nil
	g.coords = nil
}

func (g *Grid[V]) inBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// at reads a cell without bounds checking. Callers guarantee validity.
func (g *Grid[V]) at(x, y int) V { return g.cells[y*g.w+x] }

// setAt writes a cell without bounds checking. Callers guarantee validity.
func (g *Grid[V]) setAt(x, y int, v V) { g.cells[y*g.w+x] = v }

// Get returns the cell at (x, y) or ErrInvalidCoordinate when the coordinate
// lies outside [0,width)x[0,height).
func (g *Grid[V]) Get(x, y int) (V, error) {
	var zero V
	if g.cells == nil {
		return zero, ErrReleased
	}
	if !g.inBounds(x, y) {
		return zero, fmt.Errorf("%w: (%d, %d)", ErrInvalidCoordinate, x, y)
	}
	return g.at(x, y), nil
}

// Set overwrites the cell at (x, y), with the same bounds contract as Get.
func (g *Grid[V]) Set(x, y int, v V) error {
	if g.cells == nil {
		return ErrReleased
	}
	if !g.inBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidCoordinate, x, y)
	}
	g.setAt(x, y, v)
	return nil
}

// GetOrDefault returns the cell at (x, y), or def when the coordinate is out
// of range. It never fails.
func (g *Grid[V]) GetOrDefault(x, y int, def V) V {
	if g.cells == nil || !g.inBounds(x, y) {
		return def
	}
	return g.at(x, y)
}

// Clone returns a deep copy with independent storage. The clone hook, when
// set, is applied to every cell and carried over to the copy.
func (g *Grid[V]) Clone() *Grid[V] {
	out := &Grid[V]{w: g.w, h: g.h, clone: g.clone}
	if g.cells == nil {
		return out
	}
	out.cells = g.copyCells()
	return out
}

func (g *Grid[V]) copyCells() []V {
	cells := make([]V, len(g.cells))
	if g.clone != nil {
		for i, v := range g.cells {
			cells[i] = g.clone(v)
		}
		return cells
	}
	copy(cells, g.cells)
	return cells
}

// Coordinates returns every valid coordinate in row-major order. The slice is
// computed once and cached for the grid's lifetime; callers must not mutate it.
func (g *Grid[V]) Coordinates() []Coordinate {
	if g.coords == nil {
		g.coords = make([]Coordinate, 0, g.w*g.h)
		for y := 0; y < g.h; y++ {
			for x := 0; x < g.w; x++ {
				g.coords = append(g.coords, Coordinate{X: x, Y: y})
			}
		}
	}
	return g.coords
}

// Values returns a snapshot of all cell values in row-major order.
func (g *Grid[V]) Values() []V {
	if g.cells == nil {
		return nil
	}
	return g.copyCells()
}

// Items returns coordinate/value pairs in row-major order, snapshot semantics.
func (g *Grid[V]) Items() []Item[V] {
	if g.cells == nil {
		return nil
	}
	coords := g.Coordinates()
	values := g.Values()
	items := make([]Item[V], len(coords))
	for i := range coords {
		items[i] = Item[V]{Coord: coords[i], Value: values[i]}
	}
	return items
}

// All returns a lazy traversal over coordinate/value pairs in row-major
// order. Each range starts a fresh traversal over the live cells.
func (g *Grid[V]) All() iter.Seq2[Coordinate, V] {
	return func(yield func(Coordinate, V) bool) {
		if g.cells == nil {
			return
		}
		for _, c := range g.Coordinates() {
			if !yield(c, g.at(c.X, c.Y)) {
				return
			}
		}
	}
}

// Slice returns a read/write view over the rectangle topLeft..bottomRight,
// corners inclusive. It fails with ErrInvalidRange for inverted or negative
// corners and ErrInvalidCoordinate for corners outside the grid.
func (g *Grid[V]) Slice(topLeft, bottomRight Coordinate) (*Slice[V], error) {
	if topLeft.X < 0 || topLeft.Y < 0 || bottomRight.X < 0 || bottomRight.Y < 0 {
		return nil, fmt.Errorf("%w: negative corner %v..%v", ErrInvalidRange, topLeft, bottomRight)
	}
	if topLeft.X > bottomRight.X || topLeft.Y > bottomRight.Y {
		return nil, fmt.Errorf("%w: inverted corners %v..%v", ErrInvalidRange, topLeft, bottomRight)
	}
	if !g.inBounds(topLeft.X, topLeft.Y) || !g.inBounds(bottomRight.X, bottomRight.Y) {
		return nil, fmt.Errorf("%w: corners %v..%v exceed %dx%d", ErrInvalidCoordinate, topLeft, bottomRight, g.w, g.h)
	}
	return &Slice[V]{parent: g, x1: topLeft.X, y1: topLeft.Y, x2: bottomRight.X, y2: bottomRight.Y}, nil
}

// Dump writes a row-major textual rendering: space-separated cells, one row
// per line. Debug aid, not a stable serialization format.
func (g *Grid[V]) Dump(w io.Writer) error {
	if g.cells == nil {
		return ErrReleased
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if x > 0 {
				if _, err := fmt.Fprint(w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%v", g.at(x, y)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// String renders the grid as Dump would.
func (g *Grid[V]) String() string {
	var sb strings.Builder
	if err := g.Dump(&sb); err != nil {
		return "<released grid>"
	}
	return sb.String()
}

// Equal reports whether a and b have identical dimensions and cell values,
// compared in coordinate order.
func Equal[V comparable](a, b *Grid[V]) bool {
	if a.w != b.w || a.h != b.h {
		return false
	}
	if len(a.cells) != len(b.cells) {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}

// Number constrains grid arithmetic to the built-in numeric cell types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add returns a new grid holding the pairwise sums of a and b. Grids of
// differing dimensions fail with ErrDimensionMismatch.
func Add[V Number](a, b *Grid[V]) (*Grid[V], error) {
	return combine(a, b, func(x, y V) V { return x + y })
}

// Sub returns a new grid holding the pairwise differences of a and b, with
// the same dimension contract as Add.
func Sub[V Number](a, b *Grid[V]) (*Grid[V], error) {
	return combine(a, b, func(x, y V) V { return x - y })
}

func combine[V Number](a, b *Grid[V], op func(V, V) V) (*Grid[V], error) {
	if a.cells == nil || b.cells == nil {
		return nil, ErrReleased
	}
	if a.w != b.w || a.h != b.h {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, a.w, a.h, b.w, b.h)
	}
	out := &Grid[V]{w: a.w, h: a.h, cells: make([]V, len(a.cells))}
	for i := range a.cells {
		out.cells[i] = op(a.cells[i], b.cells[i])
	}
	return out, nil
}

package grid

// Torus is a grid whose opposite edges are adjacent: coordinate resolution
// wraps via non-negative modulo on both axes instead of bounds-checking, so
// Get and Set accept any integer coordinates. All other operations keep the
// embedded Grid semantics.
type Torus[V any] struct {
	Grid[V]
}

// NewTorus allocates a torus with every cell set to the zero value of V.
func NewTorus[V any](w, h int) (*Torus[V], error) {
	return NewTorusWith[V](w, h, nil)
}

// NewTorusWith allocates a torus whose cells are initialized by factory, with
// the same factory semantics as NewWith.
func NewTorusWith[V any](w, h int, factory func() V) (*Torus[V], error) {
	g, err := NewWith[V](w, h, factory)
	if err != nil {
		return nil, err
	}
	return &Torus[V]{Grid: *g}, nil
}

// TorusFromSlice builds a torus from a row-major flat slice of length w*h.
func TorusFromSlice[V any](w, h int, cells []V) (*Torus[V], error) {
	g, err := FromSlice(w, h, cells)
	if err != nil {
		return nil, err
	}
	return &Torus[V]{Grid: *g}, nil
}

// Wrap resolves arbitrary coordinates into [0,width)x[0,height). The result
// is non-negative even for negative inputs.
func (t *Torus[V]) Wrap(x, y int) (int, int) {
	x = (x%t.w + t.w) % t.w
	y = (y%t.h + t.h) % t.h
	return x, y
}

// Get returns the cell at the wrapped coordinate. It never fails for
// out-of-range inputs; t.Get(x+k*width, y) equals t.Get(x, y) for any k.
func (t *Torus[V]) Get(x, y int) V {
	x, y = t.Wrap(x, y)
	return t.at(x, y)
}

// Set overwrites the cell at the wrapped coordinate.
func (t *Torus[V]) Set(x, y int, v V) {
	x, y = t.Wrap(x, y)
	t.setAt(x, y, v)
}

// Clone returns a deep copy of the torus with independent storage.
func (t *Torus[V]) Clone() *Torus[V] {
	return &Torus[V]{Grid: *t.Grid.Clone()}
}

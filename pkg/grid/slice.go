package grid

import "fmt"

// Slice is a non-owning read/write view over a rectangular sub-region of a
// parent grid. Coordinates presented through the view are local to the
// region and translated to parent coordinates on access, so writes through
// the view are visible through the parent and vice versa. The view holds a
// borrowed reference only: once the parent is released, every access fails
// with ErrStaleSlice.
type Slice[V any] struct {
	parent         *Grid[V]
	x1, y1, x2, y2 int
}

// Width returns the number of columns in the view.
func (s *Slice[V]) Width() int { return s.x2 - s.x1 + 1 }

// Height returns the number of rows in the view.
func (s *Slice[V]) Height() int { return s.y2 - s.y1 + 1 }

// Bounds returns the inclusive parent-space corners of the view.
func (s *Slice[V]) Bounds() (topLeft, bottomRight Coordinate) {
	return Coordinate{X: s.x1, Y: s.y1}, Coordinate{X: s.x2, Y: s.y2}
}

func (s *Slice[V]) translate(lx, ly int) (int, int, error) {
	if s.parent.cells == nil {
		return 0, 0, ErrStaleSlice
	}
	if lx < 0 || ly < 0 || s.x1+lx > s.x2 || s.y1+ly > s.y2 {
		return 0, 0, fmt.Errorf("%w: (%d, %d) outside %dx%d slice", ErrInvalidCoordinate, lx, ly, s.Width(), s.Height())
	}
	return s.x1 + lx, s.y1 + ly, nil
}

// Get returns the parent cell at local coordinate (lx, ly).
func (s *Slice[V]) Get(lx, ly int) (V, error) {
	x, y, err := s.translate(lx, ly)
	if err != nil {
		var zero V
		return zero, err
	}
	return s.parent.at(x, y), nil
}

// Set overwrites the parent cell at local coordinate (lx, ly).
func (s *Slice[V]) Set(lx, ly int, v V) error {
	x, y, err := s.translate(lx, ly)
	if err != nil {
		return err
	}
	s.parent.setAt(x, y, v)
	return nil
}

package storage

import "github.com/francescog/histogram/herr"

// ArrayElement is the closed set of numeric element types Array may be
// instantiated over: int32, int64, or float64.
type ArrayElement interface {
	~int32 | ~int64 | ~float64
}

// Array is a plain dense array over a caller-chosen element type with no
// promotion; Variance(i) == Value(i) always. Used when the caller wants a
// fixed memory footprint and accepts overflow risk.
type Array[T ArrayElement] struct {
	cells []T
}

// NewArray creates an Array of the given size, all cells zero.
func NewArray[T ArrayElement](size int) *Array[T] {
	return &Array[T]{cells: make([]T, size)}
}

func (a *Array[T]) Size() int { return len(a.cells) }

func (a *Array[T]) checkIndex(i int) error {
	if i < 0 || i >= len(a.cells) {
		return herr.WithDetail(herr.ErrIndexOutOfRange, "storage cell index out of range")
	}
	return nil
}

func (a *Array[T]) Increase(i int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.cells[i]++
	return nil
}

func (a *Array[T]) Add(i int, w float64) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.cells[i] += T(w)
	return nil
}

// AddWeighted behaves exactly like Add: Array has no weighted
// representation to promote to, and variance(i) == value(i) always, so a
// single weighted fill and w unit increments are indistinguishable here
// regardless.
func (a *Array[T]) AddWeighted(i int, w float64) error {
	return a.Add(i, w)
}

func (a *Array[T]) Value(i int) float64 {
	if err := a.checkIndex(i); err != nil {
		return 0
	}
	return float64(a.cells[i])
}

func (a *Array[T]) Variance(i int) float64 { return a.Value(i) }

func (a *Array[T]) Reset() {
	for i := range a.cells {
		a.cells[i] = 0
	}
}

func (a *Array[T]) Scale(s float64) {
	for i := range a.cells {
		a.cells[i] = T(float64(a.cells[i]) * s)
	}
}

func (a *Array[T]) AddStorage(other Storage) error {
	if len(a.cells) != other.Size() {
		return herr.WithDetail(herr.ErrIncompatibleAxes, "storage size mismatch")
	}
	for i := range a.cells {
		a.cells[i] += T(other.Value(i))
	}
	return nil
}

func (a *Array[T]) Equal(other Storage) bool {
	if len(a.cells) != other.Size() {
		return false
	}
	for i := range a.cells {
		if float64(a.cells[i]) != other.Value(i) || float64(a.cells[i]) != other.Variance(i) {
			return false
		}
	}
	return true
}

func (a *Array[T]) Clone() Storage {
	c := &Array[T]{cells: make([]T, len(a.cells))}
	copy(c.cells, a.cells)
	return c
}

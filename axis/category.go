package axis

import "github.com/francescog/histogram/herr"

// Category is an unordered set of distinct values of type T (commonly int
// or string). Size() == len(values); there is no under/overflow — unknown
// values map to Size().
type Category[T comparable] struct {
	values []T
	index  map[T]int
	label  string
}

// NewCategory builds a Category axis over values, which must be distinct.
func NewCategory[T comparable](values []T, label string) (*Category[T], error) {
	idx := make(map[T]int, len(values))
	cp := make([]T, len(values))
	for i, v := range values {
		if _, dup := idx[v]; dup {
			return nil, invalidParams("category axis values must be unique")
		}
		idx[v] = i
		cp[i] = v
	}
	return &Category[T]{values: cp, index: idx, label: label}, nil
}

func (c *Category[T]) Index(v any) int {
	t, ok := v.(T)
	if !ok {
		return c.Size()
	}
	if i, found := c.index[t]; found {
		return i
	}
	return c.Size()
}

func (c *Category[T]) Size() int        { return len(c.values) }
func (c *Category[T]) Label() string    { return c.label }
func (c *Category[T]) SetLabel(s string) { c.label = s }
func (c *Category[T]) Shape() int       { return c.Size() }

// Value returns the category value stored at bin i.
func (c *Category[T]) Value(i int) (T, error) {
	var zero T
	if i < 0 || i >= c.Size() {
		return zero, herr.WithDetail(herr.ErrIndexOutOfRange, "category axis bin index out of range")
	}
	return c.values[i], nil
}

func (c *Category[T]) Lower(int) (float64, error) {
	return 0, notInterval(KindCategory)
}

func (c *Category[T]) Upper(int) (float64, error) {
	return 0, notInterval(KindCategory)
}

func (c *Category[T]) Equal(other Axis) bool {
	o, ok := other.(*Category[T])
	if !ok || len(c.values) != len(o.values) || c.label != o.label {
		return false
	}
	for i := range c.values {
		if c.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

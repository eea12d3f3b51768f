package axis

import (
	"math"

	"github.com/francescog/histogram/herr"
)

// Integer is unit-width integer bins on [lo, hi).
type Integer struct {
	lo, hi int
	label  string
	uoflow bool
}

// NewInteger builds an Integer axis covering [lo, hi).
func NewInteger(lo, hi int, label string, uoflow bool) (*Integer, error) {
	if !(lo < hi) {
		return nil, invalidParams("integer axis requires lo < hi")
	}
	return &Integer{lo: lo, hi: hi, label: label, uoflow: uoflow}, nil
}

func (a *Integer) Index(v any) int {
	x, ok := toFloat(v)
	if !ok || math.IsNaN(x) {
		return a.Size()
	}
	bin := int(math.Floor(x)) - a.lo
	if bin < 0 {
		return -1
	}
	if bin >= a.Size() {
		return a.Size()
	}
	return bin
}

func (a *Integer) Size() int        { return a.hi - a.lo }
func (a *Integer) Label() string    { return a.label }
func (a *Integer) SetLabel(s string) { a.label = s }

func (a *Integer) Shape() int {
	if !a.uoflow {
		return a.Size()
	}
	return a.Size() + 2
}

// Uoflow reports whether under/overflow sentinel bins are enabled.
func (a *Integer) Uoflow() bool { return a.uoflow }

func (a *Integer) Lower(i int) (float64, error) {
	if i < 0 || i >= a.Size() {
		return 0, herr.WithDetail(herr.ErrIndexOutOfRange, "integer axis bin index out of range")
	}
	return float64(a.lo + i), nil
}

func (a *Integer) Upper(i int) (float64, error) {
	if i < 0 || i >= a.Size() {
		return 0, herr.WithDetail(herr.ErrIndexOutOfRange, "integer axis bin index out of range")
	}
	return float64(a.lo + i + 1), nil
}

func (a *Integer) Equal(other Axis) bool {
	o, ok := other.(*Integer)
	if !ok {
		return false
	}
	return a.lo == o.lo && a.hi == o.hi && a.label == o.label && a.uoflow == o.uoflow
}

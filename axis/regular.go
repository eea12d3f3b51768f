package axis

import (
	"math"

	"github.com/francescog/histogram/herr"
)

// Regular is n equal-width bins in transformed space between lo and hi.
type Regular struct {
	n         int
	lo, hi    float64
	tlo, thi  float64 // transform(lo), transform(hi), cached
	transform Transform
	label     string
	uoflow    bool
}

// NewRegular builds a Regular axis with n equal-width bins between lo and
// hi (in the transform's domain), under the given transform. uoflow
// enables the underflow/overflow sentinel bins.
func NewRegular(n int, lo, hi float64, transform Transform, label string, uoflow bool) (*Regular, error) {
	if n < 1 {
		return nil, invalidParams("regular axis requires n >= 1")
	}
	if !(lo < hi) {
		return nil, invalidParams("regular axis requires lo < hi")
	}
	tlo, thi := transform.apply(lo), transform.apply(hi)
	if math.IsNaN(tlo) || math.IsNaN(thi) || math.IsInf(tlo, 0) || math.IsInf(thi, 0) || tlo == thi {
		return nil, invalidParams("regular axis transform must be finite at lo and hi and map them to distinct values")
	}
	return &Regular{n: n, lo: lo, hi: hi, tlo: tlo, thi: thi, transform: transform, label: label, uoflow: uoflow}, nil
}

func (r *Regular) Index(v any) int {
	x, ok := toFloat(v)
	if !ok || math.IsNaN(x) {
		return r.n
	}
	tx := r.transform.apply(x)
	if math.IsNaN(tx) {
		return r.n
	}
	if math.IsInf(tx, 0) {
		if (tx < 0) == (r.thi > r.tlo) {
			return -1
		}
		return r.n
	}
	frac := (tx - r.tlo) / (r.thi - r.tlo)
	bin := int(math.Floor(frac * float64(r.n)))
	if bin < 0 {
		return -1
	}
	if bin >= r.n {
		return r.n
	}
	return bin
}

func (r *Regular) Size() int  { return r.n }
func (r *Regular) Label() string { return r.label }
func (r *Regular) SetLabel(s string) { r.label = s }

func (r *Regular) Shape() int {
	if !r.uoflow {
		return r.n
	}
	return r.n + 2
}

// Uoflow reports whether under/overflow sentinel bins are enabled.
func (r *Regular) Uoflow() bool { return r.uoflow }

// TransformName reports the transform's name ("identity", "log", "sqrt",
// "cos", or "pow"), for the persistence tree walk.
func (r *Regular) TransformName() string { return r.transform.String() }

// PowExponent returns the exponent of a Pow transform (meaningless
// otherwise), for the persistence tree walk.
func (r *Regular) PowExponent() float64 { return r.transform.pow }

func (r *Regular) Lower(i int) (float64, error) {
	if i < 0 || i >= r.n {
		return 0, herr.WithDetail(herr.ErrIndexOutOfRange, "regular axis bin index out of range")
	}
	frac := float64(i) / float64(r.n)
	return r.inverse(r.tlo + frac*(r.thi-r.tlo)), nil
}

func (r *Regular) Upper(i int) (float64, error) {
	if i < 0 || i >= r.n {
		return 0, herr.WithDetail(herr.ErrIndexOutOfRange, "regular axis bin index out of range")
	}
	frac := float64(i+1) / float64(r.n)
	return r.inverse(r.tlo + frac*(r.thi-r.tlo)), nil
}

func (r *Regular) inverse(tx float64) float64 {
	switch r.transform.kind {
	case transformLog:
		return math.Exp(tx)
	case transformSqrt:
		return tx * tx
	case transformCos:
		return math.Acos(tx)
	case transformPow:
		return math.Pow(tx, 1/r.transform.pow)
	default:
		return tx
	}
}

func (r *Regular) Equal(other Axis) bool {
	o, ok := other.(*Regular)
	if !ok {
		return false
	}
	return r.n == o.n && r.lo == o.lo && r.hi == o.hi &&
		r.transform.equal(o.transform) && r.label == o.label && r.uoflow == o.uoflow
}

// Package axis implements the closed family of axis variants that map a
// coordinate value to an integer bin index: Regular, Circular, Variable,
// Integer, and Category. Every variant implements the Axis interface, so a
// histogram can hold them either as a homogeneous slice of one concrete
// type or as a heterogeneous slice of Axis values.
package axis

import "github.com/francescog/histogram/herr"

// Axis is a total function from a value domain to {-1, 0, ..., Size()},
// where -1 denotes underflow and Size() denotes overflow or an unknown
// value. Index never fails: out-of-domain input routes to a sentinel bin,
// it is never an error.
type Axis interface {
	// Index returns the bin index of v. Implementations accept any(v) and
	// perform their own type assertion/conversion; passing a value the
	// axis cannot interpret is equivalent to an out-of-domain value and
	// returns the overflow index.
	Index(v any) int

	// Size returns the number of finite (non-sentinel) bins.
	Size() int

	// Shape returns Size() plus the number of sentinel bins (0, 1, or 2)
	// this axis carries.
	Shape() int

	// Label returns the axis's textual label.
	Label() string

	// SetLabel renames the axis in place. It is the only mutation an axis
	// permits after construction.
	SetLabel(string)

	// Lower returns the inclusive lower edge of bin i. It fails with
	// herr.ErrDomainNotInterval for axes whose domain is not an ordered
	// interval (Category).
	Lower(i int) (float64, error)

	// Upper returns the exclusive upper edge of bin i. Same domain
	// restriction as Lower.
	Upper(i int) (float64, error)

	// Equal reports whether other is the same variant with identical
	// configuration (edges compared bit-identically, labels as strings).
	Equal(other Axis) bool
}

// Kind discriminates the concrete variant behind an Axis value, as reported
// by KindOf and recorded by the persistence tree walk.
type Kind int

const (
	KindRegular Kind = iota
	KindCircular
	KindVariable
	KindInteger
	KindCategory
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindCircular:
		return "circular"
	case KindVariable:
		return "variable"
	case KindInteger:
		return "integer"
	case KindCategory:
		return "category"
	default:
		return "unknown"
	}
}

// invalidParams is a small constructor helper shared by every variant's
// validation path.
func invalidParams(detail string) error {
	return herr.WithDetail(herr.ErrInvalidAxisParameters, detail)
}

func notInterval(kind Kind) error {
	return herr.WithDetail(herr.ErrDomainNotInterval, kind.String()+" axis has no ordered interval domain")
}

// toFloat converts a coordinate value of any numeric kind to float64. The
// bool result is false if v is not a number, in which case callers should
// treat the value as out-of-domain (routes to overflow).
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	default:
		return 0, false
	}
}

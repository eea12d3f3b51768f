// Package herr defines the sentinel error values this module returns and a
// helper for attaching caller-facing detail to them without losing
// errors.Is/errors.As discoverability.
package herr

import "errors"

// Sentinel errors, one per error kind a caller can synchronously receive.
var (
	// ErrArityMismatch is returned when the number of coordinates or
	// indices supplied to a histogram operation does not match its
	// dimensionality.
	ErrArityMismatch = errors.New("histogram: arity mismatch")

	// ErrIndexOutOfRange is returned when a query index lies outside the
	// legal bin range of its axis.
	ErrIndexOutOfRange = errors.New("histogram: index out of range")

	// ErrIncompatibleAxes is returned when two histograms with differing
	// axis containers are combined with +=.
	ErrIncompatibleAxes = errors.New("histogram: incompatible axes")

	// ErrInvalidReduction is returned when reduce_to receives a duplicate
	// or out-of-range axis index.
	ErrInvalidReduction = errors.New("histogram: invalid reduction")

	// ErrDomainNotInterval is returned when lower/upper is called on an
	// axis whose domain is not an ordered interval (e.g. a category axis).
	ErrDomainNotInterval = errors.New("histogram: domain is not an interval")

	// ErrInvalidAxisParameters is returned by axis constructors when their
	// parameters fail validation (bad bounds, non-monotonic edges,
	// duplicate categories).
	ErrInvalidAxisParameters = errors.New("histogram: invalid axis parameters")

	// ErrResourceExhausted is returned when storage promotion cannot
	// allocate its new representation.
	ErrResourceExhausted = errors.New("histogram: resource exhausted")
)

// WithDetail wraps err with a human-readable detail string. If err is nil,
// WithDetail is a no-op. If err already carries a detail, the new detail is
// prepended so the most specific context reads first: "new: old".
func WithDetail(err error, detail string) error {
	if err == nil {
		return nil
	}
	return withDetail{err: err, detail: detail}
}

type withDetail struct {
	err    error
	detail string
}

func (w withDetail) Error() string {
	return w.detail + ": " + w.err.Error()
}

func (w withDetail) Unwrap() error {
	return w.err
}

// Detail returns the detail string attached by this (outermost) WithDetail
// call, followed by any detail carried by the wrapped error in parentheses.
func (w withDetail) Detail() string {
	detail := w.detail
	var inner withDetail
	if errors.As(w.err, &inner) {
		detail = detail + " (" + inner.Detail() + ")"
	}
	return detail
}

// Package hist implements the N-dimensional histogram facade: it holds an
// axis container and a storage backend, linearizes coordinate tuples into
// storage offsets, and implements fill, query, projection, and arithmetic.
package hist

import "github.com/francescog/histogram/axis"

// Container holds a fixed-length sequence of axes, either homogeneous
// (Fixed) or heterogeneous (Dynamic). Both forms expose the identical
// behavioral contract a Histogram relies on.
type Container interface {
	Dim() int
	Axis(i int) axis.Axis
}

// Fixed is the compile-time-homogeneous axis container: every axis is the
// same concrete type A.
type Fixed[A axis.Axis] []A

func (f Fixed[A]) Dim() int { return len(f) }

func (f Fixed[A]) Axis(i int) axis.Axis { return f[i] }

// Dynamic is the runtime-heterogeneous axis container: any mix of variants,
// each held as an axis.Axis interface value.
type Dynamic []axis.Axis

func (d Dynamic) Dim() int { return len(d) }

func (d Dynamic) Axis(i int) axis.Axis { return d[i] }

package hist

import "github.com/francescog/histogram/storage"

// ElementType tags the concrete element a BufferView exposes, for
// zero-copy array-library bridges. OpaqueZero marks a void-state adaptive
// storage that has not yet allocated a real buffer.
type ElementType int

const (
	ElementU8 ElementType = iota
	ElementU16
	ElementU32
	ElementU64
	ElementDouble
	ElementOpaqueZero
)

// BufferView is a read-only descriptor of a histogram's storage, shaped
// for zero-copy consumption by an external dense-array bridge. For void
// storage, Values synthesizes a zero-filled buffer on demand. For mp_int
// storage, values are materialized as float64 (lossy for extreme values —
// this is documented, not hidden). For weight_counter storage, Shape gains
// a trailing dimension of size 2 (Σw, Σw²) and Values holds each cell's
// (Σw, Σw²) pair consecutively.
type BufferView struct {
	Element ElementType
	Shape   []int
	// Strides are in bytes. Axis 0 varies fastest, following the storage's
	// linear-offset convention; for weight_counter storage the trailing
	// (Σw, Σw²) dimension has the element stride and every axis stride is
	// doubled.
	Strides []int
	Values  []float64
}

func elementSize(e ElementType) int {
	switch e {
	case ElementU8:
		return 1
	case ElementU16:
		return 2
	case ElementU32:
		return 4
	case ElementU64, ElementDouble:
		return 8
	default:
		return 0
	}
}

// View builds a BufferView over h's storage.
func (h *Histogram) View() BufferView {
	shape := make([]int, h.Dim())
	for i := range shape {
		shape[i] = h.axes.Axis(i).Shape()
	}

	element := ElementDouble
	weighted := false
	if a, ok := h.s.(*storage.Adaptive); ok {
		switch a.Repr() {
		case "void":
			element = ElementOpaqueZero
		case "u8":
			element = ElementU8
		case "u16":
			element = ElementU16
		case "u32":
			element = ElementU32
		case "u64":
			element = ElementU64
		case "mp_int":
			element = ElementDouble
		case "weight_counter":
			element = ElementDouble
			weighted = true
		}
	}

	if weighted {
		shape = append(shape, 2)
	}

	strides := make([]int, len(shape))
	stride := elementSize(element)
	if stride == 0 {
		stride = 8
	}
	if weighted {
		strides[len(shape)-1] = stride
		stride *= 2
	}
	for i := 0; i < h.Dim(); i++ {
		strides[i] = stride
		stride *= shape[i]
	}

	n := h.s.Size()
	values := make([]float64, n*boolToInt(weighted, 2, 1))
	for i := 0; i < n; i++ {
		if weighted {
			values[2*i] = h.s.Value(i)
			values[2*i+1] = h.s.Variance(i)
		} else {
			values[i] = h.s.Value(i)
		}
	}

	return BufferView{Element: element, Shape: shape, Strides: strides, Values: values}
}

func boolToInt(b bool, ifTrue, ifFalse int) int {
	if b {
		return ifTrue
	}
	return ifFalse
}

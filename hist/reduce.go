package hist

import (
	"github.com/francescog/histogram/herr"
	"github.com/francescog/histogram/storage"
)

// ReduceTo builds a new histogram over the chosen subset of axes, in the
// order supplied. Each output cell equals the sum of every source cell
// whose retained coordinates match; dropped axes are summed including
// their under/overflow bins. keep indices must be distinct and in
// [0, Dim()).
func (h *Histogram) ReduceTo(keep ...int) (*Histogram, error) {
	seen := make(map[int]bool, len(keep))
	for _, k := range keep {
		if k < 0 || k >= h.Dim() {
			return nil, herr.WithDetail(herr.ErrInvalidReduction, "axis index out of range")
		}
		if seen[k] {
			return nil, herr.WithDetail(herr.ErrInvalidReduction, "duplicate axis index")
		}
		seen[k] = true
	}

	newAxes := make(Dynamic, len(keep))
	for j, k := range keep {
		newAxes[j] = h.axes.Axis(k)
	}
	newShapes := axisShapes(newAxes)
	newStrides := axisStrides(newShapes)
	newStorage := storage.NewAdaptive(totalSize(newShapes))

	sourceShapes := axisShapes(h.axes)
	for offset := 0; offset < h.s.Size(); offset++ {
		v, vv := h.s.Value(offset), h.s.Variance(offset)
		if v == 0 && vv == 0 {
			continue
		}
		multiIndex := decodeOffset(offset, sourceShapes, h.strides)
		target := 0
		for j, k := range keep {
			target += multiIndex[k] * newStrides[j]
		}
		if err := newStorage.AddCell(target, v, vv); err != nil {
			return nil, err
		}
	}

	return &Histogram{axes: newAxes, s: newStorage, strides: newStrides, meta: h.meta}, nil
}

// decodeOffset inverts the linear-offset convention: given shapes and
// their matching strides, it returns the per-axis shape-space position
// (not the logical bin index — that's position-1 for axes with an
// underflow sentinel).
func decodeOffset(offset int, shapes, strides []int) []int {
	idx := make([]int, len(shapes))
	for i := range shapes {
		idx[i] = (offset / strides[i]) % shapes[i]
	}
	return idx
}

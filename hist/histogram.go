package hist

import (
	"math"

	"github.com/francescog/histogram/axis"
	"github.com/francescog/histogram/herr"
	"github.com/francescog/histogram/storage"
)

// Histogram is the N-dimensional indexer: it owns one axis container and
// one storage backend, converts coordinate tuples into linear storage
// offsets, and implements fill, query, projection, and arithmetic.
type Histogram struct {
	axes    Container
	s       storage.Storage
	strides []int
	meta    Metadata
}

// New builds a Histogram over axes backed by adaptive storage, the common
// case: counting fills cost a single byte per cell until they don't.
func New(axes Container) *Histogram {
	shapes := axisShapes(axes)
	return &Histogram{
		axes:    axes,
		s:       storage.NewAdaptive(totalSize(shapes)),
		strides: axisStrides(shapes),
		meta:    NewMetadata(),
	}
}

// NewWithStorage builds a Histogram over axes backed by a caller-supplied
// storage, for the non-adaptive array-storage path. s must already be
// sized to Πᵢ shape(axisᵢ).
func NewWithStorage(axes Container, s storage.Storage) (*Histogram, error) {
	shapes := axisShapes(axes)
	if want := totalSize(shapes); s.Size() != want {
		return nil, herr.WithDetail(herr.ErrIncompatibleAxes, "storage size does not match axis shapes")
	}
	return &Histogram{axes: axes, s: s, strides: axisStrides(shapes), meta: NewMetadata()}, nil
}

func axisShapes(axes Container) []int {
	d := axes.Dim()
	shapes := make([]int, d)
	for i := 0; i < d; i++ {
		shapes[i] = axes.Axis(i).Shape()
	}
	return shapes
}

func axisStrides(shapes []int) []int {
	strides := make([]int, len(shapes))
	stride := 1
	for i, s := range shapes {
		strides[i] = stride
		stride *= s
	}
	return strides
}

func totalSize(shapes []int) int {
	if len(shapes) == 0 {
		return 0
	}
	total := 1
	for _, s := range shapes {
		total *= s
	}
	return total
}

// Dim returns the histogram's dimensionality.
func (h *Histogram) Dim() int { return h.axes.Dim() }

// Bincount returns the storage size (every finite and sentinel cell).
func (h *Histogram) Bincount() int { return h.s.Size() }

// Axis returns axis i.
func (h *Histogram) Axis(i int) (axis.Axis, error) {
	if i < 0 || i >= h.Dim() {
		return nil, herr.WithDetail(herr.ErrIndexOutOfRange, "axis index out of range")
	}
	return h.axes.Axis(i), nil
}

// Metadata returns the histogram's tag tree.
func (h *Histogram) Metadata() Metadata { return h.meta }

// WithMetadata returns a copy of h with its metadata replaced. The storage
// is shared, not cloned; use Clone first if independent copies are needed.
func (h *Histogram) WithMetadata(m Metadata) *Histogram {
	clone := *h
	clone.meta = m
	return &clone
}

// axisOffsetComponent classifies how axis i's bin index bᵢ maps into the
// linear offset: axes with both sentinel bins shift by +1; axes with at
// most one sentinel (or none) use the raw index. It also reports whether
// bᵢ must be dropped (axis has the relevant sentinel disabled and the
// value fell there).
func axisOffsetComponent(a axis.Axis, b int) (component int, drop bool) {
	switch a.Shape() - a.Size() {
	case 0:
		if b < 0 || b >= a.Size() {
			return 0, true
		}
		return b, false
	case 1:
		return b, false
	default: // 2: both underflow and overflow enabled
		return b + 1, false
	}
}

// linearOffset computes the fill-time offset for coords, reporting whether
// the sample must be dropped because it fell into a disabled sentinel bin.
func (h *Histogram) linearOffset(coords []any) (offset int, drop bool, err error) {
	if len(coords) != h.Dim() {
		return 0, false, herr.WithDetail(herr.ErrArityMismatch, "fill requires one coordinate per axis")
	}
	for i, x := range coords {
		a := h.axes.Axis(i)
		b := a.Index(x)
		component, d := axisOffsetComponent(a, b)
		if d {
			return 0, true, nil
		}
		offset += component * h.strides[i]
	}
	return offset, false, nil
}

// Fill converts args into a linear storage offset and updates the storage.
// Trailing Weight/Count tags (see fill.go) select weighted or repeated
// fills; the default is a single unweighted increment. Fill never fails on
// out-of-domain coordinates — they route to under/overflow or are dropped.
func (h *Histogram) Fill(args ...any) error {
	coords, weight, count, err := splitFillArgs(args)
	if err != nil {
		return err
	}
	offset, drop, err := h.linearOffset(coords)
	if err != nil {
		return err
	}
	if drop {
		return nil
	}
	switch {
	case weight != nil:
		return h.s.AddWeighted(offset, *weight)
	case count != nil:
		return h.s.Add(offset, *count)
	default:
		return h.s.Increase(offset)
	}
}

// FillBulk iterates Fill over n samples described by per-axis coordinate
// sequences of equal length n, plus an optional trailing per-sample weight
// sequence.
func (h *Histogram) FillBulk(coordSeqs [][]any, weights []float64) error {
	if len(coordSeqs) != h.Dim() {
		return herr.WithDetail(herr.ErrArityMismatch, "fill bulk requires one coordinate sequence per axis")
	}
	n := 0
	if len(coordSeqs) > 0 {
		n = len(coordSeqs[0])
	}
	for _, seq := range coordSeqs {
		if len(seq) != n {
			return herr.WithDetail(herr.ErrArityMismatch, "fill bulk coordinate sequences must have equal length")
		}
	}
	if weights != nil && len(weights) != n {
		return herr.WithDetail(herr.ErrArityMismatch, "fill bulk weight sequence must match coordinate length")
	}
	coords := make([]any, len(coordSeqs))
	for i := 0; i < n; i++ {
		for a := range coordSeqs {
			coords[a] = coordSeqs[a][i]
		}
		var err error
		if weights != nil {
			err = h.Fill(append(append([]any{}, coords...), Weight(weights[i]))...)
		} else {
			err = h.Fill(coords...)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// queryOffset validates indices against each axis's legal query domain
// ([-1, size] when under/overflow is enabled, [0, size) otherwise) and
// returns the matching linear offset.
func (h *Histogram) queryOffset(indices []int) (int, error) {
	if len(indices) != h.Dim() {
		return 0, herr.WithDetail(herr.ErrArityMismatch, "query requires one index per axis")
	}
	offset := 0
	for i, idx := range indices {
		a := h.axes.Axis(i)
		diff := a.Shape() - a.Size()
		switch diff {
		case 0:
			if idx < 0 || idx >= a.Size() {
				return 0, herr.WithDetail(herr.ErrIndexOutOfRange, "axis index out of range")
			}
			offset += idx * h.strides[i]
		case 1:
			if idx < 0 || idx >= a.Shape() {
				return 0, herr.WithDetail(herr.ErrIndexOutOfRange, "axis index out of range")
			}
			offset += idx * h.strides[i]
		default:
			if idx < -1 || idx > a.Size() {
				return 0, herr.WithDetail(herr.ErrIndexOutOfRange, "axis index out of range")
			}
			offset += (idx + 1) * h.strides[i]
		}
	}
	return offset, nil
}

// Value returns the value of the cell addressed by indices.
func (h *Histogram) Value(indices ...int) (float64, error) {
	offset, err := h.queryOffset(indices)
	if err != nil {
		return 0, err
	}
	return h.s.Value(offset), nil
}

// Variance returns the variance of the cell addressed by indices.
func (h *Histogram) Variance(indices ...int) (float64, error) {
	offset, err := h.queryOffset(indices)
	if err != nil {
		return 0, err
	}
	return h.s.Variance(offset), nil
}

// Sum returns the sum of every cell, under/overflow included. It uses
// Neumaier-compensated summation so histograms spanning a wide dynamic
// range between cells don't lose precision to naive accumulation order.
func (h *Histogram) Sum() float64 {
	var sum, comp float64
	for i := 0; i < h.s.Size(); i++ {
		v := h.s.Value(i)
		t := sum + v
		if math.Abs(sum) >= math.Abs(v) {
			comp += (sum - t) + v
		} else {
			comp += (v - t) + sum
		}
		sum = t
	}
	return sum + comp
}

// Reset zeros every cell while preserving the axes.
func (h *Histogram) Reset() { h.s.Reset() }

// Equal reports whether h and other have equal axis containers
// (structurally and label-wise) and equal storages.
func (h *Histogram) Equal(other *Histogram) bool {
	if h.Dim() != other.Dim() {
		return false
	}
	for i := 0; i < h.Dim(); i++ {
		if !h.axes.Axis(i).Equal(other.axes.Axis(i)) {
			return false
		}
	}
	return h.s.Equal(other.s)
}

// sameAxes reports whether h and other share a structurally-equal axis
// container, the precondition for Add.
func (h *Histogram) sameAxes(other *Histogram) bool {
	if h.Dim() != other.Dim() {
		return false
	}
	for i := 0; i < h.Dim(); i++ {
		if !h.axes.Axis(i).Equal(other.axes.Axis(i)) {
			return false
		}
	}
	return true
}

// Add adds other into h cell-wise in place. It requires equal axis
// containers.
func (h *Histogram) Add(other *Histogram) error {
	if !h.sameAxes(other) {
		return herr.WithDetail(herr.ErrIncompatibleAxes, "histogram axes differ")
	}
	return h.s.AddStorage(other.s)
}

// Scale multiplies every cell by s in place.
func (h *Histogram) Scale(s float64) { h.s.Scale(s) }

// Clone returns a copy of h with its own deep copy of the storage. The
// axis container and the axes it holds are shared with h, not copied, so a
// SetLabel on an axis of either histogram is visible through both.
func (h *Histogram) Clone() *Histogram {
	strides := append([]int(nil), h.strides...)
	return &Histogram{axes: h.axes, s: h.s.Clone(), strides: strides, meta: h.meta}
}

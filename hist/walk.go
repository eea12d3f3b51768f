package hist

import (
	"github.com/francescog/histogram/axis"
	"github.com/francescog/histogram/herr"
	"github.com/francescog/histogram/storage"
)

// AxisDescriptor is the stable, encoder-agnostic description of one axis
// produced by Walk, sufficient for any external encoder (or Rebuild) to
// reconstruct the axis.
type AxisDescriptor struct {
	Kind      axis.Kind
	Label     string
	Uoflow    bool
	N         int       // Regular, Circular
	Lo, Hi    float64   // Regular, Integer (as float64)
	Start     float64   // Circular
	Period    float64   // Circular
	Transform string    // Regular
	PowExp    float64   // Regular, when Transform == "pow"
	Edges     []float64 // Variable
	StrValues []string  // Category[string]
	IntValues []int     // Category[int]
	IsIntCat  bool      // true if Category[int], false if Category[string]
}

// Tree is the stable ordered tuple (axes, storage-tag, cells) the core
// produces for any external encoder.
type Tree struct {
	Axes       []AxisDescriptor
	StorageTag string
	Cells      []Cell
	Metadata   map[string]string
}

// Cell is one (value, variance) pair at a fixed linear offset, in the
// same offset convention Fill and Value use.
type Cell struct {
	Value, Variance float64
}

// Walk produces h's persistence tuple.
func (h *Histogram) Walk() Tree {
	axes := make([]AxisDescriptor, h.Dim())
	for i := 0; i < h.Dim(); i++ {
		axes[i] = describeAxis(h.axes.Axis(i))
	}

	tag := "array"
	if a, ok := h.s.(*storage.Adaptive); ok {
		tag = a.Repr()
	}

	cells := make([]Cell, h.s.Size())
	for i := range cells {
		cells[i] = Cell{Value: h.s.Value(i), Variance: h.s.Variance(i)}
	}

	return Tree{Axes: axes, StorageTag: tag, Cells: cells, Metadata: h.meta.Path()}
}

func describeAxis(a axis.Axis) AxisDescriptor {
	d := AxisDescriptor{Kind: axis.KindOf(a), Label: a.Label()}
	switch v := a.(type) {
	case *axis.Regular:
		d.N = v.Size()
		d.Uoflow = v.Uoflow()
		d.Transform = v.TransformName()
		d.PowExp = v.PowExponent()
		lo, _ := v.Lower(0)
		hiLastBin, _ := v.Upper(v.Size() - 1)
		d.Lo, d.Hi = lo, hiLastBin
	case *axis.Circular:
		d.N = v.Size()
		d.Start = v.Start()
		d.Period = v.Period()
	case *axis.Variable:
		d.Uoflow = v.Uoflow()
		edges := make([]float64, v.Size()+1)
		for i := range edges {
			if i < v.Size() {
				lo, _ := v.Lower(i)
				edges[i] = lo
			} else {
				hi, _ := v.Upper(i - 1)
				edges[i] = hi
			}
		}
		d.Edges = edges
	case *axis.Integer:
		d.Uoflow = v.Uoflow()
		lo, _ := v.Lower(0)
		hi, _ := v.Upper(v.Size() - 1)
		d.Lo, d.Hi = lo, hi
	case *axis.Category[string]:
		d.IsIntCat = false
		values := make([]string, v.Size())
		for i := range values {
			val, _ := v.Value(i)
			values[i] = val
		}
		d.StrValues = values
	case *axis.Category[int]:
		d.IsIntCat = true
		values := make([]int, v.Size())
		for i := range values {
			val, _ := v.Value(i)
			values[i] = val
		}
		d.IntValues = values
	}
	return d
}

// Rebuild reconstructs a Histogram from a Tree produced by Walk. It is the
// core half of the Walk/Rebuild round-trip; an external encoder is expected
// to have preserved the tuple exactly.
func Rebuild(t Tree) (*Histogram, error) {
	axes := make(Dynamic, len(t.Axes))
	for i, d := range t.Axes {
		a, err := rebuildAxis(d)
		if err != nil {
			return nil, err
		}
		axes[i] = a
	}

	h := New(axes)
	// New always starts void; replay the cell tuple directly into storage
	// rather than re-deriving it through Fill, since the tuple already
	// carries the exact (value, variance) pairs.
	adaptive, ok := h.s.(*storage.Adaptive)
	if !ok {
		return nil, herr.WithDetail(herr.ErrResourceExhausted, "rebuild requires adaptive storage")
	}
	for i, c := range t.Cells {
		if c.Value == 0 && c.Variance == 0 {
			continue
		}
		if err := adaptive.AddCell(i, c.Value, c.Variance); err != nil {
			return nil, err
		}
	}
	h.meta = metadataFromPath(t.Metadata)
	return h, nil
}

func metadataFromPath(path map[string]string) Metadata {
	m := NewMetadata()
	for k, v := range path {
		m = m.WithTag(k, v)
	}
	return m
}

func rebuildAxis(d AxisDescriptor) (axis.Axis, error) {
	switch d.Kind {
	case axis.KindRegular:
		transform := axis.Identity()
		switch d.Transform {
		case "log":
			transform = axis.Log()
		case "sqrt":
			transform = axis.Sqrt()
		case "cos":
			transform = axis.Cos()
		case "pow":
			transform = axis.Pow(d.PowExp)
		}
		return axis.NewRegular(d.N, d.Lo, d.Hi, transform, d.Label, d.Uoflow)
	case axis.KindCircular:
		return axis.NewCircular(d.N, d.Start, d.Period, d.Label)
	case axis.KindVariable:
		return axis.NewVariable(d.Edges, d.Label, d.Uoflow)
	case axis.KindInteger:
		return axis.NewInteger(int(d.Lo), int(d.Hi), d.Label, d.Uoflow)
	default:
		if d.IsIntCat {
			return axis.NewCategory(d.IntValues, d.Label)
		}
		return axis.NewCategory(d.StrValues, d.Label)
	}
}

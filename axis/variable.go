package axis

import (
	"math"
	"sort"

	"github.com/francescog/histogram/herr"
)

// Variable is a set of strictly increasing bin edges; Size() == len(edges)-1.
type Variable struct {
	edges  []float64
	label  string
	uoflow bool
}

// NewVariable builds a Variable axis from edges, which must be strictly
// increasing and have at least two elements.
func NewVariable(edges []float64, label string, uoflow bool) (*Variable, error) {
	if len(edges) < 2 {
		return nil, invalidParams("variable axis requires at least two edges")
	}
	cp := make([]float64, len(edges))
	copy(cp, edges)
	for i := 1; i < len(cp); i++ {
		if !(cp[i] > cp[i-1]) {
			return nil, invalidParams("variable axis edges must be strictly increasing")
		}
	}
	return &Variable{edges: cp, label: label, uoflow: uoflow}, nil
}

func (v *Variable) Index(val any) int {
	x, ok := toFloat(val)
	if !ok || math.IsNaN(x) {
		return v.Size()
	}
	n := len(v.edges)
	if x < v.edges[0] {
		return -1
	}
	if x >= v.edges[n-1] {
		return v.Size()
	}
	// sort.Search finds the first edge strictly greater than x; the bin
	// starting at an edge equal to x belongs to that edge's bin, so we
	// search for ">" rather than ">=".
	i := sort.Search(n, func(i int) bool { return v.edges[i] > x })
	return i - 1
}

func (v *Variable) Size() int        { return len(v.edges) - 1 }
func (v *Variable) Label() string    { return v.label }
func (v *Variable) SetLabel(s string) { v.label = s }

func (v *Variable) Shape() int {
	if !v.uoflow {
		return v.Size()
	}
	return v.Size() + 2
}

// Uoflow reports whether under/overflow sentinel bins are enabled.
func (v *Variable) Uoflow() bool { return v.uoflow }

func (v *Variable) Lower(i int) (float64, error) {
	if i < 0 || i >= v.Size() {
		return 0, herr.WithDetail(herr.ErrIndexOutOfRange, "variable axis bin index out of range")
	}
	return v.edges[i], nil
}

func (v *Variable) Upper(i int) (float64, error) {
	if i < 0 || i >= v.Size() {
		return 0, herr.WithDetail(herr.ErrIndexOutOfRange, "variable axis bin index out of range")
	}
	return v.edges[i+1], nil
}

func (v *Variable) Equal(other Axis) bool {
	o, ok := other.(*Variable)
	if !ok || len(v.edges) != len(o.edges) || v.label != o.label || v.uoflow != o.uoflow {
		return false
	}
	for i := range v.edges {
		if v.edges[i] != o.edges[i] {
			return false
		}
	}
	return true
}

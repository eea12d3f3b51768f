package axis

import (
	"math"

	"github.com/francescog/histogram/herr"
)

// Circular is n equal-width bins wrapping around a period. It has a single
// overflow bin representing wrap-around and no underflow bin.
type Circular struct {
	n            int
	start, period float64
	label        string
}

// NewCircular builds a Circular axis with n equal-width bins starting at
// start and wrapping every period.
func NewCircular(n int, start, period float64, label string) (*Circular, error) {
	if n < 1 {
		return nil, invalidParams("circular axis requires n >= 1")
	}
	if !(period > 0) {
		return nil, invalidParams("circular axis requires period > 0")
	}
	return &Circular{n: n, start: start, period: period, label: label}, nil
}

func (c *Circular) Index(v any) int {
	x, ok := toFloat(v)
	if !ok || math.IsNaN(x) {
		return c.n
	}
	if math.IsInf(x, 0) {
		return c.n
	}
	wrapped := math.Mod(math.Mod(x-c.start, c.period)+c.period, c.period)
	bin := int(math.Floor(wrapped / c.period * float64(c.n)))
	if bin >= c.n {
		bin = c.n - 1
	}
	if bin < 0 {
		bin = 0
	}
	return bin
}

func (c *Circular) Size() int        { return c.n }
func (c *Circular) Label() string    { return c.label }
func (c *Circular) SetLabel(s string) { c.label = s }
func (c *Circular) Shape() int       { return c.n + 1 }

// Start and Period expose the construction parameters, for the
// persistence tree walk.
func (c *Circular) Start() float64  { return c.start }
func (c *Circular) Period() float64 { return c.period }

func (c *Circular) Lower(i int) (float64, error) {
	if i < 0 || i >= c.n {
		return 0, herr.WithDetail(herr.ErrIndexOutOfRange, "circular axis bin index out of range")
	}
	return c.start + float64(i)*c.period/float64(c.n), nil
}

func (c *Circular) Upper(i int) (float64, error) {
	if i < 0 || i >= c.n {
		return 0, herr.WithDetail(herr.ErrIndexOutOfRange, "circular axis bin index out of range")
	}
	return c.start + float64(i+1)*c.period/float64(c.n), nil
}

func (c *Circular) Equal(other Axis) bool {
	o, ok := other.(*Circular)
	if !ok {
		return false
	}
	return c.n == o.n && c.start == o.start && c.period == o.period && c.label == o.label
}

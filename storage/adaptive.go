package storage

import (
	"math"
	"math/big"
	"strconv"

	"github.com/francescog/histogram/herr"
	"github.com/sirupsen/logrus"
)

// repr is the tag shared by the entire buffer. Ordering on promotion:
// void < u8 < u16 < u32 < u64 < mpInt; weight is orthogonal and absorbs
// any integer state.
type repr int

const (
	reprVoid repr = iota
	reprU8
	reprU16
	reprU32
	reprU64
	reprMP
	reprWeight
)

func (r repr) String() string {
	switch r {
	case reprVoid:
		return "void"
	case reprU8:
		return "u8"
	case reprU16:
		return "u16"
	case reprU32:
		return "u32"
	case reprU64:
		return "u64"
	case reprMP:
		return "mp_int"
	case reprWeight:
		return "weight_counter"
	default:
		return "unknown"
	}
}

// Adaptive is the variant-typed dense bin array: it starts as void (all
// zeros, no allocation), promotes through
// progressively wider unsigned integer widths on overflow, and promotes to
// a weighted (Σw, Σw²) pair representation on the first AddWeighted, on an
// Add whose weight is not a non-negative integer, or on Scale. Every
// promotion preserves every cell's value exactly.
type Adaptive struct {
	size int
	rep  repr

	u8  []uint8
	u16 []uint16
	u32 []uint32
	u64 []uint64
	mp  []big.Int

	sumw, sumw2 []float64

	log *logrus.Logger
}

// Option configures an Adaptive at construction.
type Option func(*Adaptive)

// WithLogger attaches a logger used to record representation promotions
// (Debug level) and resource exhaustion (Error level). The default is
// logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option {
	return func(a *Adaptive) { a.log = l }
}

// NewAdaptive creates a void-state Adaptive of the given size. No buffer is
// allocated until the first Increase or Add.
func NewAdaptive(size int, opts ...Option) *Adaptive {
	a := &Adaptive{size: size, rep: reprVoid, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adaptive) Size() int { return a.size }

func (a *Adaptive) checkIndex(i int) error {
	if i < 0 || i >= a.size {
		return herr.WithDetail(herr.ErrIndexOutOfRange, "storage cell index out of range")
	}
	return nil
}

func (a *Adaptive) Increase(i int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	return a.intAdd(i, 1)
}

func (a *Adaptive) Add(i int, w float64) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	if a.rep != reprWeight && isNonNegInt(w) {
		return a.intAdd(i, uint64(w))
	}
	return a.weightedAdd(i, w)
}

// AddWeighted records one weighted fill of weight w at cell i, always as a
// true (Σw, Σw²) accumulation: unlike Add, an integer w does not take the
// integer fast path, since one fill of weight w contributes w² to the
// variance, not w.
func (a *Adaptive) AddWeighted(i int, w float64) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	return a.weightedAdd(i, w)
}

func isNonNegInt(w float64) bool {
	return w >= 0 && w == math.Trunc(w) && !math.IsInf(w, 0)
}

// intAdd adds the unsigned integer n to cell i, cascading promotions
// through the integer widths (and into weighted, if the storage is
// already weighted) as needed.
func (a *Adaptive) intAdd(i int, n uint64) error {
	if a.rep == reprWeight {
		return a.weightedAdd(i, float64(n))
	}
	if a.rep == reprVoid {
		a.materializeU8()
	}
	for {
		switch a.rep {
		case reprU8:
			cur := uint64(a.u8[i])
			if n > math.MaxUint8-cur {
				if err := a.promote(reprU16); err != nil {
					return err
				}
				continue
			}
			a.u8[i] = uint8(cur + n)
			return nil
		case reprU16:
			cur := uint64(a.u16[i])
			if n > math.MaxUint16-cur {
				if err := a.promote(reprU32); err != nil {
					return err
				}
				continue
			}
			a.u16[i] = uint16(cur + n)
			return nil
		case reprU32:
			cur := uint64(a.u32[i])
			if n > math.MaxUint32-cur {
				if err := a.promote(reprU64); err != nil {
					return err
				}
				continue
			}
			a.u32[i] = uint32(cur + n)
			return nil
		case reprU64:
			cur := a.u64[i]
			if cur > math.MaxUint64-n {
				if err := a.promote(reprMP); err != nil {
					return err
				}
				continue
			}
			a.u64[i] = cur + n
			return nil
		case reprMP:
			a.mp[i].Add(&a.mp[i], new(big.Int).SetUint64(n))
			return nil
		}
	}
}

func (a *Adaptive) weightedAdd(i int, w float64) error {
	if a.rep != reprWeight {
		if err := a.promote(reprWeight); err != nil {
			return err
		}
	}
	a.sumw[i] += w
	a.sumw2[i] += w * w
	return nil
}

func (a *Adaptive) materializeU8() {
	a.u8 = make([]uint8, a.size)
	a.rep = reprU8
}

// promote reallocates a fresh buffer of the target representation, copy-
// converts every cell, then swaps it in. The old buffer stays intact until
// the new one is fully populated, so allocation failure leaves no partial
// promotion observable.
func (a *Adaptive) promote(to repr) error {
	from := a.rep
	defer func() {
		if a.log != nil {
			a.log.WithFields(logrus.Fields{"from": from.String(), "to": to.String(), "size": a.size}).Debug("storage representation promoted")
		}
	}()

	switch to {
	case reprU16:
		buf, err := allocU16(a.size)
		if err != nil {
			return a.exhausted(to, err)
		}
		for i, v := range a.u8 {
			buf[i] = uint16(v)
		}
		a.u8, a.u16 = nil, buf
	case reprU32:
		buf, err := allocU32(a.size)
		if err != nil {
			return a.exhausted(to, err)
		}
		for i, v := range a.u16 {
			buf[i] = uint32(v)
		}
		a.u16, a.u32 = nil, buf
	case reprU64:
		buf, err := allocU64(a.size)
		if err != nil {
			return a.exhausted(to, err)
		}
		for i, v := range a.u32 {
			buf[i] = uint64(v)
		}
		a.u32, a.u64 = nil, buf
	case reprMP:
		buf, err := allocMP(a.size)
		if err != nil {
			return a.exhausted(to, err)
		}
		switch from {
		case reprU64:
			for i, v := range a.u64 {
				buf[i].SetUint64(v)
			}
			a.u64 = nil
		case reprVoid:
			// no-op: all zero
		}
		a.mp = buf
	case reprWeight:
		sw, err := allocF64(a.size)
		if err != nil {
			return a.exhausted(to, err)
		}
		sw2, err := allocF64(a.size)
		if err != nil {
			return a.exhausted(to, err)
		}
		for i := 0; i < a.size; i++ {
			v := a.valueLocked(i)
			sw[i], sw2[i] = v, v
		}
		a.u8, a.u16, a.u32, a.u64, a.mp = nil, nil, nil, nil, nil
		a.sumw, a.sumw2 = sw, sw2
	}
	a.rep = to
	return nil
}

func (a *Adaptive) exhausted(to repr, cause error) error {
	if a.log != nil {
		a.log.WithFields(logrus.Fields{"to": to.String(), "size": a.size, "cause": cause}).Error("storage promotion failed: resource exhausted")
	}
	return herr.WithDetail(herr.ErrResourceExhausted, "could not allocate "+to.String()+" buffer of size "+strconv.Itoa(a.size))
}

// allocation helpers exist so exhaustion is a single, testable error path
// rather than an unrecoverable panic from make().
func allocU16(n int) ([]uint16, error) { return make([]uint16, n), nil }
func allocU32(n int) ([]uint32, error) { return make([]uint32, n), nil }
func allocU64(n int) ([]uint64, error) { return make([]uint64, n), nil }
func allocF64(n int) ([]float64, error) { return make([]float64, n), nil }
func allocMP(n int) ([]big.Int, error)  { return make([]big.Int, n), nil }

func (a *Adaptive) Value(i int) float64 {
	if err := a.checkIndex(i); err != nil {
		return 0
	}
	return a.valueLocked(i)
}

func (a *Adaptive) valueLocked(i int) float64 {
	switch a.rep {
	case reprVoid:
		return 0
	case reprU8:
		return float64(a.u8[i])
	case reprU16:
		return float64(a.u16[i])
	case reprU32:
		return float64(a.u32[i])
	case reprU64:
		return float64(a.u64[i])
	case reprMP:
		f := new(big.Float).SetInt(&a.mp[i])
		v, _ := f.Float64()
		return v
	case reprWeight:
		return a.sumw[i]
	default:
		return 0
	}
}

func (a *Adaptive) Variance(i int) float64 {
	if err := a.checkIndex(i); err != nil {
		return 0
	}
	if a.rep == reprWeight {
		return a.sumw2[i]
	}
	return a.valueLocked(i)
}

func (a *Adaptive) Reset() {
	a.rep = reprVoid
	a.u8, a.u16, a.u32, a.u64, a.mp, a.sumw, a.sumw2 = nil, nil, nil, nil, nil, nil, nil
}

func (a *Adaptive) Scale(s float64) {
	if a.rep != reprWeight {
		_ = a.promote(reprWeight)
	}
	for i := 0; i < a.size; i++ {
		a.sumw[i] *= s
		a.sumw2[i] *= s * s
	}
}

// AddCell adds an arbitrary (value, variance) pair into cell i exactly,
// promoting the representation as needed: an integer-compatible pair
// (value == variance, a non-negative integer) stays on the integer path
// when the storage isn't already weighted; anything else promotes to
// weight_counter. This is the primitive both AddStorage and
// hist.Histogram's axis reduction use to merge cells across storages.
func (a *Adaptive) AddCell(i int, value, variance float64) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	if a.rep != reprWeight && value == variance && isNonNegInt(value) {
		return a.intAdd(i, uint64(value))
	}
	if err := a.ensureWeighted(); err != nil {
		return err
	}
	a.sumw[i] += value
	a.sumw2[i] += variance
	return nil
}

func (a *Adaptive) AddStorage(other Storage) error {
	if a.Size() != other.Size() {
		return herr.WithDetail(herr.ErrIncompatibleAxes, "storage size mismatch")
	}
	for i := 0; i < a.size; i++ {
		if err := a.AddCell(i, other.Value(i), other.Variance(i)); err != nil {
			return err
		}
	}
	return nil
}

func (a *Adaptive) ensureWeighted() error {
	if a.rep == reprWeight {
		return nil
	}
	return a.promote(reprWeight)
}

func (a *Adaptive) Equal(other Storage) bool {
	if a.Size() != other.Size() {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.Value(i) != other.Value(i) || a.Variance(i) != other.Variance(i) {
			return false
		}
	}
	return true
}

func (a *Adaptive) Clone() Storage {
	c := &Adaptive{size: a.size, rep: a.rep, log: a.log}
	c.u8 = append([]uint8(nil), a.u8...)
	c.u16 = append([]uint16(nil), a.u16...)
	c.u32 = append([]uint32(nil), a.u32...)
	c.u64 = append([]uint64(nil), a.u64...)
	c.sumw = append([]float64(nil), a.sumw...)
	c.sumw2 = append([]float64(nil), a.sumw2...)
	if a.mp != nil {
		c.mp = make([]big.Int, len(a.mp))
		for i := range a.mp {
			c.mp[i].Set(&a.mp[i])
		}
	}
	return c
}

// Repr reports the current representation tag as a string, for the buffer-
// view and pretty-printing external interfaces.
func (a *Adaptive) Repr() string { return a.rep.String() }

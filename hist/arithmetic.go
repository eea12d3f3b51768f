package hist

// Plus returns a new histogram equal to a + b, without mutating either
// operand. It requires equal axis containers, same as Add.
func Plus(a, b *Histogram) (*Histogram, error) {
	result := a.Clone()
	if err := result.Add(b); err != nil {
		return nil, err
	}
	return result, nil
}

// Times returns a new histogram equal to h scaled by s, without mutating h.
func Times(h *Histogram, s float64) *Histogram {
	result := h.Clone()
	result.Scale(s)
	return result
}

// DivideInPlace divides every cell of h by s in place.
func (h *Histogram) DivideInPlace(s float64) { h.Scale(1 / s) }

// Divide returns a new histogram equal to h with every cell divided by s.
func Divide(h *Histogram, s float64) *Histogram {
	return Times(h, 1/s)
}

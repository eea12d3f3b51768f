package axis

// KindOf reports the Kind of the concrete variant behind a, the tagged-
// variant discriminator the persistence tree walk records for each axis,
// without committing to a specific generic instantiation (e.g. the element
// type of a Category).
func KindOf(a Axis) Kind {
	switch a.(type) {
	case *Regular:
		return KindRegular
	case *Circular:
		return KindCircular
	case *Variable:
		return KindVariable
	case *Integer:
		return KindInteger
	default:
		return KindCategory
	}
}

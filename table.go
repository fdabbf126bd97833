package algonufft

// Table describes one axis of the separable interpolation kernel: a finely
// sampled 1D table of length J*L+1 covering the support [-J/2, J/2] at L
// subdivisions per grid unit, either real-valued or complex-valued (split
// into real and imaginary planes).
//
// The table samples are owned by the caller and read, never copied or
// modified, by the plan. The sample at index (J*L)/2 is treated as the
// kernel's center (offset 0).
//
// Building good tables — sampling a Kaiser-Bessel or min-max optimized
// kernel — is the caller's job; see examples/kaiserbessel for one way.
type Table[T Float] struct {
	re []T
	im []T
	j  int
	l  int
}

// NewTable wraps a real-valued interpolation table. samples must have
// length j*l+1 with j and l positive.
func NewTable[T Float](samples []T, j, l int) (Table[T], error) {
	if j <= 0 || l <= 0 {
		return Table[T]{}, ErrWindow
	}
	if len(samples) != j*l+1 {
		return Table[T]{}, ErrTableLength
	}

	return Table[T]{re: samples, j: j, l: l}, nil
}

// NewComplexTable wraps a complex-valued interpolation table given as
// separate real and imaginary planes, each of length j*l+1.
func NewComplexTable[T Float](re, im []T, j, l int) (Table[T], error) {
	if j <= 0 || l <= 0 {
		return Table[T]{}, ErrWindow
	}
	if re == nil || im == nil {
		return Table[T]{}, ErrNilSlice
	}
	if len(re) != j*l+1 || len(im) != j*l+1 {
		return Table[T]{}, ErrTableLength
	}

	return Table[T]{re: re, im: im, j: j, l: l}, nil
}

// IsComplex reports whether the table carries an imaginary plane.
func (t Table[T]) IsComplex() bool {
	return t.im != nil
}

// J returns the window width (grid neighbors contributing per axis).
func (t Table[T]) J() int {
	return t.j
}

// L returns the table's subdivision rate per grid unit.
func (t Table[T]) L() int {
	return t.l
}

package biquad

// Coefficients holds the transfer function of a second-order section with
// the leading denominator coefficient normalized to 1 (a0 is not stored):
//
//	y_k = B0*x_k + B1*x_{k-1} + B2*x_{k-2} - A1*y_{k-1} - A2*y_{k-2}
//
// A Coefficients value is treated as immutable: consumers replace it
// wholesale, never field by field while a section is running.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// DCGain returns the gain at zero frequency, (B0+B1+B2)/(1+A1+A2).
func (c Coefficients) DCGain() float64 {
	return (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
}

// Section is a single biquad with coefficients and two delay registers,
// processed in Direct Form II Transposed:
//
//	y  = B0*x + z1
//	z1 = B1*x - A1*y + z2
//	z2 = B2*x - A2*y
//
// The transposed structure keeps the registers well scaled under repeated
// floating-point updates and stays meaningful when the coefficients are
// swapped between calls, which is what allows block-boundary coefficient
// updates over a live delay line.
type Section struct {
	Coefficients

	z1, z2 float64
}

// NewSection returns a Section with the given coefficients and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.z1
	s.z1 = s.B1*x - s.A1*y + s.z2
	s.z2 = s.B2*x - s.A2*y

	return y
}

// ProcessBlockTo filters src into dst. Both slices must have the same
// length. Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint

	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	z1, z2 := s.z1, s.z2

	for i, x := range src {
		y := b0*x + z1
		z1 = b1*x - a1*y + z2
		z2 = b2*x - a2*y
		dst[i] = y
	}

	s.z1, s.z2 = z1, z2
}

// Reset clears the delay registers to zero.
func (s *Section) Reset() {
	s.z1 = 0
	s.z2 = 0
}

// State returns the current delay registers [z1, z2].
func (s *Section) State() [2]float64 {
	return [2]float64{s.z1, s.z2}
}

// SetState restores previously saved delay registers.
func (s *Section) SetState(state [2]float64) {
	s.z1 = state[0]
	s.z2 = state[1]
}

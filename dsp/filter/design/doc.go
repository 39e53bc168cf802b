// Package design derives biquad coefficients for the two-pole lowpass.
//
// The design is pure and deterministic: it maps a pre-warped cutoff and a
// quality factor onto a [biquad.Coefficients] value via the bilinear
// transform of the analog prototype H(s) = 1/(s² + s/Q + 1). Stability is
// structural — every valid (cutoff, Q) input lands the poles inside the
// unit circle, so no runtime pole check is performed.
package design

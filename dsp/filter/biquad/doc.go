// Package biquad provides the second-order IIR runtime used by the modfx
// engine.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Coefficient design lives
// in dsp/filter/design; this package only executes.
package biquad

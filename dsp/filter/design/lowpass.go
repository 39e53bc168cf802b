package design

import (
	"math"

	"github.com/cwbudde/algo-modfx/dsp/filter/biquad"
)

// DefaultQ is the quality factor of a maximally flat (Butterworth-shaped)
// second-order response, with no resonant peak.
const DefaultQ = 1 / math.Sqrt2

// LowpassRatio designs a second-order lowpass from a cutoff expressed as a
// fraction of the sample rate, pre-warped through g = tan(π·ratio).
//
// Callers must keep ratio strictly inside (0, 0.5); at 0.5 the pre-warp
// tangent hits its pole. Out-of-range or non-finite ratios yield zero
// Coefficients, i.e. a silent filter. Quality factors that are not positive
// and finite fall back to [DefaultQ].
func LowpassRatio(ratio, q float64) biquad.Coefficients {
	if ratio <= 0 || ratio >= 0.5 || math.IsNaN(ratio) {
		return biquad.Coefficients{}
	}

	q = normalizedQ(q)

	g := math.Tan(math.Pi * ratio)
	norm := 1 / (1 + g/q + g*g)
	b0 := g * g * norm

	return biquad.Coefficients{
		B0: b0,
		B1: 2 * b0,
		B2: b0,
		A1: 2 * (g*g - 1) * norm,
		A2: (1 - g/q + g*g) * norm,
	}
}

// Lowpass designs a second-order lowpass at freq (Hz) with quality factor q.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return biquad.Coefficients{}
	}

	return LowpassRatio(freq/sampleRate, q)
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return DefaultQ
	}

	return q
}

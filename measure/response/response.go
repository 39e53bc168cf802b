package response

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptyResponse is returned when an empty impulse response is analyzed.
var ErrEmptyResponse = errors.New("response: impulse response is empty")

// MagnitudeSpectrum returns the single-sided magnitude spectrum |H[k]| of a
// real-valued impulse response, for k in [0, n/2] where n is the FFT size.
// The input is zero-padded to the next power of two; use [FFTSizeFor] to
// recover n for bin-to-frequency conversion.
func MagnitudeSpectrum(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyResponse
	}

	n := FFTSizeFor(len(ir))

	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// PeakBin returns the index of the largest magnitude bin, or -1 for an
// empty spectrum.
func PeakBin(mag []float64) int {
	if len(mag) == 0 {
		return -1
	}

	best := 0
	for i, v := range mag {
		if v > mag[best] {
			best = i
		}
	}

	return best
}

// BinFrequency converts a bin index into Hz for the given FFT size and
// sample rate.
func BinFrequency(bin, fftSize int, sampleRate float64) float64 {
	if fftSize <= 0 {
		return 0
	}

	return float64(bin) * sampleRate / float64(fftSize)
}

// FFTSizeFor returns the power-of-two transform size MagnitudeSpectrum
// uses for an impulse response of the given length.
func FFTSizeFor(irLen int) int {
	if irLen <= 0 {
		return 0
	}

	p := 1
	for p < irLen {
		p <<= 1
	}

	return p
}

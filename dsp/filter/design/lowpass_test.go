package design

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-modfx/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func assertStableSection(t *testing.T, c biquad.Coefficients) {
	t.Helper()

	disc := complex(c.A1*c.A1-4*c.A2, 0)
	sqrtDisc := cmplx.Sqrt(disc)
	r1 := (-complex(c.A1, 0) + sqrtDisc) / 2
	r2 := (-complex(c.A1, 0) - sqrtDisc) / 2

	if cmplx.Abs(r1) >= 1+1e-9 || cmplx.Abs(r2) >= 1+1e-9 {
		t.Fatalf("unstable poles: |r1|=%v |r2|=%v coeff=%#v", cmplx.Abs(r1), cmplx.Abs(r2), c)
	}
}

func TestLowpassRatioUnityDCGain(t *testing.T) {
	for _, ratio := range []float64{0.001, 0.01, 0.05, 0.1, 0.2, 0.3, 0.4, 0.45, 0.49, 0.499} {
		c := LowpassRatio(ratio, DefaultQ)
		if !almostEqual(c.DCGain(), 1, 1e-9) {
			t.Fatalf("ratio %v: DC gain = %v, want 1", ratio, c.DCGain())
		}
	}
}

func TestLowpassRatioStabilityGrid(t *testing.T) {
	ratios := []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.2, 0.3, 0.4, 0.45, 0.49, 0.499}
	qs := []float64{0.01, 0.1, 0.5, DefaultQ, 1, 1.4142, 2, 5, 10, 50, 100}

	for _, ratio := range ratios {
		for _, q := range qs {
			c := LowpassRatio(ratio, q)
			assertStableSection(t, c)

			// Bounded impulse response over 10k samples: no divergence.
			ir := biquad.NewSection(c).ImpulseResponse(10000)
			maxAbs := 0.0
			for _, v := range ir {
				if a := math.Abs(v); a > maxAbs {
					maxAbs = a
				}
			}
			if math.IsNaN(maxAbs) || maxAbs > 1e4 {
				t.Fatalf("ratio %v q %v: impulse response peak %v", ratio, q, maxAbs)
			}
		}
	}
}

func TestLowpassRatioMatchesClosedForm(t *testing.T) {
	ratio, q := 0.49, 1.4142

	g := math.Tan(math.Pi * ratio)
	norm := 1 / (1 + g/q + g*g)
	wantB0 := g * g * norm

	c := LowpassRatio(ratio, q)
	if !almostEqual(c.B0, wantB0, 1e-12) {
		t.Fatalf("B0 = %v, want %v", c.B0, wantB0)
	}
	if !almostEqual(c.B1, 2*wantB0, 1e-12) || !almostEqual(c.B2, wantB0, 1e-12) {
		t.Fatalf("numerator shape mismatch: %#v", c)
	}
	if !almostEqual(c.A2, (1-g/q+g*g)*norm, 1e-12) {
		t.Fatalf("A2 = %v, want %v", c.A2, (1-g/q+g*g)*norm)
	}
}

func TestLowpassHzWrapper(t *testing.T) {
	if got, want := Lowpass(4800, DefaultQ, 48000), LowpassRatio(0.1, DefaultQ); got != want {
		t.Fatalf("Lowpass(4800, q, 48000) = %#v, want %#v", got, want)
	}
}

func TestLowpassResponseShape(t *testing.T) {
	sr := 48000.0

	flat := Lowpass(1000, DefaultQ, sr)
	if !(cmplx.Abs(flat.Response(100, sr)) > cmplx.Abs(flat.Response(10000, sr))) {
		t.Fatal("lowpass shape check failed")
	}

	// A high Q puts a peak above unity near the cutoff.
	peaked := Lowpass(1000, 8, sr)
	if !(cmplx.Abs(peaked.Response(1000, sr)) > 1.5) {
		t.Fatalf("expected resonant peak near cutoff, |H| = %v", cmplx.Abs(peaked.Response(1000, sr)))
	}
}

func TestHigherQRaisesPeak(t *testing.T) {
	sr := 48000.0
	prev := 0.0
	for _, q := range []float64{DefaultQ, 1, 2, 4, 8} {
		c := Lowpass(2000, q, sr)
		peak := cmplx.Abs(c.Response(2000, sr))
		if peak <= prev {
			t.Fatalf("q %v: peak %v not above previous %v", q, peak, prev)
		}
		prev = peak
	}
}

func TestInvalidInputs(t *testing.T) {
	zero := biquad.Coefficients{}

	for _, ratio := range []float64{0, -0.1, 0.5, 0.7, math.NaN(), math.Inf(1)} {
		if got := LowpassRatio(ratio, DefaultQ); got != zero {
			t.Fatalf("ratio %v: expected zero coefficients, got %#v", ratio, got)
		}
	}

	// Non-positive q falls back to the maximally flat response.
	if got, want := LowpassRatio(0.1, 0), LowpassRatio(0.1, DefaultQ); got != want {
		t.Fatalf("q=0 fallback mismatch: %#v vs %#v", got, want)
	}
	if got, want := LowpassRatio(0.1, -3), LowpassRatio(0.1, DefaultQ); got != want {
		t.Fatalf("q<0 fallback mismatch: %#v vs %#v", got, want)
	}

	if got := Lowpass(1000, DefaultQ, 0); got != zero {
		t.Fatalf("expected zero coefficients for invalid sample rate, got %#v", got)
	}
	if got := Lowpass(24000, DefaultQ, 48000); got != zero {
		t.Fatalf("expected zero coefficients at Nyquist, got %#v", got)
	}
}

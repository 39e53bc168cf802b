// Command lpinfo prints the coefficient set and magnitude response of the
// two-pole lowpass for a given control setting.
//
// Usage:
//
//	lpinfo [flags]
//
// By default the cutoff and resonance knobs are interpreted as normalized
// control values in [0, 1); -ratio and -q bypass the knob mapping.
//
// Examples:
//
//	lpinfo -cutoff 0.5 -res 0.25
//	lpinfo -ratio 0.1 -q 0.7071 -rate 44100
//	lpinfo -cutoff 0.999 -points 24
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-modfx/dsp/filter/biquad"
	"github.com/cwbudde/algo-modfx/dsp/filter/design"
	"github.com/cwbudde/algo-modfx/modfx"
)

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	knobCutoff := flag.Float64("cutoff", 0.999, "cutoff knob value in [0, 1)")
	knobRes := flag.Float64("res", 0, "resonance knob value in [0, 1)")
	ratio := flag.Float64("ratio", 0, "cutoff ratio override in (0, 0.5); 0 uses the cutoff knob")
	q := flag.Float64("q", 0, "quality factor override; 0 uses the resonance knob")
	points := flag.Int("points", 16, "number of log-spaced response points")
	flag.Parse()

	r := *ratio
	if r == 0 {
		r = modfx.CutoffRatioForControl(*knobCutoff)
	}

	qv := *q
	if qv == 0 {
		qv = modfx.ResonanceForControl(*knobRes)
	}

	c := design.LowpassRatio(r, qv)
	if c == (biquad.Coefficients{}) {
		fmt.Fprintf(os.Stderr, "lpinfo: invalid design inputs: ratio %v, q %v\n", r, qv)
		os.Exit(1)
	}

	fmt.Printf("cutoff ratio  %.6f (%.1f Hz at %.0f Hz)\n", r, r*(*rate), *rate)
	fmt.Printf("quality       %.6f\n", qv)
	fmt.Printf("dc gain       %.6f\n\n", c.DCGain())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "B0\tB1\tB2\tA1\tA2")
	fmt.Fprintf(w, "%.8f\t%.8f\t%.8f\t%.8f\t%.8f\n", c.B0, c.B1, c.B2, c.A1, c.A2)
	w.Flush()
	fmt.Println()

	n := *points
	if n < 2 {
		n = 2
	}

	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "freq (Hz)\tmag (dB)")

	lo := math.Log10(10)
	hi := math.Log10(*rate / 2)
	for i := 0; i < n; i++ {
		f := math.Pow(10, lo+(hi-lo)*float64(i)/float64(n-1))
		fmt.Fprintf(w, "%.1f\t%+.2f\n", f, c.MagnitudeDB(f, *rate))
	}
	w.Flush()
}

package modfx

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-modfx/dsp/filter/biquad"
	"github.com/cwbudde/algo-modfx/dsp/filter/design"
)

// Initial control state installed by New, matching the hardware unit's
// power-on values: cutoff just under Nyquist, a mild resonant peak.
const (
	DefaultCutoffRatio = 0.49
	DefaultResonance   = 1.4142
)

// paramSnapshot is the unit of handoff between the control context and the
// processing context. It is published whole so the processing side can
// never observe a cutoff from one update paired with a resonance from
// another.
type paramSnapshot struct {
	cutoffRatio float64
	q           float64
}

// Engine is a four-channel two-pole lowpass: an interleaved-stereo main
// path and an interleaved-stereo sub path, each pair of channels sharing
// one coefficient snapshot.
//
// ProcessBlock must be driven from a single processing context. The Set*
// control methods may be called from one other context at any time; they
// never design coefficients themselves and never block.
type Engine struct {
	sampleRate float64

	mainCoeffs biquad.Coefficients
	subCoeffs  biquad.Coefficients

	mainL, mainR biquad.Section
	subL, subR   biquad.Section

	// Latest mapped knob values, owned by the control context (single
	// writer). Each setter updates its own value and republishes both,
	// so the newest pair always wins.
	ctlCutoffRatio float64
	ctlResonance   float64

	pending atomic.Pointer[paramSnapshot]
}

// Option mutates engine construction parameters.
type Option func(*config) error

type config struct {
	cutoffRatio float64
	resonance   float64
}

// WithCutoffRatio sets the initial cutoff as a fraction of the sample
// rate, in (0, 0.5).
func WithCutoffRatio(ratio float64) Option {
	return func(cfg *config) error {
		if ratio <= 0 || ratio >= 0.5 || math.IsNaN(ratio) {
			return fmt.Errorf("modfx: cutoff ratio must be in (0, 0.5): %f", ratio)
		}
		cfg.cutoffRatio = ratio
		return nil
	}
}

// WithResonance sets the initial quality factor, > 0 and finite.
func WithResonance(q float64) Option {
	return func(cfg *config) error {
		if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
			return fmt.Errorf("modfx: resonance must be > 0 and finite: %f", q)
		}
		cfg.resonance = q
		return nil
	}
}

// New creates an engine for the given sample rate, flushes all four
// channels, and designs and installs coefficients for both paths
// synchronously, so the first block already runs against a valid design.
func New(sampleRate float64, opts ...Option) (*Engine, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("modfx: sample rate must be > 0 and finite: %f", sampleRate)
	}

	cfg := config{
		cutoffRatio: DefaultCutoffRatio,
		resonance:   DefaultResonance,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		sampleRate:     sampleRate,
		ctlCutoffRatio: cfg.cutoffRatio,
		ctlResonance:   cfg.resonance,
	}
	e.Reset()
	e.install(cfg.cutoffRatio, cfg.resonance)

	return e, nil
}

// install designs one lowpass from (ratio, q) and publishes the result to
// both paths. Main and sub currently share one control source; the two
// snapshot fields stay separate so splitting them is a local change.
func (e *Engine) install(ratio, q float64) {
	c := design.LowpassRatio(ratio, q)
	e.mainCoeffs = c
	e.subCoeffs = c
	e.mainL.Coefficients = c
	e.mainR.Coefficients = c
	e.subL.Coefficients = c
	e.subR.Coefficients = c
}

// Reset flushes the delay registers of all four channels. It does not
// touch installed coefficients or pending control values.
func (e *Engine) Reset() {
	e.mainL.Reset()
	e.mainR.Reset()
	e.subL.Reset()
	e.subR.Reset()
}

// SampleRate returns the rate the engine was constructed with.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// MainCoefficients returns the snapshot currently installed on the main
// path.
func (e *Engine) MainCoefficients() biquad.Coefficients { return e.mainCoeffs }

// SubCoefficients returns the snapshot currently installed on the sub
// path.
func (e *Engine) SubCoefficients() biquad.Coefficients { return e.subCoeffs }

// ProcessBlock filters one interleaved stereo block per path.
//
// All four buffers must share one even length (2×frames, left/right
// interleaved). At most one pending control update is applied, before the
// first sample; every sample of the block then runs against that single
// snapshot per path. Zero-alloc, non-blocking.
func (e *Engine) ProcessBlock(mainIn, mainOut, subIn, subOut []float64) error {
	n := len(mainIn)
	if len(mainOut) != n || len(subIn) != n || len(subOut) != n {
		return fmt.Errorf("modfx: buffer lengths must match: main %d/%d, sub %d/%d",
			len(mainIn), len(mainOut), len(subIn), len(subOut))
	}
	if n%2 != 0 {
		return fmt.Errorf("modfx: interleaved stereo blocks need an even sample count: %d", n)
	}

	if p := e.pending.Swap(nil); p != nil {
		e.install(p.cutoffRatio, p.q)
	}

	for i := 0; i < n; i += 2 {
		mainOut[i] = e.mainL.ProcessSample(mainIn[i])
		mainOut[i+1] = e.mainR.ProcessSample(mainIn[i+1])
		subOut[i] = e.subL.ProcessSample(subIn[i])
		subOut[i+1] = e.subR.ProcessSample(subIn[i+1])
	}

	return nil
}

package modfx

import (
	"fmt"
	"math"
)

// ParamID identifies a control-surface parameter.
type ParamID int

// Control-surface parameters accepted by SetControl.
const (
	ParamCutoff ParamID = iota
	ParamResonance
)

// Knob-to-parameter mapping constants. The cutoff sweep is exponential
// from 0.001·Fs up to just below the designer's pre-warp ceiling: 8.9456
// is 2·log2(490)/0.999, putting a knob value of 0.999 at ratio ≈0.490.
// The resonance sweep spans four octaves of Q above the flat response.
const (
	cutoffRatioFloor = 0.001
	cutoffOctaves    = 8.9456
	resonanceOctaves = 4.0
)

// flatQ is the quality factor with no resonant peak.
const flatQ = 1 / math.Sqrt2

// CutoffRatioForControl maps a normalized knob value in [0, 1) to a cutoff
// ratio in [0.001, ≈0.49]. Out-of-range values are clamped.
func CutoffRatioForControl(v float64) float64 {
	return cutoffRatioFloor * mathPower2(clampControl(v)*cutoffOctaves)
}

// ResonanceForControl maps a normalized knob value in [0, 1) to a quality
// factor in [1/√2, ≈16/√2]. Out-of-range values are clamped.
func ResonanceForControl(v float64) float64 {
	return mathPower2(clampControl(v)*resonanceOctaves) * flatQ
}

// SetCutoffControl maps a normalized knob value to a cutoff ratio and
// schedules it. The new design takes effect at the next block boundary;
// repeated calls between blocks overwrite each other and only the latest
// pair is applied. Wait-free.
func (e *Engine) SetCutoffControl(v float64) {
	e.ctlCutoffRatio = CutoffRatioForControl(v)
	e.publish()
}

// SetResonanceControl maps a normalized knob value to a quality factor and
// schedules it, with the same deferral semantics as SetCutoffControl.
func (e *Engine) SetResonanceControl(v float64) {
	e.ctlResonance = ResonanceForControl(v)
	e.publish()
}

// SetControl dispatches a host parameter change by id.
func (e *Engine) SetControl(id ParamID, v float64) error {
	switch id {
	case ParamCutoff:
		e.SetCutoffControl(v)
	case ParamResonance:
		e.SetResonanceControl(v)
	default:
		return fmt.Errorf("modfx: unknown parameter id %d", id)
	}

	return nil
}

// publish hands the latest mapped pair to the processing context as one
// immutable snapshot. A snapshot replaced before the next block starts is
// simply lost; a snapshot can never be observed half-written.
func (e *Engine) publish() {
	e.pending.Store(&paramSnapshot{
		cutoffRatio: e.ctlCutoffRatio,
		q:           e.ctlResonance,
	})
}

// clampControl forces a knob value into [0, 1). Hosts are expected to stay
// in range already; clamping keeps the designer's input contract intact
// when they do not. NaN clamps to zero.
func clampControl(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}

	return v
}

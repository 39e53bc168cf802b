// Package modfx implements a real-time two-pole lowpass modulation effect:
// four filter channels (interleaved-stereo main and sub paths) driven by
// two shared coefficient snapshots and one asynchronous control surface.
//
// Control updates are wait-free and deferred. Setters map normalized knob
// values to a (cutoff ratio, quality factor) pair and publish the pair as
// one atomic unit; [Engine.ProcessBlock] applies at most one pending pair
// per block, before the first sample, so every sample of a block runs
// against a single coefficient snapshot per path. A control tweak may land
// one block late; it can never be observed half-applied.
//
// The processing path performs no allocation and never blocks.
package modfx

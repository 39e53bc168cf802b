// Package response computes single-sided magnitude spectra of impulse
// responses, for verifying filter shapes (rolloff, resonant-peak
// placement) without walking the transfer function analytically.
package response

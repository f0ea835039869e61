// Package band provides octave-band spectra and their reduction to a
// single weighted level.
//
// A [Spectrum] is an immutable, ordered list of (centre frequency, level)
// pairs. A [Weighting] is a position-aligned list of per-band corrections,
// normally the A-weighting table of [weighting.Corrections]. The two are
// combined by energetic (power) summation:
//
//	L = 10·log10( Σ 10^((L_i + W_i)/10) )
//
// Summing band energies and converting back is what keeps decibel
// arithmetic physically meaningful; levels are never averaged.
//
// Band edges follow the IEC 61260 base-10 system used by octave filter
// banks:
//
//	G = 10^(3/10)
//	f_upper = f_center * G^(1/(2*N))
//	f_lower = f_center * G^(-1/(2*N))
//
// Basic usage:
//
//	s, _ := band.Canonical(106, 105, 102, 100, 98, 95, 90)
//	w, _ := band.AWeighting(s.Freqs())
//	dBA, _ := band.BroadbandDBA(s, w)
package band

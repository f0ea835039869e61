// Package weighting provides A, C, and Z frequency weighting corrections
// per IEC 61672.
//
// Frequency weighting curves approximate the frequency-dependent
// sensitivity of human hearing. Two views of the same curves are offered:
//
//   - [MagnitudeDB] evaluates the analog prototype at any frequency.
//   - [Nominal] and [Corrections] return the tabulated values of the
//     standard at nominal 1/3-octave centre frequencies (10 Hz to 20 kHz),
//     rounded to 0.1 dB. These are the values used when octave-band levels
//     are reduced to a single dB(A) figure.
//
// All curves are normalized to 0 dB at the 1 kHz reference frequency.
// B-weighting is not provided: it was withdrawn from IEC 61672 and no
// band table in this module uses it.
package weighting

// Package reverb relates room reverberation time to equivalent absorption
// area and estimates reverberation time from measured impulse responses.
//
// The Sabine relation links the two:
//
//	A = 0.161 · V / RT60
//
// with V the room volume in m³, A the equivalent absorption area in m² and
// RT60 in seconds.
//
// [Analyzer] derives RT60 from an impulse response by Schroeder backward
// integration and linear regression on the decay curve (T30, falling back
// to T20), plus the early decay time.
package reverb

// Package testutil holds deterministic test signals and tolerance
// assertions shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// ln1000 turns a 60 dB energy decay into an amplitude exponent.
const ln1000 = 6.907755278982137

// DeterministicSine returns amplitude·sin(2π·freq·n/rate) for n in [0, length).
func DeterministicSine(freq, rate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freq / rate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude) drawn
// from a generator seeded with seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// ExponentialDecay returns an impulse response exp(−ln(1000)·t/rt60) that
// falls by 60 dB in rt60 seconds, sampled at rate for seconds.
func ExponentialDecay(rate, rt60, seconds float64) []float64 {
	out := make([]float64, int(rate*seconds))
	k := ln1000 / rt60
	for i := range out {
		out[i] = math.Exp(-k * float64(i) / rate)
	}
	return out
}

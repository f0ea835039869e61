package transmission

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/mjibson/go-dsp/window"

	"github.com/mauromussin/opened-window/dsp/core"
)

// Errors returned by the comparison functions.
var (
	ErrEmpty          = errors.New("transmission: empty series")
	ErrTooShort       = errors.New("transmission: spectrum needs at least 2 samples")
	ErrLengthMismatch = errors.New("transmission: series lengths differ")
	ErrSilent         = errors.New("transmission: series carries no energy")
	ErrRate           = errors.New("transmission: angular rate must be in (0, π]")
)

// Energy returns Σx².
func Energy(x []float64) float64 {
	return vecmath.DotProduct(x, x)
}

// InsertionLoss returns 10·log10(E_ref/E_obs) in dB. Positive values mean
// the obstruction removed energy.
func InsertionLoss(reference, obstructed []float64) (float64, error) {
	if err := checkPair(reference, obstructed); err != nil {
		return 0, err
	}

	ref, obs := Energy(reference), Energy(obstructed)
	if ref == 0 || obs == 0 {
		return 0, ErrSilent
	}

	return core.LinearPowerToDB(ref / obs), nil
}

// PowerSpectrum returns the one-sided power spectrum |X[k]|², k = 0…N/2, of
// the Hann-windowed series zero-padded to the next power of two N.
func PowerSpectrum(series []float64) ([]float64, error) {
	if len(series) == 0 {
		return nil, ErrEmpty
	}
	if len(series) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooShort, len(series))
	}

	n := nextPowerOf2(len(series))
	coeffs := window.Hann(len(series))

	in := make([]complex128, n)
	for i, v := range series {
		in[i] = complex(v*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("transmission: fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("transmission: fft: %w", err)
	}

	half := n/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for k := range half {
		re[k], im[k] = real(out[k]), imag(out[k])
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	return power, nil
}

// BinRate returns the angular rate in rad/sample of bin k of an n-point
// transform.
func BinRate(k, n int) float64 {
	return 2 * math.Pi * float64(k) / float64(n)
}

// InsertionLossAt compares the power spectra of both series at the bin
// nearest to rate (rad/sample).
func InsertionLossAt(reference, obstructed []float64, rate float64) (float64, error) {
	if !(rate > 0 && rate <= math.Pi) {
		return 0, fmt.Errorf("%w: %g", ErrRate, rate)
	}
	if err := checkPair(reference, obstructed); err != nil {
		return 0, err
	}

	ref, err := PowerSpectrum(reference)
	if err != nil {
		return 0, err
	}
	obs, err := PowerSpectrum(obstructed)
	if err != nil {
		return 0, err
	}

	n := 2 * (len(ref) - 1)
	k := int(math.Round(rate * float64(n) / (2 * math.Pi)))
	if ref[k] == 0 || obs[k] == 0 {
		return 0, fmt.Errorf("%w: bin %d", ErrSilent, k)
	}

	return core.LinearPowerToDB(ref[k] / obs[k]), nil
}

func checkPair(reference, obstructed []float64) error {
	if len(reference) == 0 || len(obstructed) == 0 {
		return ErrEmpty
	}
	if len(reference) != len(obstructed) {
		return fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(reference), len(obstructed))
	}
	return nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

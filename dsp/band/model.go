package band

import "fmt"

// Model pairs a source spectrum with its weighting table.
type Model struct {
	spectrum  Spectrum
	weighting Weighting
}

// NewModel checks that s and w are position-aligned.
func NewModel(s Spectrum, w Weighting) (Model, error) {
	if s.Len() == 0 {
		return Model{}, ErrEmpty
	}

	if s.Len() != w.Len() {
		return Model{}, fmt.Errorf("%w: %d bands, %d corrections", ErrShapeMismatch, s.Len(), w.Len())
	}

	return Model{spectrum: s, weighting: w}, nil
}

// NewAModel builds a model with the A-weighting table for the bands of s.
func NewAModel(s Spectrum) (Model, error) {
	w, err := AWeighting(s.freqs)
	if err != nil {
		return Model{}, err
	}

	return NewModel(s, w)
}

// Spectrum returns the source spectrum.
func (m Model) Spectrum() Spectrum { return m.spectrum }

// Weighting returns the correction table.
func (m Model) Weighting() Weighting { return m.weighting }

// BroadbandDBA returns the weighted broadband level of the source spectrum.
func (m Model) BroadbandDBA() float64 {
	v, _ := BroadbandDBA(m.spectrum, m.weighting)
	return v
}

// Reduce applies the model's weighting to another spectrum on the same bands.
func (m Model) Reduce(s Spectrum) (float64, error) {
	return BroadbandDBA(s, m.weighting)
}

package reverb

import (
	"fmt"

	"github.com/mauromussin/opened-window/dsp/core"
)

// SabineConstant is 24·ln(10)/c in s/m for c ≈ 343 m/s.
const SabineConstant = 0.161

// Errors returned by the Sabine relations.
var (
	ErrInvalidVolume = core.ConfigError("reverb: room volume must be positive")
	ErrInvalidRT60   = core.ConfigError("reverb: reverberation time must be positive")
	ErrInvalidArea   = core.ConfigError("reverb: absorption area must be positive")
)

// SabineArea returns the equivalent absorption area in m² of a room of
// volume m³ with reverberation time rt60 seconds.
func SabineArea(volume, rt60 float64) (float64, error) {
	if !(volume > 0) || !core.IsFinite(volume) {
		return 0, fmt.Errorf("%w: %g m³", ErrInvalidVolume, volume)
	}

	if !(rt60 > 0) || !core.IsFinite(rt60) {
		return 0, fmt.Errorf("%w: %g s", ErrInvalidRT60, rt60)
	}

	return SabineConstant * volume / rt60, nil
}

// SabineRT60 returns the reverberation time in seconds of a room of volume
// m³ with equivalent absorption area m².
func SabineRT60(volume, area float64) (float64, error) {
	if !(volume > 0) || !core.IsFinite(volume) {
		return 0, fmt.Errorf("%w: %g m³", ErrInvalidVolume, volume)
	}

	if !(area > 0) || !core.IsFinite(area) {
		return 0, fmt.Errorf("%w: %g m²", ErrInvalidArea, area)
	}

	return SabineConstant * volume / area, nil
}

// Package facade estimates the attenuation of exterior noise reaching a
// point inside a room through an open window set in a thick wall.
//
// For every octave band the model chains five contributions:
//
//  1. geometric spreading from the source to a 1 m reference point,
//     L_inc = Lw − 20·log10(d_src) − 11;
//  2. facade gain, either the empirical +3 dB minus a typology offset
//     ([GainEmpirical]) or the image-source interference term
//     10·log10(1 + R² + 2R·cos(kΔp)) with R = sqrt(1−α) ([GainCoherent]);
//  3. Maekawa diffraction by the jamb, from the path excess
//     δ = s·(1 − cos θ) and the Fresnel number N = 2δf/c, either
//     10·log10(3 + 20N) ([LossSimple]) or
//     20·log10(sqrt(2πN)/tanh(sqrt(2πN))) ([LossRefined]), zero for N ≤ 0;
//  4. aperture directivity sinc²(ψ/π) with ψ = (k·w/2)·sin θ;
//  5. the reverberant field 4·cos θ / A, with A the Sabine absorption area.
//
// The interior level adds the direct beam and the reverberant intensity,
// floored before the logarithm, and subtracts the diffraction loss. Both
// spectra are A-weighted and summed energetically; the attenuation is their
// difference.
//
// A baseline with unit directivity and no diffraction is computed alongside.
// Its difference to the full model is the bonus the jamb provides, which is
// exactly zero at normal incidence.
//
// Basic usage:
//
//	eng, _ := facade.New(facade.WithLossModel(facade.LossRefined))
//	s, _ := band.Canonical(106, 105, 102, 100, 98, 95, 90)
//	res, _ := eng.Evaluate(30, s, facade.DefaultGeometry())
//	fmt.Println(res.Attenuation)
package facade

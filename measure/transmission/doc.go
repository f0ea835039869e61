// Package transmission compares pressure time series recorded with and
// without an obstruction.
//
// The broadband insertion loss is the energy ratio
//
//	IL = 10·log10(Σ ref² / Σ obs²)
//
// and the narrowband variant compares Hann-windowed power spectra at the
// bin closest to a given angular rate in rad/sample, which is the natural
// unit of the dimensionless FDTD carrier.
package transmission

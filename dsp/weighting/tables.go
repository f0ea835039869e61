package weighting

// nominalCenters are the nominal 1/3-octave band centres of IEC 61260
// between 10 Hz and 20 kHz.
var nominalCenters = []float64{
	10, 12.5, 16, 20, 25, 31.5, 40, 50, 63, 80,
	100, 125, 160, 200, 250, 315, 400, 500, 630, 800,
	1000, 1250, 1600, 2000, 2500, 3150, 4000, 5000, 6300, 8000,
	10000, 12500, 16000, 20000,
}

// IEC 61672-1 Table 3, A-weighting, aligned with nominalCenters.
var aTable = []float64{
	-70.4, -63.4, -56.7, -50.5, -44.7, -39.4, -34.6, -30.2, -26.2, -22.5,
	-19.1, -16.1, -13.4, -10.9, -8.6, -6.6, -4.8, -3.2, -1.9, -0.8,
	0.0, 0.6, 1.0, 1.2, 1.3, 1.2, 1.0, 0.5, -0.1, -1.1,
	-2.5, -4.3, -6.6, -9.3,
}

// IEC 61672-1 Table 3, C-weighting, aligned with nominalCenters.
var cTable = []float64{
	-14.3, -11.2, -8.5, -6.2, -4.4, -3.0, -2.0, -1.3, -0.8, -0.5,
	-0.3, -0.2, -0.1, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, -0.1, -0.2, -0.3, -0.5, -0.8, -1.3, -2.0, -3.0,
	-4.4, -6.2, -8.5, -11.2,
}

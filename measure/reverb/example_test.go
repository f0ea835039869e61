package reverb_test

import (
	"fmt"
	"math"

	"github.com/mauromussin/opened-window/measure/reverb"
)

func ExampleSabineArea() {
	area, err := reverb.SabineArea(50, 0.5)
	if err != nil {
		panic(err)
	}
	fmt.Printf("A = %.1f m²\n", area)
	// Output:
	// A = 16.1 m²
}

func ExampleAnalyzer_Analyze() {
	sampleRate := 48000.0
	decayRate := 6.9078 / 0.5 // -60 dB after 0.5 s

	ir := make([]float64, int(sampleRate*2))
	for i := range ir {
		ir[i] = math.Exp(-decayRate * float64(i) / sampleRate)
	}

	metrics, err := reverb.NewAnalyzer(sampleRate).Analyze(ir)
	if err != nil {
		panic(err)
	}
	fmt.Printf("RT60 = %.2f s\n", metrics.RT60)
	// Output:
	// RT60 = 0.50 s
}

package analysis_test

import (
	"fmt"

	"github.com/cwbudde/algo-freq/dsp/analysis"
	"github.com/cwbudde/algo-freq/dsp/window"
)

func ExampleAnalyze() {
	data := make([]float32, 64)
	for i := range data {
		data[i] = 1
	}
	out := make([]float32, 16)

	n := analysis.Analyze(analysis.Spectrum, window.TypeRectangular, 32, data, out)
	fmt.Printf("%d values, DC %.2f dB\n", n, out[0])

	fmt.Println(analysis.Analyze(analysis.Spectrum, window.TypeRectangular, 31, data, out))
	// Output:
	// 16 values, DC 15.05 dB
	// 0
}

// Command freqscan runs spectrum and autocorrelation analyses over raw
// float32 audio or synthesized test signals.
//
// Usage:
//
//	freqscan analyze [flags]
//	freqscan windows [--size n]
//	freqscan algorithms
//
// Examples:
//
//	freqscan analyze --sine 441 --duration 0.5
//	freqscan analyze -a enhanced --sine 220 --harmonics 5 -o yaml
//	freqscan analyze -i samples.f32 -r 48000 -n 4096 --top 0 -o json
//	freqscan windows --size 4096
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

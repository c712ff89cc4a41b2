package analysis

import (
	"fmt"
	"strings"
)

// Algorithm selects the per-frame processing.
type Algorithm int

const (
	Spectrum Algorithm = iota
	Autocorrelation
	CuberootAutocorrelation
	EnhancedAutocorrelation
	// Cepstrum is experimental. It is rejected unless the Analyzer was built
	// with WithCepstrum.
	Cepstrum
)

var algorithmNames = map[Algorithm]string{
	Spectrum:                "Spectrum",
	Autocorrelation:         "Standard Autocorrelation",
	CuberootAutocorrelation: "Cuberoot Autocorrelation",
	EnhancedAutocorrelation: "Enhanced Autocorrelation",
	Cepstrum:                "Cepstrum",
}

// Algorithms returns the algorithms accepted by a default Analyzer.
func Algorithms() []Algorithm {
	return []Algorithm{Spectrum, Autocorrelation, CuberootAutocorrelation, EnhancedAutocorrelation}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// IsLag reports whether the algorithm produces a lag-domain curve (index is a
// period in samples) rather than frequency bins.
func (a Algorithm) IsLag() bool {
	switch a {
	case Autocorrelation, CuberootAutocorrelation, EnhancedAutocorrelation, Cepstrum:
		return true
	default:
		return false
	}
}

// ParseAlgorithm resolves a short name or numeric code.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "0", "spectrum":
		return Spectrum, nil
	case "1", "autocorrelation", "ac":
		return Autocorrelation, nil
	case "2", "cuberoot", "cuberoot-autocorrelation":
		return CuberootAutocorrelation, nil
	case "3", "enhanced", "enhanced-autocorrelation", "eac":
		return EnhancedAutocorrelation, nil
	case "4", "cepstrum":
		return Cepstrum, nil
	}
	return Spectrum, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, name)
}

package window

import (
	"errors"
	"fmt"
	"strings"
)

var errUnknownType = errors.New("unknown window type")

// Parse resolves a window name (case-insensitive, "hann" accepted for
// Hanning) or a numeric code to a Type.
func Parse(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "0", "rectangular", "rect", "none":
		return TypeRectangular, nil
	case "1", "bartlett", "triangular":
		return TypeBartlett, nil
	case "2", "hamming":
		return TypeHamming, nil
	case "3", "hanning", "hann":
		return TypeHanning, nil
	}
	return TypeRectangular, fmt.Errorf("%w: %q", errUnknownType, name)
}

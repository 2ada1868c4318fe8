package sim

import "fmt"

// Variant is a cosmetic rendering mode for the placeholder frame.
// It mirrors the four classic ROM graphics modes and has no effect on the
// session counters.
type Variant string

const (
	VariantStandard    Variant = "standard"
	VariantDownsampled Variant = "downsampled"
	VariantPixelated   Variant = "pixelated"
	VariantRectangular Variant = "rectangular"
)

// Title returns a display name for the variant.
func (v Variant) Title() string {
	switch v {
	case VariantDownsampled:
		return "Downsampled"
	case VariantPixelated:
		return "Pixelated"
	case VariantRectangular:
		return "Rectangular"
	default:
		return "Standard"
	}
}

// EnvID returns the environment identifier the variant corresponds to,
// v0 through v3.
func (v Variant) EnvID() string {
	switch v {
	case VariantDownsampled:
		return "SuperMarioBros-v1"
	case VariantPixelated:
		return "SuperMarioBros-v2"
	case VariantRectangular:
		return "SuperMarioBros-v3"
	default:
		return "SuperMarioBros-v0"
	}
}

// Variants returns all display variants in presentation order.
func Variants() []Variant {
	return []Variant{VariantStandard, VariantDownsampled, VariantPixelated, VariantRectangular}
}

// ParseVariant converts a string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantStandard, VariantDownsampled, VariantPixelated, VariantRectangular:
		return Variant(s), nil
	}
	return "", fmt.Errorf("sim: unknown display variant %q", s)
}

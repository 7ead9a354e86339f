package uikitscan

// BrandColor is the palette token that stands for the project's brand color.
const BrandColor = "brand"

// grayscaleColor disables brand-color seeding for a component.
const grayscaleColor = "grayscale"

// defaultPalette is the set of color names accepted by a component "color" prop.
var defaultPalette = []string{
	"brand",
	"gray",
	"red",
	"orange",
	"amber",
	"yellow",
	"lime",
	"green",
	"emerald",
	"teal",
	"cyan",
	"sky",
	"blue",
	"indigo",
	"violet",
	"purple",
	"fuchsia",
	"pink",
	"rose",
}

// DefaultPalette returns a copy of the built-in color allowlist.
func DefaultPalette() []string {
	out := make([]string, len(defaultPalette))
	copy(out, defaultPalette)
	return out
}

// Palette is an ordered color allowlist.
type Palette []string

// Contains reports whether color is a recognized palette token.
func (p Palette) Contains(color string) bool {
	return p.index(color) >= 0
}

func (p Palette) index(color string) int {
	for i, c := range p {
		if c == color {
			return i
		}
	}
	return -1
}

// Filter keeps the recognized colors of set and returns them in palette order.
func (p Palette) Filter(set map[string]bool) []string {
	var out []string
	for _, c := range p {
		if set[c] {
			out = append(out, c)
		}
	}
	return out
}

package burger

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/burgerman/internal/core"
)

// SkinColors are the five painted parts of the burger.
type SkinColors struct {
	Bun     core.Color
	Patty   core.Color
	Lettuce core.Color
	Cheese  core.Color
	Seeds   core.Color
}

// Skin is a cosmetic palette unlocked in the shop.
type Skin struct {
	ID     int
	Name   string
	Colors SkinColors
}

// classicSkin is always owned.
var classicSkin = Skin{
	ID:   0,
	Name: "Classic",
	Colors: SkinColors{
		Bun:     "#d4a373",
		Patty:   "#78350f",
		Lettuce: "#4ade80",
		Cheese:  "#facc15",
		Seeds:   "#fde047",
	},
}

// goldenAngle spreads generated hues evenly around the wheel.
const goldenAngle = 137.5

// GenerateSkins builds the catalog of n skins. Skin 0 is the classic palette;
// every other skin derives its parts from a hue stepped by the golden angle.
func GenerateSkins(n int) []Skin {
	if n <= 0 {
		return nil
	}
	skins := make([]Skin, n)
	skins[0] = classicSkin
	for i := 1; i < n; i++ {
		hue := math.Mod(float64(i)*goldenAngle, 360)
		skins[i] = Skin{
			ID:   i,
			Name: fmt.Sprintf("Skin #%d", i+1),
			Colors: SkinColors{
				Bun:     hsl(hue, 0.70, 0.60),
				Patty:   hsl(hue+180, 0.60, 0.30),
				Lettuce: hsl(hue+90, 0.80, 0.50),
				Cheese:  hsl(hue-45, 0.90, 0.60),
				Seeds:   core.ColorWhite,
			},
		}
	}
	return skins
}

// hsl converts a hue in degrees (any range) plus saturation and lightness
// in [0, 1] to a hex color.
func hsl(hue, s, l float64) core.Color {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return core.Color(colorful.Hsl(hue, s, l).Clamped().Hex())
}

// SkinByID returns the skin with the given id, falling back to the classic
// palette for out-of-range ids.
func SkinByID(skins []Skin, id int) Skin {
	if id < 0 || id >= len(skins) {
		return classicSkin
	}
	return skins[id]
}

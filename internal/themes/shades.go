// SPDX-License-Identifier: MIT
package themes

import "github.com/pastelpanda/chameleon/internal/colormath"

// ShadeKeys lists the ramp steps from lightest to darkest
var ShadeKeys = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// shadeOffsets maps each step to its lightness adjustment. 500 is the base
// color itself; smaller keys interpolate toward white, larger keys darken.
var shadeOffsets = map[string]float64{
	"50":  0.95,
	"100": 0.85,
	"200": 0.70,
	"300": 0.55,
	"400": 0.40,
	"500": 0,
	"600": -0.10,
	"700": -0.20,
	"800": -0.30,
	"900": -0.40,
}

// GenerateShades expands one base color into a ten-step tonal ramp.
// Shade "500" is always the input string byte for byte. An unparseable
// base yields a degenerate ramp of the input at every step, which keeps
// publishing total.
func GenerateShades(base string) map[string]string {
	shades := make(map[string]string, len(ShadeKeys))

	c := colormath.HexToRGB(base)
	for _, key := range ShadeKeys {
		if key == "500" || c == nil {
			shades[key] = base
			continue
		}
		shades[key] = colormath.AdjustLightness(*c, shadeOffsets[key]).Hex()
	}

	return shades
}

package themes

import (
	"github.com/pastelpanda/chameleon/internal/colormath"
	"github.com/pastelpanda/chameleon/internal/models"
)

// Fixed structural colors for derived dark palettes. Border and shadow are
// low-chroma and do not derive reliably from arbitrary brand hues.
const (
	darkBorderColor = "#374151"
	darkShadowColor = "#00000040"
)

// GenerateDarkModeColors derives a dark palette from a light color set.
// Backgrounds drop to 15% of their channel values, text blends 80% of the
// way to white, and the semantic accents get a 1.2x brightness boost.
// Brand hues pass through unchanged so the brand stays recognizable.
func GenerateDarkModeColors(light models.ColorSet) models.ColorSet {
	return models.ColorSet{
		Primary:   light.Primary,
		Secondary: light.Secondary,
		Accent:    light.Accent,

		Success: brighten(light.Success),
		Warning: brighten(light.Warning),
		Error:   brighten(light.Error),
		Info:    brighten(light.Info),

		Background:          darken(light.Background),
		BackgroundSecondary: darken(light.BackgroundSecondary),
		BackgroundTertiary:  darken(light.BackgroundTertiary),
		Sidebar:             darken(light.Sidebar),

		TextPrimary:   lighten(light.TextPrimary),
		TextSecondary: lighten(light.TextSecondary),

		Border: darkBorderColor,
		Shadow: darkShadowColor,
	}
}

// darken scales each channel to 15% of its light value
func darken(hex string) string {
	c := colormath.HexToRGB(hex)
	if c == nil {
		return hex
	}
	return colormath.AdjustLightness(*c, -0.85).Hex()
}

// lighten blends 80% of the way to white
func lighten(hex string) string {
	c := colormath.HexToRGB(hex)
	if c == nil {
		return hex
	}
	return colormath.AdjustLightness(*c, 0.8).Hex()
}

// brighten applies a 1.2x multiplicative scale, clamped per channel
func brighten(hex string) string {
	c := colormath.HexToRGB(hex)
	if c == nil {
		return hex
	}
	scaled := colormath.RGB{
		R: c.R * 12 / 10,
		G: c.G * 12 / 10,
		B: c.B * 12 / 10,
	}
	return scaled.Hex()
}

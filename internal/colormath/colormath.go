// SPDX-License-Identifier: MIT
package colormath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB holds one color as 0-255 channel values
type RGB struct {
	R int
	G int
	B int
}

// Rating classifies a contrast ratio against the WCAG thresholds
type Rating string

const (
	RatingFail Rating = "fail"
	RatingAA   Rating = "aa"
	RatingAAA  Rating = "aaa"
)

// WCAG 2.1 thresholds for normal text, inclusive
const (
	ThresholdAA  = 4.5
	ThresholdAAA = 7.0
)

// ContrastResult is the outcome of comparing two colors
type ContrastResult struct {
	Ratio     float64 `json:"ratio"`
	PassesAA  bool    `json:"passes_aa"`
	PassesAAA bool    `json:"passes_aaa"`
	Rating    Rating  `json:"rating"`
}

// HexToRGB parses a hex color string into channel values.
// Accepts an optional leading '#' and requires exactly 6 hex digits.
// Returns nil for anything else.
func HexToRGB(hex string) *RGB {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return nil
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil
	}

	return &RGB{
		R: int(value >> 16 & 0xff),
		G: int(value >> 8 & 0xff),
		B: int(value & 0xff),
	}
}

// Hex formats the color as lowercase #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// RelativeLuminance computes perceptual brightness per WCAG 2.1.
// Returns a value in [0,1], or 0 when the input cannot be parsed.
func RelativeLuminance(hex string) float64 {
	c := HexToRGB(hex)
	if c == nil {
		return 0
	}

	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize applies the sRGB gamma correction to one normalized channel
func linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two colors.
// The result is symmetric in argument order and rounded to 2 decimals;
// the range is 1 (no contrast) to 21 (black on white).
func ContrastRatio(colorA, colorB string) ContrastResult {
	la := RelativeLuminance(colorA)
	lb := RelativeLuminance(colorB)
	if la < lb {
		la, lb = lb, la
	}

	ratio := math.Round((la+0.05)/(lb+0.05)*100) / 100

	result := ContrastResult{
		Ratio:     ratio,
		PassesAA:  ratio >= ThresholdAA,
		PassesAAA: ratio >= ThresholdAAA,
	}
	switch {
	case result.PassesAAA:
		result.Rating = RatingAAA
	case result.PassesAA:
		result.Rating = RatingAA
	default:
		result.Rating = RatingFail
	}

	return result
}

// AdjustLightness shifts a color lighter or darker.
// A positive amount interpolates each channel toward 255 by that fraction;
// a negative amount scales each channel down by (1+amount). Zero is identity.
func AdjustLightness(c RGB, amount float64) RGB {
	adjust := func(channel int) int {
		var v float64
		switch {
		case amount > 0:
			v = float64(channel) + (255-float64(channel))*amount
		case amount < 0:
			v = float64(channel) * (1 + amount)
		default:
			return channel
		}
		return clampChannel(int(math.Round(v)))
	}

	return RGB{R: adjust(c.R), G: adjust(c.G), B: adjust(c.B)}
}

// Complementary returns the channel-inverted color.
// Unparseable input is returned unchanged.
func Complementary(hex string) string {
	c := HexToRGB(hex)
	if c == nil {
		return hex
	}
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}.Hex()
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

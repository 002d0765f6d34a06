// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"regexp"

	"github.com/pastelpanda/chameleon/internal/colormath"
	"github.com/pastelpanda/chameleon/internal/models"
)

// hexColorPattern is the strict token format: '#' plus exactly 6 hex digits
var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Near-black and near-white text constants for accessible-text suggestions
const (
	suggestedDarkText  = "#111827"
	suggestedLightText = "#f9fafb"
)

// ContrastReport bundles the three contrast checks run on every theme
type ContrastReport struct {
	PrimaryOnBackground colormath.ContrastResult `json:"primary_on_background"`
	TextOnBackground    colormath.ContrastResult `json:"text_on_background"`
	ButtonTextOnButton  colormath.ContrastResult `json:"button_text_on_button"`
}

// ValidationResult is the diagnostics for one theme. Warnings never block;
// a theme is valid exactly when it has no errors.
type ValidationResult struct {
	Valid    bool           `json:"valid"`
	Errors   []string       `json:"errors"`
	Warnings []string       `json:"warnings"`
	Contrast ContrastReport `json:"contrast"`
}

// ValidateColorHex reports whether value is a normalized color token
func ValidateColorHex(value string) bool {
	return hexColorPattern.MatchString(value)
}

// ValidateTheme checks the required color fields and the three fixed
// contrast pairs. The text-on-background pair is load-bearing for
// readability, so failing AA there is an error; the other two pairs only
// warn. Contrast checks are skipped for pairs whose colors did not parse,
// since the field errors already cover those.
func ValidateTheme(record *models.ThemeRecord) ValidationResult {
	result := ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	colors := record.Colors
	required := []struct {
		field string
		value string
	}{
		{"primary_color", colors.Primary},
		{"secondary_color", colors.Secondary},
		{"accent_color", colors.Accent},
		{"background_color", colors.Background},
		{"text_primary_color", colors.TextPrimary},
		{"text_secondary_color", colors.TextSecondary},
		{"button_text_color", record.Buttons.PrimaryText},
	}
	for _, r := range required {
		if !ValidateColorHex(r.value) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: invalid hex color %q, expected #RRGGBB", r.field, r.value))
		}
	}

	buttonColor := record.Buttons.PrimaryColor
	if buttonColor == "" {
		buttonColor = colors.Primary
	}

	if ValidateColorHex(colors.Primary) && ValidateColorHex(colors.Background) {
		result.Contrast.PrimaryOnBackground = colormath.ContrastRatio(colors.Primary, colors.Background)
		if !result.Contrast.PrimaryOnBackground.PassesAA {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("primary color on background has low contrast (%.2f, AA needs %.1f)",
					result.Contrast.PrimaryOnBackground.Ratio, colormath.ThresholdAA))
		}
	}

	if ValidateColorHex(colors.TextPrimary) && ValidateColorHex(colors.Background) {
		result.Contrast.TextOnBackground = colormath.ContrastRatio(colors.TextPrimary, colors.Background)
		if !result.Contrast.TextOnBackground.PassesAA {
			result.Errors = append(result.Errors,
				fmt.Sprintf("text_primary_color on background_color fails WCAG AA (%.2f, needs %.1f)",
					result.Contrast.TextOnBackground.Ratio, colormath.ThresholdAA))
		}
	}

	if ValidateColorHex(record.Buttons.PrimaryText) && ValidateColorHex(buttonColor) {
		result.Contrast.ButtonTextOnButton = colormath.ContrastRatio(record.Buttons.PrimaryText, buttonColor)
		if !result.Contrast.ButtonTextOnButton.PassesAA {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("button text on button color has low contrast (%.2f, AA needs %.1f)",
					result.Contrast.ButtonTextOnButton.Ratio, colormath.ThresholdAA))
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// SuggestAccessibleTextColor picks near-black or near-white for a
// background. The choice is binary on the luminance midpoint rather than
// contrast-optimal, which keeps suggestions stable across small edits.
func SuggestAccessibleTextColor(background string) string {
	if colormath.RelativeLuminance(background) > 0.5 {
		return suggestedDarkText
	}
	return suggestedLightText
}

// SuggestComplementaryColor returns the channel-inverted counterpart
func SuggestComplementaryColor(base string) string {
	return colormath.Complementary(base)
}

// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"

	"github.com/pastelpanda/chameleon/internal/colormath"
	"github.com/pastelpanda/chameleon/internal/models"
)

func validRecord() *models.ThemeRecord {
	return models.NewDefaultCustomization("test").Record()
}

func TestValidateColorHex(t *testing.T) {
	valid := []string{"#0ea5e9", "#FFFFFF", "#000000", "#AbCdEf"}
	for _, v := range valid {
		if !ValidateColorHex(v) {
			t.Errorf("Expected %q to validate", v)
		}
	}

	invalid := []string{"", "#fff", "0ea5e9", "#0ea5e", "#0ea5e99", "#gggggg", "#00000010"}
	for _, v := range invalid {
		if ValidateColorHex(v) {
			t.Errorf("Expected %q to be rejected", v)
		}
	}
}

func TestValidateThemeDefaultsAreValid(t *testing.T) {
	result := ValidateTheme(validRecord())
	if !result.Valid {
		t.Errorf("Expected factory theme to validate, got errors: %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Expected no errors, got %v", result.Errors)
	}
}

func TestValidateThemeNamesBadField(t *testing.T) {
	record := validRecord()
	record.Colors.Primary = "blue"

	result := ValidateTheme(record)
	if result.Valid {
		t.Error("Expected theme with malformed primary to be invalid")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %d: %v", len(result.Errors), result.Errors)
	}
	if !strings.Contains(result.Errors[0], "primary_color") {
		t.Errorf("Expected error to name primary_color, got %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[0], `"blue"`) {
		t.Errorf("Expected error to quote the offending value, got %q", result.Errors[0])
	}
}

func TestValidateThemeCollectsAllFieldErrors(t *testing.T) {
	record := validRecord()
	record.Colors.Primary = ""
	record.Colors.Secondary = "#12"
	record.Colors.Accent = "nope"

	result := ValidateTheme(record)
	if len(result.Errors) != 3 {
		t.Errorf("Expected 3 errors, got %d: %v", len(result.Errors), result.Errors)
	}
}

func TestValidateThemeTextContrastBlocks(t *testing.T) {
	record := validRecord()
	// Mid gray on white fails AA for body text
	record.Colors.TextPrimary = "#777777"
	record.Colors.Background = "#ffffff"

	result := ValidateTheme(record)
	if result.Valid {
		t.Error("Expected low text contrast to invalidate the theme")
	}

	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "text_primary_color") && strings.Contains(e, "WCAG AA") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a text contrast error, got %v", result.Errors)
	}
	if result.Contrast.TextOnBackground.PassesAA {
		t.Errorf("Expected failing ratio, got %f", result.Contrast.TextOnBackground.Ratio)
	}
}

func TestValidateThemeWarningsDoNotBlock(t *testing.T) {
	record := validRecord()
	// Light primary on white: poor contrast, but only a warning
	record.Colors.Primary = "#e0f2fe"
	record.Buttons.PrimaryColor = ""

	result := ValidateTheme(record)
	if !result.Valid {
		t.Errorf("Expected warnings alone to keep the theme valid, errors: %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("Expected at least one contrast warning")
	}
}

func TestValidateThemeButtonFallsBackToPrimary(t *testing.T) {
	record := validRecord()
	record.Buttons.PrimaryColor = ""
	record.Buttons.PrimaryText = "#ffffff"
	record.Colors.Primary = "#f9fafb"

	result := ValidateTheme(record)
	// White text on a near-white primary must warn via the fallback path
	if len(result.Warnings) == 0 {
		t.Error("Expected button contrast warning through the primary fallback")
	}
}

func TestValidateThemeSkipsContrastForUnparseableColors(t *testing.T) {
	record := validRecord()
	record.Colors.TextPrimary = "bogus"

	result := ValidateTheme(record)
	if result.Contrast.TextOnBackground.Ratio != 0 {
		t.Errorf("Expected skipped contrast check, got ratio %f", result.Contrast.TextOnBackground.Ratio)
	}
	// The field error still covers the problem
	if result.Valid {
		t.Error("Expected invalid result from the field error")
	}
}

func TestSuggestAccessibleTextColor(t *testing.T) {
	tests := []struct {
		background string
		want       string
	}{
		{"#ffffff", "#111827"},
		{"#f9fafb", "#111827"},
		{"#000000", "#f9fafb"},
		{"#111827", "#f9fafb"},
		{"#0ea5e9", "#f9fafb"},
		{"bogus", "#f9fafb"},
	}
	for _, tt := range tests {
		if got := SuggestAccessibleTextColor(tt.background); got != tt.want {
			t.Errorf("SuggestAccessibleTextColor(%q) = %s, expected %s", tt.background, got, tt.want)
		}
	}
}

func TestSuggestedTextColorsPassOnStrongBackgrounds(t *testing.T) {
	for _, background := range []string{"#ffffff", "#000000", "#111827", "#f9fafb", "#7c3aed"} {
		suggested := SuggestAccessibleTextColor(background)
		contrast := colormath.ContrastRatio(suggested, background)
		if !contrast.PassesAA {
			t.Errorf("Suggested %s on %s only reaches %f", suggested, background, contrast.Ratio)
		}
	}
}

func TestSuggestComplementaryColor(t *testing.T) {
	if got := SuggestComplementaryColor("#0ea5e9"); got != "#f15a16" {
		t.Errorf("Expected #f15a16, got %s", got)
	}
}

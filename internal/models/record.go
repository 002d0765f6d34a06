// SPDX-License-Identifier: MIT
package models

import (
	"encoding/json"
	"time"
)

// ThemeRecord is the nested, wire-shaped form of a Customization.
// This is what the API serves and what the token engine consumes; the
// engine only reads it, never writes it back.
type ThemeRecord struct {
	ID               uint       `json:"id,omitempty"`
	OrganizationName string     `json:"organization_name"`
	Branding         Branding   `json:"branding"`
	Colors           ColorSet   `json:"colors"`
	Buttons          Buttons    `json:"buttons"`
	Inputs           Inputs     `json:"inputs"`
	Cards            Cards      `json:"cards"`
	Navigation       Navigation `json:"navigation"`
	Typography       Typography `json:"typography"`
	Layout           Layout     `json:"layout"`
	Animations       Animations `json:"animations"`
	DarkMode         DarkMode   `json:"dark_mode"`
	Advanced         Advanced   `json:"advanced"`
	Metadata         Metadata   `json:"metadata"`
}

type Branding struct {
	AppName     string `json:"app_name"`
	AppTagline  string `json:"app_tagline"`
	LogoURL     string `json:"logo_url"`
	LogoDarkURL string `json:"logo_dark_url"`
	FaviconURL  string `json:"favicon_url"`
}

// ColorSet is the full set of named base colors
type ColorSet struct {
	Primary             string `json:"primary"`
	Secondary           string `json:"secondary"`
	Accent              string `json:"accent"`
	Success             string `json:"success"`
	Warning             string `json:"warning"`
	Error               string `json:"error"`
	Info                string `json:"info"`
	Background          string `json:"background"`
	BackgroundSecondary string `json:"background_secondary"`
	BackgroundTertiary  string `json:"background_tertiary"`
	Sidebar             string `json:"sidebar"`
	TextPrimary         string `json:"text_primary"`
	TextSecondary       string `json:"text_secondary"`
	Border              string `json:"border"`
	Shadow              string `json:"shadow"`
}

type Buttons struct {
	PrimaryColor   string `json:"primary_color"`
	PrimaryText    string `json:"primary_text"`
	SecondaryColor string `json:"secondary_color"`
	SecondaryText  string `json:"secondary_text"`
	BorderRadius   string `json:"border_radius"`
}

type Inputs struct {
	BorderColor  string `json:"border_color"`
	FocusColor   string `json:"focus_color"`
	BorderRadius string `json:"border_radius"`
}

type Cards struct {
	Background   string `json:"background"`
	BorderColor  string `json:"border_color"`
	BorderRadius string `json:"border_radius"`
	Shadow       string `json:"shadow"`
}

type Navigation struct {
	Background  string `json:"background"`
	TextColor   string `json:"text_color"`
	ActiveColor string `json:"active_color"`
	HoverColor  string `json:"hover_color"`
}

type Typography struct {
	FontFamily        string `json:"font_family"`
	FontSizeBase      string `json:"font_size_base"`
	FontSizeHeading   string `json:"font_size_heading"`
	FontWeightNormal  string `json:"font_weight_normal"`
	FontWeightMedium  string `json:"font_weight_medium"`
	FontWeightBold    string `json:"font_weight_bold"`
	LineHeightBase    string `json:"line_height_base"`
	LineHeightHeading string `json:"line_height_heading"`
	LetterSpacing     string `json:"letter_spacing"`
}

type Layout struct {
	BorderRadius string `json:"border_radius"`
	SpacingUnit  string `json:"spacing_unit"`
	SpacingXS    string `json:"spacing_xs"`
	SpacingSM    string `json:"spacing_sm"`
	SpacingMD    string `json:"spacing_md"`
	SpacingLG    string `json:"spacing_lg"`
	SpacingXL    string `json:"spacing_xl"`
}

type Animations struct {
	Speed   string `json:"speed"`
	Enabled bool   `json:"enabled"`
}

// DarkMode carries the optional override palette. Colors is keyed like
// ColorSet json fields ("background", "text_primary", ...).
type DarkMode struct {
	Enabled bool              `json:"enabled"`
	Colors  map[string]string `json:"colors"`
}

type Advanced struct {
	CustomCSS      string            `json:"custom_css"`
	CustomSettings map[string]string `json:"custom_settings"`
}

type Metadata struct {
	ThemeName        string     `json:"theme_name"`
	ThemeDescription string     `json:"theme_description"`
	IsPreset         bool       `json:"is_preset"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// Record builds the nested wire form, resolving the nullable columns:
// button primary and input focus fall back to the primary color, button
// secondary to the secondary background, and nav colors to sidebar, text
// secondary and primary. The nav hover fallback is primary at ~6% alpha.
func (c *Customization) Record() *ThemeRecord {
	darkColors := map[string]string{}
	if c.DarkModeColors != "" {
		// Ignore malformed JSON; an empty override set publishes fine
		_ = json.Unmarshal([]byte(c.DarkModeColors), &darkColors)
	}
	customSettings := map[string]string{}
	if c.CustomSettings != "" {
		_ = json.Unmarshal([]byte(c.CustomSettings), &customSettings)
	}

	createdAt := c.CreatedAt
	updatedAt := c.UpdatedAt

	return &ThemeRecord{
		ID:               c.ID,
		OrganizationName: c.OrganizationName,
		Branding: Branding{
			AppName:     c.AppName,
			AppTagline:  c.AppTagline,
			LogoURL:     c.LogoURL,
			LogoDarkURL: c.LogoDarkURL,
			FaviconURL:  c.FaviconURL,
		},
		Colors: ColorSet{
			Primary:             c.PrimaryColor,
			Secondary:           c.SecondaryColor,
			Accent:              c.AccentColor,
			Success:             c.SuccessColor,
			Warning:             c.WarningColor,
			Error:               c.ErrorColor,
			Info:                c.InfoColor,
			Background:          c.BackgroundColor,
			BackgroundSecondary: c.BackgroundSecondary,
			BackgroundTertiary:  c.BackgroundTertiary,
			Sidebar:             c.SidebarColor,
			TextPrimary:         c.TextPrimaryColor,
			TextSecondary:       c.TextSecondaryColor,
			Border:              c.BorderColor,
			Shadow:              c.ShadowColor,
		},
		Buttons: Buttons{
			PrimaryColor:   fallback(c.ButtonPrimaryColor, c.PrimaryColor),
			PrimaryText:    c.ButtonTextColor,
			SecondaryColor: fallback(c.ButtonSecondaryColor, c.BackgroundSecondary),
			SecondaryText:  c.ButtonSecondaryText,
			BorderRadius:   c.ButtonBorderRadius,
		},
		Inputs: Inputs{
			BorderColor:  c.InputBorderColor,
			FocusColor:   fallback(c.InputFocusColor, c.PrimaryColor),
			BorderRadius: c.InputBorderRadius,
		},
		Cards: Cards{
			Background:   c.CardBackground,
			BorderColor:  c.CardBorderColor,
			BorderRadius: c.CardBorderRadius,
			Shadow:       c.CardShadow,
		},
		Navigation: Navigation{
			Background:  fallback(c.NavBackground, c.SidebarColor),
			TextColor:   fallback(c.NavTextColor, c.TextSecondaryColor),
			ActiveColor: fallback(c.NavActiveColor, c.PrimaryColor),
			HoverColor:  fallback(c.NavHoverColor, c.PrimaryColor+"10"),
		},
		Typography: Typography{
			FontFamily:        c.FontFamily,
			FontSizeBase:      c.FontSizeBase,
			FontSizeHeading:   c.FontSizeHeading,
			FontWeightNormal:  c.FontWeightNormal,
			FontWeightMedium:  c.FontWeightMedium,
			FontWeightBold:    c.FontWeightBold,
			LineHeightBase:    c.LineHeightBase,
			LineHeightHeading: c.LineHeightHeading,
			LetterSpacing:     c.LetterSpacing,
		},
		Layout: Layout{
			BorderRadius: c.BorderRadius,
			SpacingUnit:  c.SpacingUnit,
			SpacingXS:    c.SpacingXS,
			SpacingSM:    c.SpacingSM,
			SpacingMD:    c.SpacingMD,
			SpacingLG:    c.SpacingLG,
			SpacingXL:    c.SpacingXL,
		},
		Animations: Animations{
			Speed:   c.AnimationSpeed,
			Enabled: c.EnableAnimations,
		},
		DarkMode: DarkMode{
			Enabled: c.DarkModeEnabled,
			Colors:  darkColors,
		},
		Advanced: Advanced{
			CustomCSS:      c.CustomCSS,
			CustomSettings: customSettings,
		},
		Metadata: Metadata{
			ThemeName:        c.ThemeName,
			ThemeDescription: c.ThemeDescription,
			IsPreset:         c.IsPreset,
			IsActive:         c.IsActive,
			CreatedAt:        timePtr(createdAt),
			UpdatedAt:        timePtr(updatedAt),
		},
	}
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

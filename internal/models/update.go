package models

import "encoding/json"

// UpdateRequest is a partial theme update. Nil fields are left untouched.
// Color fields get a coarse hexcolor screen at binding time; the stricter
// 6-digit check and the contrast rules run in the theme validator before
// anything is saved. Shadow-type fields stay free-form because they hold
// 8-digit hex or rgba() values.
type UpdateRequest struct {
	OrganizationName *string `json:"organization_name,omitempty" binding:"omitempty,min=2,max=255"`

	// Branding
	AppName     *string `json:"app_name,omitempty" binding:"omitempty,max=255"`
	AppTagline  *string `json:"app_tagline,omitempty" binding:"omitempty,max=512"`
	LogoURL     *string `json:"logo_url,omitempty" binding:"omitempty,max=512"`
	LogoDarkURL *string `json:"logo_dark_url,omitempty" binding:"omitempty,max=512"`
	FaviconURL  *string `json:"favicon_url,omitempty" binding:"omitempty,max=512"`

	// Brand colors
	PrimaryColor   *string `json:"primary_color,omitempty" binding:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondary_color,omitempty" binding:"omitempty,hexcolor"`
	AccentColor    *string `json:"accent_color,omitempty" binding:"omitempty,hexcolor"`

	// Semantic colors
	SuccessColor *string `json:"success_color,omitempty" binding:"omitempty,hexcolor"`
	WarningColor *string `json:"warning_color,omitempty" binding:"omitempty,hexcolor"`
	ErrorColor   *string `json:"error_color,omitempty" binding:"omitempty,hexcolor"`
	InfoColor    *string `json:"info_color,omitempty" binding:"omitempty,hexcolor"`

	// Background colors
	BackgroundColor     *string `json:"background_color,omitempty" binding:"omitempty,hexcolor"`
	BackgroundSecondary *string `json:"background_secondary,omitempty" binding:"omitempty,hexcolor"`
	BackgroundTertiary  *string `json:"background_tertiary,omitempty" binding:"omitempty,hexcolor"`
	SidebarColor        *string `json:"sidebar_color,omitempty" binding:"omitempty,hexcolor"`

	// Text colors
	TextPrimaryColor   *string `json:"text_primary_color,omitempty" binding:"omitempty,hexcolor"`
	TextSecondaryColor *string `json:"text_secondary_color,omitempty" binding:"omitempty,hexcolor"`

	// Border and shadow
	BorderColor *string `json:"border_color,omitempty" binding:"omitempty,hexcolor"`
	ShadowColor *string `json:"shadow_color,omitempty" binding:"omitempty,max=20"`

	// Buttons
	ButtonPrimaryColor   *string `json:"button_primary_color,omitempty" binding:"omitempty,hexcolor"`
	ButtonTextColor      *string `json:"button_text_color,omitempty" binding:"omitempty,hexcolor"`
	ButtonSecondaryColor *string `json:"button_secondary_color,omitempty" binding:"omitempty,hexcolor"`
	ButtonSecondaryText  *string `json:"button_secondary_text,omitempty" binding:"omitempty,hexcolor"`
	ButtonBorderRadius   *string `json:"button_border_radius,omitempty" binding:"omitempty,max=10"`

	// Inputs
	InputBorderColor  *string `json:"input_border_color,omitempty" binding:"omitempty,hexcolor"`
	InputFocusColor   *string `json:"input_focus_color,omitempty" binding:"omitempty,hexcolor"`
	InputBorderRadius *string `json:"input_border_radius,omitempty" binding:"omitempty,max=10"`

	// Cards
	CardBackground   *string `json:"card_background,omitempty" binding:"omitempty,hexcolor"`
	CardBorderColor  *string `json:"card_border_color,omitempty" binding:"omitempty,hexcolor"`
	CardBorderRadius *string `json:"card_border_radius,omitempty" binding:"omitempty,max=10"`
	CardShadow       *string `json:"card_shadow,omitempty" binding:"omitempty,max=50"`

	// Navigation
	NavBackground  *string `json:"nav_background,omitempty" binding:"omitempty,hexcolor"`
	NavTextColor   *string `json:"nav_text_color,omitempty" binding:"omitempty,hexcolor"`
	NavActiveColor *string `json:"nav_active_color,omitempty" binding:"omitempty,hexcolor"`
	NavHoverColor  *string `json:"nav_hover_color,omitempty" binding:"omitempty,max=10"`

	// Typography
	FontFamily        *string `json:"font_family,omitempty" binding:"omitempty,max=100"`
	FontSizeBase      *string `json:"font_size_base,omitempty" binding:"omitempty,max=10"`
	FontSizeHeading   *string `json:"font_size_heading,omitempty" binding:"omitempty,max=10"`
	FontWeightNormal  *string `json:"font_weight_normal,omitempty" binding:"omitempty,max=10"`
	FontWeightMedium  *string `json:"font_weight_medium,omitempty" binding:"omitempty,max=10"`
	FontWeightBold    *string `json:"font_weight_bold,omitempty" binding:"omitempty,max=10"`
	LineHeightBase    *string `json:"line_height_base,omitempty" binding:"omitempty,max=10"`
	LineHeightHeading *string `json:"line_height_heading,omitempty" binding:"omitempty,max=10"`
	LetterSpacing     *string `json:"letter_spacing,omitempty" binding:"omitempty,max=10"`

	// Layout
	BorderRadius *string `json:"border_radius,omitempty" binding:"omitempty,max=10"`
	SpacingUnit  *string `json:"spacing_unit,omitempty" binding:"omitempty,max=10"`
	SpacingXS    *string `json:"spacing_xs,omitempty" binding:"omitempty,max=10"`
	SpacingSM    *string `json:"spacing_sm,omitempty" binding:"omitempty,max=10"`
	SpacingMD    *string `json:"spacing_md,omitempty" binding:"omitempty,max=10"`
	SpacingLG    *string `json:"spacing_lg,omitempty" binding:"omitempty,max=10"`
	SpacingXL    *string `json:"spacing_xl,omitempty" binding:"omitempty,max=10"`

	// Animation
	AnimationSpeed   *string `json:"animation_speed,omitempty" binding:"omitempty,max=10"`
	EnableAnimations *bool   `json:"enable_animations,omitempty"`

	// Dark mode
	DarkModeEnabled *bool              `json:"dark_mode_enabled,omitempty"`
	DarkModeColors  *map[string]string `json:"dark_mode_colors,omitempty"`

	// Advanced
	CustomCSS      *string            `json:"custom_css,omitempty"`
	CustomSettings *map[string]string `json:"custom_settings,omitempty"`

	// Metadata
	ThemeName        *string `json:"theme_name,omitempty" binding:"omitempty,max=100"`
	ThemeDescription *string `json:"theme_description,omitempty" binding:"omitempty,max=500"`
}

// ApplyTo copies every set field onto the customization row
func (u *UpdateRequest) ApplyTo(c *Customization) {
	setString(u.OrganizationName, &c.OrganizationName)

	setString(u.AppName, &c.AppName)
	setString(u.AppTagline, &c.AppTagline)
	setString(u.LogoURL, &c.LogoURL)
	setString(u.LogoDarkURL, &c.LogoDarkURL)
	setString(u.FaviconURL, &c.FaviconURL)

	setString(u.PrimaryColor, &c.PrimaryColor)
	setString(u.SecondaryColor, &c.SecondaryColor)
	setString(u.AccentColor, &c.AccentColor)

	setString(u.SuccessColor, &c.SuccessColor)
	setString(u.WarningColor, &c.WarningColor)
	setString(u.ErrorColor, &c.ErrorColor)
	setString(u.InfoColor, &c.InfoColor)

	setString(u.BackgroundColor, &c.BackgroundColor)
	setString(u.BackgroundSecondary, &c.BackgroundSecondary)
	setString(u.BackgroundTertiary, &c.BackgroundTertiary)
	setString(u.SidebarColor, &c.SidebarColor)

	setString(u.TextPrimaryColor, &c.TextPrimaryColor)
	setString(u.TextSecondaryColor, &c.TextSecondaryColor)

	setString(u.BorderColor, &c.BorderColor)
	setString(u.ShadowColor, &c.ShadowColor)

	setString(u.ButtonPrimaryColor, &c.ButtonPrimaryColor)
	setString(u.ButtonTextColor, &c.ButtonTextColor)
	setString(u.ButtonSecondaryColor, &c.ButtonSecondaryColor)
	setString(u.ButtonSecondaryText, &c.ButtonSecondaryText)
	setString(u.ButtonBorderRadius, &c.ButtonBorderRadius)

	setString(u.InputBorderColor, &c.InputBorderColor)
	setString(u.InputFocusColor, &c.InputFocusColor)
	setString(u.InputBorderRadius, &c.InputBorderRadius)

	setString(u.CardBackground, &c.CardBackground)
	setString(u.CardBorderColor, &c.CardBorderColor)
	setString(u.CardBorderRadius, &c.CardBorderRadius)
	setString(u.CardShadow, &c.CardShadow)

	setString(u.NavBackground, &c.NavBackground)
	setString(u.NavTextColor, &c.NavTextColor)
	setString(u.NavActiveColor, &c.NavActiveColor)
	setString(u.NavHoverColor, &c.NavHoverColor)

	setString(u.FontFamily, &c.FontFamily)
	setString(u.FontSizeBase, &c.FontSizeBase)
	setString(u.FontSizeHeading, &c.FontSizeHeading)
	setString(u.FontWeightNormal, &c.FontWeightNormal)
	setString(u.FontWeightMedium, &c.FontWeightMedium)
	setString(u.FontWeightBold, &c.FontWeightBold)
	setString(u.LineHeightBase, &c.LineHeightBase)
	setString(u.LineHeightHeading, &c.LineHeightHeading)
	setString(u.LetterSpacing, &c.LetterSpacing)

	setString(u.BorderRadius, &c.BorderRadius)
	setString(u.SpacingUnit, &c.SpacingUnit)
	setString(u.SpacingXS, &c.SpacingXS)
	setString(u.SpacingSM, &c.SpacingSM)
	setString(u.SpacingMD, &c.SpacingMD)
	setString(u.SpacingLG, &c.SpacingLG)
	setString(u.SpacingXL, &c.SpacingXL)

	setString(u.AnimationSpeed, &c.AnimationSpeed)
	if u.EnableAnimations != nil {
		c.EnableAnimations = *u.EnableAnimations
	}

	if u.DarkModeEnabled != nil {
		c.DarkModeEnabled = *u.DarkModeEnabled
	}
	if u.DarkModeColors != nil {
		c.DarkModeColors = marshalMap(*u.DarkModeColors)
	}

	setString(u.CustomCSS, &c.CustomCSS)
	if u.CustomSettings != nil {
		c.CustomSettings = marshalMap(*u.CustomSettings)
	}

	setString(u.ThemeName, &c.ThemeName)
	setString(u.ThemeDescription, &c.ThemeDescription)
}

func setString(src *string, dst *string) {
	if src != nil {
		*dst = *src
	}
}

func marshalMap(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}
	data, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(data)
}

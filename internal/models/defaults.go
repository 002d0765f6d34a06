package models

// NewDefaultCustomization returns the factory theme for an organization
func NewDefaultCustomization(organizationName string) *Customization {
	c := &Customization{OrganizationName: organizationName}
	c.ResetToDefaults()
	return c
}

// ResetToDefaults restores every themable field to the factory value.
// Branding assets and metadata are cleared; organization name, ID and
// timestamps are left alone.
func (c *Customization) ResetToDefaults() {
	c.LogoURL = ""
	c.LogoDarkURL = ""
	c.FaviconURL = ""
	c.AppName = ""
	c.AppTagline = ""

	c.PrimaryColor = "#0ea5e9"
	c.SecondaryColor = "#d946ef"
	c.AccentColor = "#8b5cf6"

	c.SuccessColor = "#10b981"
	c.WarningColor = "#f59e0b"
	c.ErrorColor = "#ef4444"
	c.InfoColor = "#3b82f6"

	c.BackgroundColor = "#ffffff"
	c.BackgroundSecondary = "#f9fafb"
	c.BackgroundTertiary = "#f3f4f6"
	c.SidebarColor = "#ffffff"

	c.TextPrimaryColor = "#111827"
	c.TextSecondaryColor = "#6b7280"

	c.BorderColor = "#e5e7eb"
	c.ShadowColor = "#00000010"

	c.ButtonPrimaryColor = ""
	c.ButtonTextColor = "#ffffff"
	c.ButtonSecondaryColor = ""
	c.ButtonSecondaryText = "#374151"
	c.ButtonBorderRadius = "8px"

	c.InputBorderColor = "#d1d5db"
	c.InputFocusColor = ""
	c.InputBorderRadius = "8px"

	c.CardBackground = "#ffffff"
	c.CardBorderColor = "#e5e7eb"
	c.CardBorderRadius = "12px"
	c.CardShadow = "0 1px 3px rgba(0,0,0,0.1)"

	c.NavBackground = ""
	c.NavTextColor = ""
	c.NavActiveColor = ""
	c.NavHoverColor = ""

	c.FontFamily = ""
	c.FontSizeBase = "14px"
	c.FontSizeHeading = "24px"
	c.FontWeightNormal = "400"
	c.FontWeightMedium = "500"
	c.FontWeightBold = "700"
	c.LineHeightBase = "1.5"
	c.LineHeightHeading = "1.2"
	c.LetterSpacing = "0"

	c.BorderRadius = "8px"
	c.SpacingUnit = "16px"
	c.SpacingXS = "4px"
	c.SpacingSM = "8px"
	c.SpacingMD = "16px"
	c.SpacingLG = "24px"
	c.SpacingXL = "32px"

	c.AnimationSpeed = "300ms"
	c.EnableAnimations = true

	c.DarkModeEnabled = false
	c.DarkModeColors = ""

	c.CustomCSS = ""
	c.CustomSettings = ""

	c.ThemeName = ""
	c.ThemeDescription = ""
	c.IsPreset = false
	c.IsActive = true
}

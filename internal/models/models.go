package models

import (
	"time"

	"gorm.io/gorm"
)

// Customization is the persisted theme record for one organization.
// Column defaults follow the product's factory theme; nullable columns
// (button primary, input focus, nav colors, font family) fall back to
// other fields when the API document is built.
type Customization struct {
	ID               uint   `gorm:"primaryKey"`
	OrganizationName string `gorm:"uniqueIndex;not null"`

	// Branding assets
	LogoURL     string
	LogoDarkURL string
	FaviconURL  string
	AppName     string
	AppTagline  string

	// Brand colors
	PrimaryColor   string `gorm:"default:#0ea5e9"`
	SecondaryColor string `gorm:"default:#d946ef"`
	AccentColor    string `gorm:"default:#8b5cf6"`

	// Semantic colors
	SuccessColor string `gorm:"default:#10b981"`
	WarningColor string `gorm:"default:#f59e0b"`
	ErrorColor   string `gorm:"default:#ef4444"`
	InfoColor    string `gorm:"default:#3b82f6"`

	// Background colors
	BackgroundColor     string `gorm:"default:#ffffff"`
	BackgroundSecondary string `gorm:"default:#f9fafb"`
	BackgroundTertiary  string `gorm:"default:#f3f4f6"`
	SidebarColor        string `gorm:"default:#ffffff"`

	// Text colors
	TextPrimaryColor   string `gorm:"default:#111827"`
	TextSecondaryColor string `gorm:"default:#6b7280"`

	// Border and shadow
	BorderColor string `gorm:"default:#e5e7eb"`
	ShadowColor string `gorm:"default:#00000010"`

	// Buttons
	ButtonPrimaryColor   string
	ButtonTextColor      string `gorm:"default:#ffffff"`
	ButtonSecondaryColor string
	ButtonSecondaryText  string `gorm:"default:#374151"`
	ButtonBorderRadius   string `gorm:"default:8px"`

	// Inputs
	InputBorderColor  string `gorm:"default:#d1d5db"`
	InputFocusColor   string
	InputBorderRadius string `gorm:"default:8px"`

	// Cards
	CardBackground   string `gorm:"default:#ffffff"`
	CardBorderColor  string `gorm:"default:#e5e7eb"`
	CardBorderRadius string `gorm:"default:12px"`
	CardShadow       string `gorm:"default:0 1px 3px rgba(0,0,0,0.1)"`

	// Navigation
	NavBackground  string
	NavTextColor   string
	NavActiveColor string
	NavHoverColor  string

	// Typography
	FontFamily        string
	FontSizeBase      string `gorm:"default:14px"`
	FontSizeHeading   string `gorm:"default:24px"`
	FontWeightNormal  string `gorm:"default:400"`
	FontWeightMedium  string `gorm:"default:500"`
	FontWeightBold    string `gorm:"default:700"`
	LineHeightBase    string `gorm:"default:1.5"`
	LineHeightHeading string `gorm:"default:1.2"`
	LetterSpacing     string `gorm:"default:0"`

	// Layout and spacing
	BorderRadius string `gorm:"default:8px"`
	SpacingUnit  string `gorm:"default:16px"`
	SpacingXS    string `gorm:"default:4px"`
	SpacingSM    string `gorm:"default:8px"`
	SpacingMD    string `gorm:"default:16px"`
	SpacingLG    string `gorm:"default:24px"`
	SpacingXL    string `gorm:"default:32px"`

	// Animation
	AnimationSpeed   string `gorm:"default:300ms"`
	EnableAnimations bool   `gorm:"default:true"`

	// Dark mode; DarkModeColors is a JSON object of color overrides
	DarkModeEnabled bool   `gorm:"default:false"`
	DarkModeColors  string `gorm:"type:text"`

	// Advanced
	CustomCSS      string `gorm:"type:text"`
	CustomSettings string `gorm:"type:text"`

	// Theme metadata
	ThemeName        string
	ThemeDescription string
	IsPreset         bool `gorm:"default:false"`
	IsActive         bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Preference is a single durable key-value slot.
// The display mode preference lives here under the "display_mode" key so
// it survives restarts and is readable before the engine initializes.
type Preference struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

// DisplayMode selects which palette variant is active
type DisplayMode string

const (
	ModeLight DisplayMode = "light"
	ModeDark  DisplayMode = "dark"
)

// DisplayModeKey is the preference slot holding the active DisplayMode
const DisplayModeKey = "display_mode"

// Toggle returns the opposite mode
func (m DisplayMode) Toggle() DisplayMode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// ParseDisplayMode normalizes a stored preference value.
// Anything other than "dark" is treated as light.
func ParseDisplayMode(value string) DisplayMode {
	if value == string(ModeDark) {
		return ModeDark
	}
	return ModeLight
}

// TableName overrides for consistent naming
func (Customization) TableName() string {
	return "customizations"
}

func (Preference) TableName() string {
	return "preferences"
}

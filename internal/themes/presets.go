package themes

import "github.com/pastelpanda/chameleon/internal/models"

// Preset is a ready-made theme fragment an administrator can apply wholesale
type Preset struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Colors      map[string]string `json:"colors"`
	Components  map[string]string `json:"components"`
}

var presets = []Preset{
	{
		Name:        "Ocean Blue",
		Description: "Professional blue theme with clean aesthetics",
		Colors: map[string]string{
			"primary":              "#0284c7",
			"secondary":            "#0ea5e9",
			"accent":               "#06b6d4",
			"success":              "#10b981",
			"warning":              "#f59e0b",
			"error":                "#ef4444",
			"info":                 "#3b82f6",
			"background":           "#ffffff",
			"background_secondary": "#f0f9ff",
			"background_tertiary":  "#e0f2fe",
			"sidebar":              "#ffffff",
			"text_primary":         "#0c4a6e",
			"text_secondary":       "#475569",
			"border":               "#cbd5e1",
			"shadow":               "#00000015",
		},
		Components: map[string]string{
			"button_border_radius": "8px",
			"input_border_radius":  "6px",
			"card_border_radius":   "12px",
		},
	},
	{
		Name:        "Purple Tech",
		Description: "Modern purple gradient for tech companies",
		Colors: map[string]string{
			"primary":              "#7c3aed",
			"secondary":            "#a855f7",
			"accent":               "#c026d3",
			"success":              "#10b981",
			"warning":              "#f59e0b",
			"error":                "#ef4444",
			"info":                 "#8b5cf6",
			"background":           "#ffffff",
			"background_secondary": "#faf5ff",
			"background_tertiary":  "#f3e8ff",
			"sidebar":              "#fefefe",
			"text_primary":         "#581c87",
			"text_secondary":       "#6b7280",
			"border":               "#e9d5ff",
			"shadow":               "#00000012",
		},
		Components: map[string]string{
			"button_border_radius": "10px",
			"input_border_radius":  "8px",
			"card_border_radius":   "14px",
		},
	},
	{
		Name:        "Emerald Green",
		Description: "Fresh green theme for eco-friendly brands",
		Colors: map[string]string{
			"primary":              "#059669",
			"secondary":            "#10b981",
			"accent":               "#34d399",
			"success":              "#22c55e",
			"warning":              "#f59e0b",
			"error":                "#ef4444",
			"info":                 "#06b6d4",
			"background":           "#ffffff",
			"background_secondary": "#f0fdf4",
			"background_tertiary":  "#dcfce7",
			"sidebar":              "#ffffff",
			"text_primary":         "#064e3b",
			"text_secondary":       "#6b7280",
			"border":               "#d1d5db",
			"shadow":               "#00000010",
		},
		Components: map[string]string{
			"button_border_radius": "8px",
			"input_border_radius":  "8px",
			"card_border_radius":   "10px",
		},
	},
	{
		Name:        "Sunset Orange",
		Description: "Warm orange theme with energy and creativity",
		Colors: map[string]string{
			"primary":              "#ea580c",
			"secondary":            "#f97316",
			"accent":               "#fb923c",
			"success":              "#10b981",
			"warning":              "#fbbf24",
			"error":                "#ef4444",
			"info":                 "#3b82f6",
			"background":           "#ffffff",
			"background_secondary": "#fff7ed",
			"background_tertiary":  "#ffedd5",
			"sidebar":              "#ffffff",
			"text_primary":         "#7c2d12",
			"text_secondary":       "#78716c",
			"border":               "#e7e5e4",
			"shadow":               "#00000012",
		},
		Components: map[string]string{
			"button_border_radius": "12px",
			"input_border_radius":  "8px",
			"card_border_radius":   "16px",
		},
	},
	{
		Name:        "Corporate Gray",
		Description: "Sophisticated gray theme for corporate environments",
		Colors: map[string]string{
			"primary":              "#1f2937",
			"secondary":            "#4b5563",
			"accent":               "#6b7280",
			"success":              "#10b981",
			"warning":              "#f59e0b",
			"error":                "#ef4444",
			"info":                 "#3b82f6",
			"background":           "#ffffff",
			"background_secondary": "#f9fafb",
			"background_tertiary":  "#f3f4f6",
			"sidebar":              "#ffffff",
			"text_primary":         "#111827",
			"text_secondary":       "#6b7280",
			"border":               "#e5e7eb",
			"shadow":               "#00000008",
		},
		Components: map[string]string{
			"button_border_radius": "6px",
			"input_border_radius":  "6px",
			"card_border_radius":   "8px",
		},
	},
	{
		Name:        "Minimal Dark",
		Description: "Sleek dark theme with subtle accents",
		Colors: map[string]string{
			"primary":              "#3b82f6",
			"secondary":            "#60a5fa",
			"accent":               "#93c5fd",
			"success":              "#10b981",
			"warning":              "#f59e0b",
			"error":                "#ef4444",
			"info":                 "#06b6d4",
			"background":           "#111827",
			"background_secondary": "#1f2937",
			"background_tertiary":  "#374151",
			"sidebar":              "#1f2937",
			"text_primary":         "#f9fafb",
			"text_secondary":       "#d1d5db",
			"border":               "#4b5563",
			"shadow":               "#00000025",
		},
		Components: map[string]string{
			"button_border_radius": "8px",
			"input_border_radius":  "8px",
			"card_border_radius":   "10px",
		},
	},
}

// ListPresets returns the built-in presets in display order
func ListPresets() []Preset {
	return presets
}

// GetPreset returns a preset by name, or nil if it does not exist
func GetPreset(name string) *Preset {
	for i := range presets {
		if presets[i].Name == name {
			return &presets[i]
		}
	}
	return nil
}

// ApplyPreset copies a preset's colors and component styles onto a
// customization row and records the preset as the theme metadata.
// Unknown keys are skipped.
func ApplyPreset(c *models.Customization, p *Preset) {
	for key, value := range p.Colors {
		switch key {
		case "primary":
			c.PrimaryColor = value
		case "secondary":
			c.SecondaryColor = value
		case "accent":
			c.AccentColor = value
		case "success":
			c.SuccessColor = value
		case "warning":
			c.WarningColor = value
		case "error":
			c.ErrorColor = value
		case "info":
			c.InfoColor = value
		case "background":
			c.BackgroundColor = value
		case "background_secondary":
			c.BackgroundSecondary = value
		case "background_tertiary":
			c.BackgroundTertiary = value
		case "sidebar":
			c.SidebarColor = value
		case "text_primary":
			c.TextPrimaryColor = value
		case "text_secondary":
			c.TextSecondaryColor = value
		case "border":
			c.BorderColor = value
		case "shadow":
			c.ShadowColor = value
		}
	}

	for key, value := range p.Components {
		switch key {
		case "button_border_radius":
			c.ButtonBorderRadius = value
		case "input_border_radius":
			c.InputBorderRadius = value
		case "card_border_radius":
			c.CardBorderRadius = value
		}
	}

	c.ThemeName = p.Name
	c.ThemeDescription = p.Description
}

// SPDX-License-Identifier: MIT
package tokens

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/microcosm-cc/bluemonday"

	"github.com/pastelpanda/chameleon/internal/models"
	"github.com/pastelpanda/chameleon/internal/themes"
)

// defaultRecord supplies the per-field fallbacks of the apply step, so a
// partial record still publishes a complete palette.
var defaultRecord = models.NewDefaultCustomization("default").Record()

// Publisher resolves a theme record into runtime style properties and
// writes them onto its surface. Apply is idempotent: identical inputs
// leave the surface unchanged.
type Publisher struct {
	surface  Surface
	stripper *bluemonday.Policy
}

// NewPublisher creates a publisher that owns the given surface
func NewPublisher(surface Surface) *Publisher {
	return &Publisher{
		surface:  surface,
		stripper: bluemonday.StrictPolicy(),
	}
}

// Apply publishes the record under the given display mode: resolved
// colors, component styles, typography, spacing, animation speed, the
// three brand ramps, the custom-CSS container and the favicon/title side
// effects. Missing fields fall back to the factory defaults; Apply never
// fails.
func (p *Publisher) Apply(record *models.ThemeRecord, mode models.DisplayMode) {
	if record == nil {
		record = defaultRecord
	}

	colors := resolveColors(record, mode)

	p.publishColors(colors)
	p.publishComponents(record)
	p.publishTypography(record.Typography)
	p.publishLayout(record.Layout)
	p.publishAnimations(record.Animations)
	p.publishShades(colors)
	p.publishCustomCSS(record.Advanced.CustomCSS)
	p.publishBranding(record.Branding)
}

// resolveColors produces the effective palette. In dark mode with
// overrides enabled, only the background, text, border, shadow and
// sidebar classes are swapped; brand and semantic hues always come from
// the light record. Empty fields fall back to the defaults first so the
// dark merge works from a complete light set.
func resolveColors(record *models.ThemeRecord, mode models.DisplayMode) models.ColorSet {
	d := defaultRecord.Colors
	c := record.Colors

	resolved := models.ColorSet{
		Primary:             or(c.Primary, d.Primary),
		Secondary:           or(c.Secondary, d.Secondary),
		Accent:              or(c.Accent, d.Accent),
		Success:             or(c.Success, d.Success),
		Warning:             or(c.Warning, d.Warning),
		Error:               or(c.Error, d.Error),
		Info:                or(c.Info, d.Info),
		Background:          or(c.Background, d.Background),
		BackgroundSecondary: or(c.BackgroundSecondary, d.BackgroundSecondary),
		BackgroundTertiary:  or(c.BackgroundTertiary, d.BackgroundTertiary),
		Sidebar:             or(c.Sidebar, d.Sidebar),
		TextPrimary:         or(c.TextPrimary, d.TextPrimary),
		TextSecondary:       or(c.TextSecondary, d.TextSecondary),
		Border:              or(c.Border, d.Border),
		Shadow:              or(c.Shadow, d.Shadow),
	}

	if mode != models.ModeDark || !record.DarkMode.Enabled || len(record.DarkMode.Colors) == 0 {
		return resolved
	}

	overrides := record.DarkMode.Colors
	override := func(key string, dst *string) {
		if value, ok := overrides[key]; ok && themes.ValidateColorHex(value) {
			*dst = value
		}
	}
	override("background", &resolved.Background)
	override("background_secondary", &resolved.BackgroundSecondary)
	override("background_tertiary", &resolved.BackgroundTertiary)
	override("sidebar", &resolved.Sidebar)
	override("text_primary", &resolved.TextPrimary)
	override("text_secondary", &resolved.TextSecondary)
	override("border", &resolved.Border)
	// Shadows carry alpha, so any non-empty override is taken verbatim
	if value, ok := overrides["shadow"]; ok && value != "" {
		resolved.Shadow = value
	}

	return resolved
}

func (p *Publisher) publishColors(c models.ColorSet) {
	p.surface.SetToken("--color-primary", c.Primary)
	p.surface.SetToken("--color-secondary", c.Secondary)
	p.surface.SetToken("--color-accent", c.Accent)
	p.surface.SetToken("--color-success", c.Success)
	p.surface.SetToken("--color-warning", c.Warning)
	p.surface.SetToken("--color-error", c.Error)
	p.surface.SetToken("--color-info", c.Info)
	p.surface.SetToken("--color-background", c.Background)
	p.surface.SetToken("--color-background-secondary", c.BackgroundSecondary)
	p.surface.SetToken("--color-background-tertiary", c.BackgroundTertiary)
	p.surface.SetToken("--color-sidebar", c.Sidebar)
	p.surface.SetToken("--color-text-primary", c.TextPrimary)
	p.surface.SetToken("--color-text-secondary", c.TextSecondary)
	p.surface.SetToken("--color-border", c.Border)
	p.surface.SetToken("--color-shadow", c.Shadow)
}

func (p *Publisher) publishComponents(record *models.ThemeRecord) {
	d := defaultRecord

	b := record.Buttons
	p.surface.SetToken("--button-primary-color", or(b.PrimaryColor, d.Buttons.PrimaryColor))
	p.surface.SetToken("--button-primary-text", or(b.PrimaryText, d.Buttons.PrimaryText))
	p.surface.SetToken("--button-secondary-color", or(b.SecondaryColor, d.Buttons.SecondaryColor))
	p.surface.SetToken("--button-secondary-text", or(b.SecondaryText, d.Buttons.SecondaryText))
	p.surface.SetToken("--button-border-radius", or(b.BorderRadius, d.Buttons.BorderRadius))

	in := record.Inputs
	p.surface.SetToken("--input-border-color", or(in.BorderColor, d.Inputs.BorderColor))
	p.surface.SetToken("--input-focus-color", or(in.FocusColor, d.Inputs.FocusColor))
	p.surface.SetToken("--input-border-radius", or(in.BorderRadius, d.Inputs.BorderRadius))

	card := record.Cards
	p.surface.SetToken("--card-background", or(card.Background, d.Cards.Background))
	p.surface.SetToken("--card-border-color", or(card.BorderColor, d.Cards.BorderColor))
	p.surface.SetToken("--card-border-radius", or(card.BorderRadius, d.Cards.BorderRadius))
	p.surface.SetToken("--card-shadow", or(card.Shadow, d.Cards.Shadow))

	nav := record.Navigation
	p.surface.SetToken("--nav-background", or(nav.Background, d.Navigation.Background))
	p.surface.SetToken("--nav-text-color", or(nav.TextColor, d.Navigation.TextColor))
	p.surface.SetToken("--nav-active-color", or(nav.ActiveColor, d.Navigation.ActiveColor))
	p.surface.SetToken("--nav-hover-color", or(nav.HoverColor, d.Navigation.HoverColor))
}

func (p *Publisher) publishTypography(t models.Typography) {
	d := defaultRecord.Typography
	p.surface.SetToken("--font-family", or(t.FontFamily, systemFontStack))
	p.surface.SetToken("--font-size-base", or(t.FontSizeBase, d.FontSizeBase))
	p.surface.SetToken("--font-size-heading", or(t.FontSizeHeading, d.FontSizeHeading))
	p.surface.SetToken("--font-weight-normal", or(t.FontWeightNormal, d.FontWeightNormal))
	p.surface.SetToken("--font-weight-medium", or(t.FontWeightMedium, d.FontWeightMedium))
	p.surface.SetToken("--font-weight-bold", or(t.FontWeightBold, d.FontWeightBold))
	p.surface.SetToken("--line-height-base", or(t.LineHeightBase, d.LineHeightBase))
	p.surface.SetToken("--line-height-heading", or(t.LineHeightHeading, d.LineHeightHeading))
	p.surface.SetToken("--letter-spacing", or(t.LetterSpacing, d.LetterSpacing))
}

const systemFontStack = `-apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif`

func (p *Publisher) publishLayout(l models.Layout) {
	d := defaultRecord.Layout
	p.surface.SetToken("--border-radius", or(l.BorderRadius, d.BorderRadius))
	p.surface.SetToken("--spacing-unit", or(l.SpacingUnit, d.SpacingUnit))
	p.surface.SetToken("--spacing-xs", or(l.SpacingXS, d.SpacingXS))
	p.surface.SetToken("--spacing-sm", or(l.SpacingSM, d.SpacingSM))
	p.surface.SetToken("--spacing-md", or(l.SpacingMD, d.SpacingMD))
	p.surface.SetToken("--spacing-lg", or(l.SpacingLG, d.SpacingLG))
	p.surface.SetToken("--spacing-xl", or(l.SpacingXL, d.SpacingXL))
}

// publishAnimations forces the speed to zero when animations are off,
// whatever the configured value says
func (p *Publisher) publishAnimations(a models.Animations) {
	speed := or(a.Speed, defaultRecord.Animations.Speed)
	if !a.Enabled {
		speed = "0ms"
	}
	p.surface.SetToken("--animation-speed", speed)
}

// publishShades expands the three brand hues into ten-step ramps.
// Semantic and background colors are not expanded.
func (p *Publisher) publishShades(c models.ColorSet) {
	ramps := []struct {
		prefix string
		base   string
	}{
		{"--color-primary-", c.Primary},
		{"--color-secondary-", c.Secondary},
		{"--color-accent-", c.Accent},
	}
	for _, ramp := range ramps {
		shades := themes.GenerateShades(ramp.base)
		for _, key := range themes.ShadeKeys {
			p.surface.SetToken(ramp.prefix+key, shades[key])
		}
	}
}

// publishCustomCSS replaces the managed container. The CSS must at least
// parse; anything douceur rejects clears the container instead, so a bad
// stylesheet can never break the rest of the palette.
func (p *Publisher) publishCustomCSS(css string) {
	css = strings.TrimSpace(css)
	if css == "" {
		p.surface.SetCustomCSS("")
		return
	}
	if _, err := parser.Parse(css); err != nil {
		p.surface.SetCustomCSS("")
		return
	}
	p.surface.SetCustomCSS(css)
}

func (p *Publisher) publishBranding(b models.Branding) {
	if b.FaviconURL != "" {
		p.surface.SetFavicon(b.FaviconURL)
	}
	if b.AppName != "" {
		p.surface.SetTitle(p.stripper.Sanitize(b.AppName))
	}
}

func or(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pastelpanda/chameleon/internal/store"
	"github.com/pastelpanda/chameleon/internal/themes"
	"github.com/pastelpanda/chameleon/internal/tokens"
)

// ThemeCSS serves the live presentation surface as a stylesheet. Every
// token is a CSS custom property on :root; the managed custom-CSS
// container follows. This namespace is the stable contract the rest of
// the application reads; renaming a property is a breaking change.
func ThemeCSS(surface *tokens.StyleSurface) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(surface.CSS()))
	}
}

// GetDisplayMode reports the persisted display mode preference
func GetDisplayMode(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"mode": s.Mode()})
	}
}

// ToggleDisplayMode flips and persists the display mode, republishing
// the current record under the new mode before responding
func ToggleDisplayMode(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		mode, err := s.Toggle()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"mode": mode})
	}
}

// EngineStatus exposes the store lifecycle and the surface side effects,
// mostly for dashboards and smoke checks
func EngineStatus(s *store.Store, surface *tokens.StyleSurface) gin.HandlerFunc {
	return func(c *gin.Context) {
		var themeName string
		if record := s.Record(); record != nil {
			themeName = record.Metadata.ThemeName
		}
		c.JSON(http.StatusOK, gin.H{
			"state":      s.State(),
			"mode":       s.Mode(),
			"theme_name": themeName,
			"title":      surface.Title(),
			"favicon":    surface.Favicon(),
			"version":    surface.Version(),
		})
	}
}

// SuggestTextColor returns an accessible text color for a background.
// Editors use it for the one-click contrast fix in the color form.
func SuggestTextColor(c *gin.Context) {
	background := c.Query("background")
	if !themes.ValidateColorHex(background) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "background must be a #RRGGBB color"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"background":    background,
		"suggested":     themes.SuggestAccessibleTextColor(background),
		"complementary": themes.SuggestComplementaryColor(background),
	})
}

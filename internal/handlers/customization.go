// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pastelpanda/chameleon/internal/db"
	"github.com/pastelpanda/chameleon/internal/models"
	"github.com/pastelpanda/chameleon/internal/themes"
)

// Refresher lets save-path handlers push the new record to the live
// engine immediately instead of waiting for the next scheduled refresh
type Refresher interface {
	RefreshNow() error
}

// organizationName resolves the organization the request targets
func organizationName(c *gin.Context) string {
	name := c.Query("organization_name")
	if name == "" {
		return "default"
	}
	return name
}

// getOrCreateCustomization loads the row for an organization, creating
// the factory theme on first access
func getOrCreateCustomization(database *gorm.DB, organization string) (*models.Customization, error) {
	var cust models.Customization
	err := database.First(&cust, "organization_name = ?", organization).Error
	if err == nil {
		return &cust, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := models.NewDefaultCustomization(organization)
	if err := database.Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

// notifyRefresh triggers the engine after a save; failures are not the
// caller's problem since the next timer tick recovers
func notifyRefresh(refresher Refresher) {
	if refresher != nil {
		_ = refresher.RefreshNow()
	}
}

// GetCurrentCustomization serves the active theme record. This is the
// public endpoint every client reads on startup and on refresh.
func GetCurrentCustomization(c *gin.Context) {
	cust, err := getOrCreateCustomization(db.GetDB(), organizationName(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customization"})
		return
	}
	c.JSON(http.StatusOK, cust.Record())
}

// UpdateCustomization applies a partial update. The merged theme is
// validated first; validation errors block the save and come back with
// the full diagnostics, warnings alone do not.
func UpdateCustomization(refresher Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cust, err := getOrCreateCustomization(db.GetDB(), organizationName(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customization"})
			return
		}

		updated := *cust
		req.ApplyTo(&updated)

		validation := themes.ValidateTheme(updated.Record())
		if !validation.Valid {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":      "theme validation failed",
				"validation": validation,
			})
			return
		}

		if err := db.GetDB().Save(&updated).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save customization"})
			return
		}

		notifyRefresh(refresher)
		c.JSON(http.StatusOK, updated.Record())
	}
}

// ValidateCustomization runs the theme validator over the current row
// with the request merged in, without saving anything. Editors call this
// on every form change for live diagnostics.
func ValidateCustomization(c *gin.Context) {
	var req models.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cust, err := getOrCreateCustomization(db.GetDB(), organizationName(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customization"})
		return
	}

	merged := *cust
	req.ApplyTo(&merged)
	c.JSON(http.StatusOK, themes.ValidateTheme(merged.Record()))
}

// ResetCustomization restores the factory theme for an organization
func ResetCustomization(refresher Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		cust, err := getOrCreateCustomization(db.GetDB(), organizationName(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customization"})
			return
		}

		cust.ResetToDefaults()
		if err := db.GetDB().Save(cust).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset customization"})
			return
		}

		notifyRefresh(refresher)
		c.JSON(http.StatusOK, cust.Record())
	}
}

// GetThemePresets lists the built-in presets
func GetThemePresets(c *gin.Context) {
	c.JSON(http.StatusOK, themes.ListPresets())
}

// ApplyThemePreset applies a named preset wholesale
func ApplyThemePreset(refresher Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		preset := themes.GetPreset(req.Name)
		if preset == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "theme preset not found: " + req.Name})
			return
		}

		cust, err := getOrCreateCustomization(db.GetDB(), organizationName(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customization"})
			return
		}

		themes.ApplyPreset(cust, preset)
		if err := db.GetDB().Save(cust).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save customization"})
			return
		}

		notifyRefresh(refresher)
		c.JSON(http.StatusOK, cust.Record())
	}
}

// ExportCustomization serves the record for download as JSON
func ExportCustomization(c *gin.Context) {
	cust, err := getOrCreateCustomization(db.GetDB(), organizationName(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customization"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="theme.json"`)
	c.JSON(http.StatusOK, cust.Record())
}

// SPDX-License-Identifier: MIT
package store

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pastelpanda/chameleon/internal/models"
)

func setupModeTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Preference{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestPreferenceModeStoreMissingRowMeansLight(t *testing.T) {
	modes := NewPreferenceModeStore(setupModeTestDB(t))

	mode, err := modes.Mode()
	if err != nil {
		t.Fatalf("Mode failed: %v", err)
	}
	if mode != models.ModeLight {
		t.Errorf("Expected light without a row, got %s", mode)
	}
}

func TestPreferenceModeStoreRoundTrip(t *testing.T) {
	modes := NewPreferenceModeStore(setupModeTestDB(t))

	if err := modes.SetMode(models.ModeDark); err != nil {
		t.Fatalf("SetMode failed: %v", err)
	}
	mode, err := modes.Mode()
	if err != nil {
		t.Fatalf("Mode failed: %v", err)
	}
	if mode != models.ModeDark {
		t.Errorf("Expected dark, got %s", mode)
	}
}

func TestPreferenceModeStoreUpserts(t *testing.T) {
	db := setupModeTestDB(t)
	modes := NewPreferenceModeStore(db)

	if err := modes.SetMode(models.ModeDark); err != nil {
		t.Fatalf("SetMode failed: %v", err)
	}
	if err := modes.SetMode(models.ModeLight); err != nil {
		t.Fatalf("SetMode failed: %v", err)
	}

	mode, _ := modes.Mode()
	if mode != models.ModeLight {
		t.Errorf("Expected light after overwrite, got %s", mode)
	}

	var count int64
	db.Model(&models.Preference{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected a single preference row, got %d", count)
	}
}

func TestPreferenceModeStoreNormalizesStoredValue(t *testing.T) {
	db := setupModeTestDB(t)
	modes := NewPreferenceModeStore(db)

	db.Create(&models.Preference{Key: models.DisplayModeKey, Value: "midnight"})

	mode, err := modes.Mode()
	if err != nil {
		t.Fatalf("Mode failed: %v", err)
	}
	if mode != models.ModeLight {
		t.Errorf("Expected unknown value normalized to light, got %s", mode)
	}
}

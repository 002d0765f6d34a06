package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pastelpanda/chameleon/internal/models"
)

// PreferenceModeStore persists the display mode in the preferences table.
// Any code that needs the mode before the engine starts can read the same
// row.
type PreferenceModeStore struct {
	db *gorm.DB
}

// NewPreferenceModeStore wraps a database handle
func NewPreferenceModeStore(db *gorm.DB) *PreferenceModeStore {
	return &PreferenceModeStore{db: db}
}

// Mode reads the persisted preference. A missing row means light.
func (p *PreferenceModeStore) Mode() (models.DisplayMode, error) {
	var pref models.Preference
	err := p.db.First(&pref, "key = ?", models.DisplayModeKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ModeLight, nil
	}
	if err != nil {
		return models.ModeLight, fmt.Errorf("read display mode preference: %w", err)
	}
	return models.ParseDisplayMode(pref.Value), nil
}

// SetMode upserts the preference row
func (p *PreferenceModeStore) SetMode(mode models.DisplayMode) error {
	pref := models.Preference{Key: models.DisplayModeKey, Value: string(mode)}
	err := p.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("persist display mode preference: %w", err)
	}
	return nil
}

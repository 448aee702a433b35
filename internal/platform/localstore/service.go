package localstore

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// --- Generic Accessors ---

// GetValue retrieves a value for a given key from the local slot.
// A missing key yields an empty string, which is a valid default.
func GetValue(db *gorm.DB, key string) (string, error) {
	var entry Entry
	err := db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return entry.Value, nil
}

// SetValue creates or updates a value for a given key.
// Uses GORM's OnConflict clause for an atomic upsert keyed by 'key'.
func SetValue(db *gorm.DB, key, value string) error {
	entry := Entry{
		Key:   key,
		Value: value,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// --- Preference Helpers ---

// GetDarkMode reports the UI theme preference. Defaults to false.
func GetDarkMode(db *gorm.DB) (bool, error) {
	return getBool(db, DarkModeKey)
}

// SetDarkMode stores the UI theme preference.
func SetDarkMode(db *gorm.DB, enabled bool) error {
	return SetValue(db, DarkModeKey, strconv.FormatBool(enabled))
}

// GetTutorialShown reports whether the first-run tutorial was already shown.
func GetTutorialShown(db *gorm.DB) (bool, error) {
	return getBool(db, TutorialShownKey)
}

// SetTutorialShown stores the tutorial-shown flag.
func SetTutorialShown(db *gorm.DB, shown bool) error {
	return SetValue(db, TutorialShownKey, strconv.FormatBool(shown))
}

func getBool(db *gorm.DB, key string) (bool, error) {
	valueStr, err := GetValue(db, key)
	if err != nil {
		return false, err
	}
	if valueStr == "" {
		return false, nil
	}
	return strconv.ParseBool(valueStr)
}

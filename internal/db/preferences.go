package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vartheme/internal/theme"
	"vartheme/models"
)

// PreferenceStore persists a visitor's theme identity in the visitors
// table. It implements theme.Persistence for the name and mode keys; custom
// colors are never written to the database.
type PreferenceStore struct {
	db    *gorm.DB
	token string
}

// NewPreferenceStore returns a store for the visitor identified by token.
func NewPreferenceStore(db *gorm.DB, token string) *PreferenceStore {
	return &PreferenceStore{db: db, token: strings.TrimSpace(token)}
}

// Get implements theme.Persistence.
func (s *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	column, err := columnFor(key)
	if err != nil {
		return "", false, nil
	}
	if s.db == nil || s.token == "" {
		return "", false, theme.ErrUnavailable
	}

	var visitor models.Visitor
	err = s.db.WithContext(ctx).Where("token = ?", s.token).First(&visitor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load visitor preferences: %w", err)
	}

	if column == "theme_name" {
		return visitor.ThemeName, true, nil
	}
	return visitor.ThemeMode, true, nil
}

// Set implements theme.Persistence. The visitor row is created on first
// write.
func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	column, err := columnFor(key)
	if err != nil {
		return err
	}
	if s.db == nil || s.token == "" {
		return theme.ErrUnavailable
	}

	visitor := models.Visitor{Token: s.token}
	if column == "theme_name" {
		visitor.ThemeName = value
	} else {
		visitor.ThemeMode = value
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{column, "updated_at"}),
	}).Create(&visitor).Error
	if err != nil {
		return fmt.Errorf("save visitor preferences: %w", err)
	}
	return nil
}

func columnFor(key string) (string, error) {
	switch key {
	case theme.KeyName:
		return "theme_name", nil
	case theme.KeyMode:
		return "theme_mode", nil
	}
	return "", fmt.Errorf("preference %q is not stored in the database", key)
}

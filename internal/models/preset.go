package models

import (
	"fmt"
	"strings"

	"github.com/budget-wallets/backend/internal/budget"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// Preset is a custom allocation plan created by a user. Custom presets
// are available to all users, next to the built-in ones.
type Preset struct {
	DefaultModel
	Name        string
	Description string
	Categories  []budget.Category `gorm:"serializer:json"`
}

func (p *Preset) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)

	return nil
}

// Budget returns the preset as it is presented to clients.
func (p Preset) Budget() budget.Preset {
	return budget.Preset{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Categories:  p.Categories,
		Builtin:     false,
	}
}

// ListPresets returns the built-in presets followed by the custom presets
// sorted by name.
//
// If pattern is not empty, only presets with a name matching the glob
// pattern are returned. "*" matches any sequence of characters.
//
// If the custom presets cannot be read, the error is logged and only the
// built-in presets are returned.
func ListPresets(db *gorm.DB, pattern string) []budget.Preset {
	presets := budget.Presets()

	var custom []Preset
	err := db.Order("name ASC").Find(&custom).Error
	if err != nil {
		log.Error().Err(err).Msg("could not load custom presets, only returning built-in presets")
	}

	for _, p := range custom {
		presets = append(presets, p.Budget())
	}

	if pattern == "" {
		return presets
	}

	filtered := make([]budget.Preset, 0)
	for _, p := range presets {
		if glob.Glob(pattern, p.Name) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// FindPreset returns the preset with the given ID. Built-in presets are
// looked up first, then custom presets.
//
// Any failure to find a custom preset, including an ID that is not a UUID,
// is reported as ErrResourceNotFound.
func FindPreset(db *gorm.DB, id string) (budget.Preset, error) {
	if p, ok := budget.BuiltinPreset(id); ok {
		return p, nil
	}

	notFound := fmt.Errorf("%w preset matching your query", ErrResourceNotFound)

	parsed, err := uuid.Parse(id)
	if err != nil {
		return budget.Preset{}, notFound
	}

	var preset Preset
	err = db.First(&preset, "id = ?", parsed).Error
	if err != nil {
		log.Debug().Err(err).Str("id", id).Msg("custom preset lookup failed")
		return budget.Preset{}, notFound
	}

	return preset.Budget(), nil
}

package models_test

import (
	"github.com/budget-wallets/backend/internal/budget"
	"github.com/budget-wallets/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func presetNames(presets []budget.Preset) []string {
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	return names
}

func (suite *TestSuiteStandard) TestListPresets() {
	categories := []budget.Category{{Name: "All", Percentage: 100, Color: "#000000"}}
	_ = suite.createTestPreset(models.Preset{Name: "Zebra", Categories: categories})
	_ = suite.createTestPreset(models.Preset{Name: "Apple", Categories: categories})

	presets := models.ListPresets(models.DB, "")
	assert.Equal(suite.T(), []string{
		"50/30/20 Rule",
		"Zero-Based Budget",
		"Envelope System",
		"Apple",
		"Zebra",
	}, presetNames(presets))

	assert.True(suite.T(), presets[0].Builtin)
	assert.False(suite.T(), presets[3].Builtin)
	assert.Equal(suite.T(), categories, presets[3].Categories)
}

func (suite *TestSuiteStandard) TestListPresetsFilter() {
	_ = suite.createTestPreset(models.Preset{Name: "Zero Waste"})

	tests := []struct {
		pattern string
		names   []string
	}{
		{"Zero*", []string{"Zero-Based Budget", "Zero Waste"}},
		{"*System", []string{"Envelope System"}},
		{"*", []string{"50/30/20 Rule", "Zero-Based Budget", "Envelope System", "Zero Waste"}},
		{"zero*", []string{}},
		{"Nothing", []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.pattern, func() {
			assert.Equal(suite.T(), tt.names, presetNames(models.ListPresets(models.DB, tt.pattern)))
		})
	}
}

func (suite *TestSuiteStandard) TestListPresetsDBClosed() {
	suite.CloseDB()

	presets := models.ListPresets(models.DB, "")
	assert.Equal(suite.T(), budget.Presets(), presets)
}

func (suite *TestSuiteStandard) TestFindPreset() {
	custom := suite.createTestPreset(models.Preset{
		Name:        " Custom ",
		Description: "Everything in one place",
		Categories:  []budget.Category{{Name: "All", Percentage: 100, Color: "#000000"}},
	})

	p, err := models.FindPreset(models.DB, "preset-envelope")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Envelope System", p.Name)
	assert.True(suite.T(), p.Builtin)

	p, err = models.FindPreset(models.DB, custom.ID.String())
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), custom.ID.String(), p.ID)
	assert.Equal(suite.T(), "Custom", p.Name)
	assert.False(suite.T(), p.Builtin)
}

func (suite *TestSuiteStandard) TestFindPresetNotFound() {
	for _, id := range []string{"preset-unknown", "", uuid.NewString()} {
		_, err := models.FindPreset(models.DB, id)
		assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound, "ID: %s", id)
		assert.Equal(suite.T(), "there is no preset matching your query", err.Error())
	}
}

func (suite *TestSuiteStandard) TestFindPresetDBClosed() {
	suite.CloseDB()

	p, err := models.FindPreset(models.DB, "preset-50-30-20")
	require.Nil(suite.T(), err, "Built-in presets must be available without the database")
	assert.Equal(suite.T(), "50/30/20 Rule", p.Name)

	_, err = models.FindPreset(models.DB, uuid.NewString())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

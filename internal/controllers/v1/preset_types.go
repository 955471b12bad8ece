package v1

import (
	"fmt"

	"github.com/budget-wallets/backend/internal/budget"
	"github.com/budget-wallets/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type PresetEditable struct {
	Name        string            `json:"name" binding:"required,max=100" example:"Student Budget"`                 // Name of the preset
	Description string            `json:"description" binding:"max=500" example:"Rent first, then everything else"` // Description of the preset
	Categories  []budget.Category `json:"categories" binding:"dive"`                                                // The categories a wallet created from this preset gets. The percentages must sum up to 100.
}

// model returns the database resource for the editable fields
func (editable PresetEditable) model() models.Preset {
	return models.Preset{
		Name:        editable.Name,
		Description: editable.Description,
		Categories:  editable.Categories,
	}
}

type PresetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/presets/preset-50-30-20"` // The preset itself
}

// Preset is the API v1 representation of a Preset.
type Preset struct {
	budget.Preset
	Links PresetLinks `json:"links"`
}

func newPreset(c *gin.Context, preset budget.Preset) Preset {
	url := c.GetString(string(models.DBContextURL))

	if preset.Categories == nil {
		preset.Categories = make([]budget.Category, 0)
	}

	return Preset{
		Preset: preset,
		Links: PresetLinks{
			Self: fmt.Sprintf("%s/v1/presets/%s", url, preset.ID),
		},
	}
}

type PresetListResponse struct {
	Data  []Preset `json:"data"`                                                          // List of presets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PresetCreateResponse struct {
	Error *string          `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  []PresetResponse `json:"data"`                                               // List of created presets
}

func (p *PresetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, PresetResponse{Error: &s, Errors: validationMessages(err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PresetResponse struct {
	Data   *Preset  `json:"data"`                                                      // Data for the preset
	Error  *string  `json:"error" example:"Duplicate category names are not allowed"`  // The error, if any occurred for this preset
	Errors []string `json:"errors" example:"Duplicate category names are not allowed"` // All violated rules, if the preset is invalid
}

type PresetQueryFilter struct {
	Name string `form:"name"` // Glob pattern for the name, "*" matches any sequence of characters
}

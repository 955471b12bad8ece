package v1

import (
	"net/http"

	"github.com/budget-wallets/backend/internal/auth"
	"github.com/budget-wallets/backend/internal/budget"
	"github.com/budget-wallets/backend/internal/httputil"
	"github.com/budget-wallets/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterPresetRoutes registers the routes for presets with
// the RouterGroup that is passed.
//
// Presets can be read without a session.
func RegisterPresetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPresetList)
		r.GET("", GetPresets)
		r.POST("", auth.Required(), CreatePresets)
	}

	// Preset with ID
	{
		r.OPTIONS("/:id", OptionsPresetDetail)
		r.GET("/:id", GetPreset)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Presets
// @Success		204
// @Router			/v1/presets [options]
func OptionsPresetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Presets
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of a built-in preset or UUID of a custom preset"
// @Router			/v1/presets/{id} [options]
func OptionsPresetDetail(c *gin.Context) {
	_, err := models.FindPreset(models.DB, c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List presets
// @Description	Returns the built-in presets followed by the custom presets sorted by name
// @Tags			Presets
// @Produce		json
// @Success		200		{object}	PresetListResponse
// @Failure		400		{object}	PresetListResponse
// @Router			/v1/presets [get]
// @Param			name	query	string	false	"Filter by name. Supports glob patterns with '*'"
func GetPresets(c *gin.Context) {
	var filter PresetQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PresetListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Preset, 0)
	for _, preset := range models.ListPresets(models.DB, filter.Name) {
		data = append(data, newPreset(c, preset))
	}

	c.JSON(http.StatusOK, PresetListResponse{Data: data})
}

// @Summary		Get preset
// @Description	Returns a specific preset
// @Tags			Presets
// @Produce		json
// @Success		200	{object}	PresetResponse
// @Failure		404	{object}	PresetResponse
// @Param			id	path		string	true	"ID of a built-in preset or UUID of a custom preset"
// @Router			/v1/presets/{id} [get]
func GetPreset(c *gin.Context) {
	preset, err := models.FindPreset(models.DB, c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PresetResponse{
			Error: &s,
		})
		return
	}

	data := newPreset(c, preset)
	c.JSON(http.StatusOK, PresetResponse{Data: &data})
}

// @Summary		Create presets
// @Description	Creates custom presets. Custom presets are available to all users.
// @Tags			Presets
// @Produce		json
// @Success		201		{object}	PresetCreateResponse
// @Failure		400		{object}	PresetCreateResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	PresetCreateResponse
// @Param			presets	body		[]PresetEditable	true	"Presets"
// @Router			/v1/presets [post]
func CreatePresets(c *gin.Context) {
	var editables []PresetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PresetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PresetCreateResponse{}

	for _, editable := range editables {
		err = budget.ValidateCategories(editable.Categories).Err()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		preset := editable.model()
		err = models.DB.Create(&preset).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newPreset(c, preset.Budget())
		r.Data = append(r.Data, PresetResponse{Data: &data})
	}

	c.JSON(status, r)
}

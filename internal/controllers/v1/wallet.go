package v1

import (
	"net/http"

	"github.com/budget-wallets/backend/internal/auth"
	"github.com/budget-wallets/backend/internal/budget"
	"github.com/budget-wallets/backend/internal/httputil"
	"github.com/budget-wallets/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// RegisterWalletRoutes registers the routes for wallets with
// the RouterGroup that is passed.
func RegisterWalletRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsWalletList)
		r.GET("", auth.Required(), GetWallets)
		r.POST("", auth.Required(), CreateWallets)
	}

	// Wallet with ID
	{
		r.OPTIONS("/:id", OptionsWalletDetail)
		r.GET("/:id", auth.Required(), GetWallet)
		r.PATCH("/:id", auth.Required(), UpdateWallet)
		r.DELETE("/:id", auth.Required(), DeleteWallet)
		r.OPTIONS("/:id/summary", OptionsWalletSummary)
		r.GET("/:id/summary", auth.Required(), GetWalletSummary)
	}
}

// getWallet returns the wallet with the ID from the URI if it belongs to
// the user of the request.
//
// Wallets of other users are reported as not found.
func getWallet(c *gin.Context) (models.Wallet, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Wallet{}, err
	}

	return ownWallet(userID(c), uri.ID.UUID)
}

func ownWallet(user, id uuid.UUID) (models.Wallet, error) {
	var wallet models.Wallet
	err := models.DB.First(&wallet, "id = ? AND user_id = ?", id, user).Error
	if err != nil {
		return models.Wallet{}, err
	}

	return wallet, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Router			/v1/wallets [options]
func OptionsWalletList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wallets/{id} [options]
func OptionsWalletDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wallets/{id}/summary [options]
func OptionsWalletSummary(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create wallets
// @Description	Creates new wallets for the user of the session. Every wallet is validated on its own.
// @Tags			Wallets
// @Produce		json
// @Success		201		{object}	WalletCreateResponse
// @Failure		400		{object}	WalletCreateResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	WalletCreateResponse
// @Failure		500		{object}	WalletCreateResponse
// @Param			wallets	body		[]WalletCreate	true	"Wallets"
// @Router			/v1/wallets [post]
func CreateWallets(c *gin.Context) {
	var creates []WalletCreate

	// Bind data and return error if not possible
	err := httputil.BindData(c, &creates)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := WalletCreateResponse{}

	for _, create := range creates {
		editable := create.WalletEditable

		if len(editable.Categories) == 0 && create.PresetID != "" {
			preset, err := models.FindPreset(models.DB, create.PresetID)
			if err != nil {
				status = r.appendError(err, status)
				continue
			}
			editable.Categories = preset.Categories
		}

		err = budget.ValidateWalletInput(editable.input()).Err()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		wallet := editable.model()
		wallet.UserID = userID(c)

		err = models.DB.Create(&wallet).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newWallet(c, wallet)
		r.Data = append(r.Data, WalletResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List wallets
// @Description	Returns the wallets of the user of the session, newest first
// @Tags			Wallets
// @Produce		json
// @Success		200			{object}	WalletListResponse
// @Failure		400			{object}	WalletListResponse
// @Failure		401			{object}	httpError
// @Failure		500			{object}	WalletListResponse
// @Router			/v1/wallets [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			currency	query	string	false	"Filter by currency"
// @Param			offset		query	uint	false	"The offset of the first Wallet returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Wallets to return. Defaults to 50."
func GetWallets(c *gin.Context) {
	var filter WalletQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WalletListResponse{
			Error: &s,
		})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.
		Order("datetime(created_at) DESC").
		Where("user_id = ?", userID(c)).
		Where(&model, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Wallets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var wallets []models.Wallet
	err := q.Find(&wallets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	data := make([]Wallet, 0)
	for _, wallet := range wallets {
		data = append(data, newWallet(c, wallet))
	}

	c.JSON(http.StatusOK, WalletListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get wallet
// @Description	Returns a specific wallet
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletResponse
// @Failure		400	{object}	WalletResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	WalletResponse
// @Failure		500	{object}	WalletResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wallets/{id} [get]
func GetWallet(c *gin.Context) {
	wallet, err := getWallet(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &s,
		})
		return
	}

	data := newWallet(c, wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &data})
}

// @Summary		Update wallet balance
// @Description	Sets the balance of a wallet. The balance is not changed by transactions, it is only updated with this endpoint.
// @Tags			Wallets
// @Produce		json
// @Success		200		{object}	WalletResponse
// @Failure		400		{object}	WalletResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	WalletResponse
// @Failure		500		{object}	WalletResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			wallet	body		WalletBalanceEditable	true	"Wallet"
// @Router			/v1/wallets/{id} [patch]
func UpdateWallet(c *gin.Context) {
	wallet, err := getWallet(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &s,
		})
		return
	}

	var data WalletBalanceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &s,
		})
		return
	}

	if data.Balance == nil {
		s := errBalanceNotSet.Error()
		c.JSON(http.StatusBadRequest, WalletResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&wallet).Update("Balance", *data.Balance).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &s,
		})
		return
	}

	apiResource := newWallet(c, wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &apiResource})
}

// @Summary		Delete wallet
// @Description	Deletes a wallet together with all of its transactions
// @Tags			Wallets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wallets/{id} [delete]
func DeleteWallet(c *gin.Context) {
	wallet, err := getWallet(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = wallet.Delete(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get wallet summary
// @Description	Returns the allocation of the balance to the categories and the spending per category
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletSummaryResponse
// @Failure		400	{object}	WalletSummaryResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	WalletSummaryResponse
// @Failure		500	{object}	WalletSummaryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wallets/{id}/summary [get]
func GetWalletSummary(c *gin.Context) {
	wallet, err := getWallet(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletSummaryResponse{
			Error: &s,
		})
		return
	}

	transactions, err := wallet.Transactions(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletSummaryResponse{
			Error: &s,
		})
		return
	}

	snapshot := wallet.Snapshot()

	allocations := make([]CategoryAllocation, 0, len(snapshot.Categories))
	for _, category := range snapshot.Categories {
		allocations = append(allocations, CategoryAllocation{
			Category:   category.Name,
			Percentage: category.Percentage,
			Amount:     budget.CategoryAllocation(snapshot, category.Name),
		})
	}

	snapshots := make([]budget.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		snapshots = append(snapshots, transaction.Snapshot())
	}

	c.JSON(http.StatusOK, WalletSummaryResponse{Data: &WalletSummary{
		CategoryTotal: budget.CategoryTotal(snapshot.Categories),
		Allocations:   allocations,
		Spending:      budget.Summarize(snapshots),
	}})
}

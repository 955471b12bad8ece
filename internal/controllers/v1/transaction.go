package v1

import (
	"net/http"

	"github.com/budget-wallets/backend/internal/auth"
	"github.com/budget-wallets/backend/internal/budget"
	"github.com/budget-wallets/backend/internal/httputil"
	"github.com/budget-wallets/backend/internal/models"
	"github.com/budget-wallets/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	google_uuid "github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", auth.Required(), GetTransactions)
		r.POST("", auth.Required(), CreateTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", auth.Required(), GetTransaction)
		r.DELETE("/:id", auth.Required(), DeleteTransaction)
	}
}

// ownTransactions restricts a query to transactions in wallets of the user.
func ownTransactions(db *gorm.DB, user google_uuid.UUID) *gorm.DB {
	return db.Where("transactions.wallet_id IN (?)", models.DB.Model(&models.Wallet{}).Select("id").Where("user_id = ?", user))
}

// getTransaction returns the transaction with the ID from the URI if it
// belongs to the user of the request.
func getTransaction(c *gin.Context) (models.Transaction, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Transaction{}, err
	}

	var transaction models.Transaction
	err = ownTransactions(models.DB, userID(c)).First(&transaction, "transactions.id = ?", uri.ID.UUID).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create transactions
// @Description	Creates transactions. Every transaction is validated against the categories of its wallet.
// @Description	The balance of the wallet is not changed.
// @Description	Dates with a time zone offset are stored in UTC, which can move them to another calendar day.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		401				{object}	httpError
// @Failure		404				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		walletID, err := uuid.Parse(editable.WalletID)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Without a wallet ID, the validation reports the missing wallet
		var snapshot *budget.Wallet
		if walletID != uuid.Nil {
			wallet, err := ownWallet(userID(c), walletID.UUID)
			if err != nil {
				status = r.appendError(err, status)
				continue
			}

			s := wallet.Snapshot()
			snapshot = &s
		}

		err = budget.ValidateTransactionInput(editable.input(), snapshot).Err()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		transaction := editable.model(walletID.UUID)
		err = models.DB.Create(&transaction).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get transactions
// @Description	Returns transactions in wallets of the user of the session, sorted by date and creation time, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			wallet		query	string	false	"Filter by wallet ID"
// @Param			category	query	string	false	"Filter by category name"
// @Param			fromDate	query	string	false	"Transactions at and after this date. Ignores exact time, matches on the UTC day of the date provided."
// @Param			untilDate	query	string	false	"Transactions before and at this date. Ignores exact time, matches on the UTC day of the date provided."
// @Param			offset		query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	q := ownTransactions(models.DB, userID(c)).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Where(&model, queryFields...)

	if slices.Contains(setFields, "FromDate") {
		from, err := day(filter.FromDate)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{
				Error: &e,
			})
			return
		}
		q = q.Where("transactions.date >= date(?)", from)
	}

	if slices.Contains(setFields, "UntilDate") {
		until, err := day(filter.UntilDate)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{
				Error: &e,
			})
			return
		}
		q = q.Where("transactions.date < date(?)", until.AddDate(0, 0, 1))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 transactions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var transactions []models.Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	data := make([]Transaction, 0)
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction. The balance of the wallet is not changed.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

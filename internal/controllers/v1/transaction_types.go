package v1

import (
	"fmt"
	"time"

	"github.com/budget-wallets/backend/internal/budget"
	"github.com/budget-wallets/backend/internal/models"
	"github.com/budget-wallets/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	google_uuid "github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	WalletID    string          `json:"walletId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                                          // ID of the wallet
	Category    string          `json:"category" example:"Groceries"`                                                                                     // Name of a category of the wallet
	Amount      decimal.Decimal `json:"amount" example:"-14.99" minimum:"-999999999999.99999999" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Negative for expenses, positive for income
	Description string          `json:"description" example:"Weekly shopping"`                                                                            // A description of the transaction
	Date        string          `json:"date" example:"2024-04-02"`                                                                                        // Date of the transaction, ISO 8601
}

// input returns the data for validation
func (editable TransactionEditable) input() budget.TransactionInput {
	return budget.TransactionInput{
		Wallet:      editable.WalletID,
		Category:    editable.Category,
		Amount:      editable.Amount.InexactFloat64(),
		Description: editable.Description,
		Date:        editable.Date,
	}
}

// model returns the database resource for the editable fields.
//
// It must only be called for validated input.
func (editable TransactionEditable) model(walletID google_uuid.UUID) models.Transaction {
	date, _ := budget.ParseDate(editable.Date)

	return models.Transaction{
		WalletID:    walletID,
		Category:    editable.Category,
		Amount:      editable.Amount,
		Description: editable.Description,
		Date:        date,
	}
}

type TransactionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Wallet string `json:"wallet" example:"https://example.com/api/v1/wallets/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`    // The wallet of the transaction
}

// Transaction is the API v1 representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	WalletID    google_uuid.UUID `json:"walletId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the wallet
	Category    string           `json:"category" example:"Groceries"`                            // Name of the category
	Amount      decimal.Decimal  `json:"amount" example:"-14.99"`                                 // Negative for expenses, positive for income
	Description string           `json:"description" example:"Weekly shopping"`                   // A description of the transaction
	Date        time.Time        `json:"date" example:"2024-04-02T00:00:00Z"`                     // Date of the transaction
	Links       TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		WalletID:     model.WalletID,
		Category:     model.Category,
		Amount:       model.Amount,
		Description:  model.Description,
		Date:         model.Date,
		Links: TransactionLinks{
			Self:   fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Wallet: fmt.Sprintf("%s/v1/wallets/%s", url, model.WalletID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s, Errors: validationMessages(err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data   *Transaction `json:"data"`                                   // Data for the transaction
	Error  *string      `json:"error" example:"Amount cannot be zero"`  // The error, if any occurred for this transaction
	Errors []string     `json:"errors" example:"Amount cannot be zero"` // All violated rules, if the transaction is invalid
}

type TransactionQueryFilter struct {
	WalletID  string `form:"wallet"`                        // By wallet ID
	Category  string `form:"category"`                      // By exact category name
	FromDate  string `form:"fromDate" filterField:"false"`  // Transactions at and after this date
	UntilDate string `form:"untilDate" filterField:"false"` // Transactions before and at this date
	Offset    uint   `form:"offset" filterField:"false"`    // The offset of the first Transaction returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`     // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	walletID, err := uuid.Parse(f.WalletID)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		WalletID: walletID.UUID,
		Category: f.Category,
	}, nil
}

// day returns the start of the day of a date from the query string.
// day returns the start of the UTC day of the date. Transaction dates are
// stored in UTC, so filters need to compare against the same day.
func day(s string) (time.Time, error) {
	t, err := budget.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", err, s)
	}

	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

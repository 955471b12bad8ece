package v1

import (
	"fmt"
	"strings"

	"github.com/budget-wallets/backend/internal/budget"
	"github.com/budget-wallets/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type WalletEditable struct {
	Name       string            `json:"name" example:"Household"`                                                                      // Name of the wallet
	Balance    decimal.Decimal   `json:"balance" example:"2500.00" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Current balance of the wallet
	Currency   string            `json:"currency" example:"EUR"`                                                                        // ISO 4217 code of the currency
	Categories []budget.Category `json:"categories" binding:"dive"`                                                                     // Allocation plan for the balance. The percentages must sum up to 100.
}

// model returns the database resource for the editable fields
func (editable WalletEditable) model() models.Wallet {
	return models.Wallet{
		Name:       editable.Name,
		Balance:    editable.Balance,
		Currency:   editable.Currency,
		Categories: editable.Categories,
	}
}

// input returns the data for validation
func (editable WalletEditable) input() budget.WalletInput {
	return budget.WalletInput{
		Name:       editable.Name,
		Balance:    editable.Balance.InexactFloat64(),
		Currency:   editable.Currency,
		Categories: editable.Categories,
	}
}

type WalletCreate struct {
	WalletEditable
	PresetID string `json:"presetId" example:"preset-50-30-20"` // If set and no categories are given, the categories of this preset are used
}

type WalletBalanceEditable struct {
	Balance *decimal.Decimal `json:"balance" example:"1800.50"` // New balance of the wallet
}

type WalletLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/wallets/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The wallet itself
	Summary      string `json:"summary" example:"https://example.com/api/v1/wallets/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2/summary"`          // Allocation and spending summary for the wallet
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?wallet=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions of the wallet
}

// Wallet is the API v1 representation of a Wallet.
type Wallet struct {
	models.DefaultModel
	WalletEditable
	Links WalletLinks `json:"links"`
}

func newWallet(c *gin.Context, model models.Wallet) Wallet {
	url := c.GetString(string(models.DBContextURL))

	categories := model.Categories
	if categories == nil {
		categories = make([]budget.Category, 0)
	}

	return Wallet{
		DefaultModel: model.DefaultModel,
		WalletEditable: WalletEditable{
			Name:       model.Name,
			Balance:    model.Balance,
			Currency:   model.Currency,
			Categories: categories,
		},
		Links: WalletLinks{
			Self:         fmt.Sprintf("%s/v1/wallets/%s", url, model.ID),
			Summary:      fmt.Sprintf("%s/v1/wallets/%s/summary", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?wallet=%s", url, model.ID),
		},
	}
}

type WalletListResponse struct {
	Data       []Wallet    `json:"data"`                                                          // List of wallets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type WalletCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []WalletResponse `json:"data"`                                                          // List of created wallets
}

func (w *WalletCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	w.Data = append(w.Data, WalletResponse{Error: &s, Errors: validationMessages(err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type WalletResponse struct {
	Data   *Wallet  `json:"data"`                                                          // Data for the wallet
	Error  *string  `json:"error" example:"Wallet name is required, Currency is required"` // The error, if any occurred for this wallet
	Errors []string `json:"errors" example:"Wallet name is required,Currency is required"` // All violated rules, if the wallet is invalid
}

type WalletQueryFilter struct {
	Name     string `form:"name"`                       // By name
	Currency string `form:"currency"`                   // By currency
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Wallet returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Wallets to return. Defaults to 50.
}

func (f WalletQueryFilter) model() models.Wallet {
	return models.Wallet{
		Name:     strings.TrimSpace(f.Name),
		Currency: strings.ToUpper(strings.TrimSpace(f.Currency)),
	}
}

type CategoryAllocation struct {
	Category   string  `json:"category" example:"Groceries"` // Name of the category
	Percentage float64 `json:"percentage" example:"25"`      // Share of the balance in percent
	Amount     float64 `json:"amount" example:"625"`         // Part of the balance allocated to the category
}

type WalletSummary struct {
	CategoryTotal float64                  `json:"categoryTotal" example:"100"` // Sum of the percentages of all categories
	Allocations   []CategoryAllocation     `json:"allocations"`                 // Allocation of the balance per category
	Spending      []budget.CategorySummary `json:"spending"`                    // Sum and count of transactions per category
}

type WalletSummaryResponse struct {
	Data  *WalletSummary `json:"data"`                                                          // Summary for the wallet
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

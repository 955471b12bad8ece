package budget

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

const maxDescriptionLength = 500

// TransactionInput is the user supplied data for a new transaction.
type TransactionInput struct {
	Wallet      string // ID of the wallet
	Category    string
	Amount      float64 // Negative for expenses, positive for income
	Description string
	Date        string
}

// Transaction is a snapshot of a stored transaction, reduced to what the
// aggregations need.
type Transaction struct {
	Category string
	Amount   float64
}

// CategorySummary is the spending in a single category.
type CategorySummary struct {
	Category string  `json:"category" example:"Groceries"` // Name of the category as stored on the transactions
	Total    float64 `json:"total" example:"-25.5"`        // Sum of all transaction amounts
	Count    int     `json:"count" example:"2"`            // Number of transactions
}

// ValidateTransactionInput verifies the data for a new transaction.
//
// The wallet is used to check that the category exists. If it is nil, that
// check is skipped.
func ValidateTransactionInput(input TransactionInput, wallet *Wallet) Result {
	var errs []string

	if input.Wallet == "" {
		errs = append(errs, "Wallet ID is required")
	}

	if strings.TrimSpace(input.Category) == "" {
		errs = append(errs, "Category is required")
	}

	if input.Category != "" && wallet != nil {
		if _, ok := findCategory(wallet.Categories, input.Category); !ok {
			errs = append(errs, fmt.Sprintf("Category \"%s\" does not exist in this wallet", input.Category))
		}
	}

	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		errs = append(errs, "Amount must be a valid number")
	}

	if input.Amount == 0 {
		errs = append(errs, "Amount cannot be zero")
	}

	if input.Date == "" {
		errs = append(errs, "Date is required")
	} else if _, err := ParseDate(input.Date); err != nil {
		errs = append(errs, "Invalid date format")
	}

	if utf8.RuneCountInString(input.Description) > maxDescriptionLength {
		errs = append(errs, "Description must be 500 characters or less")
	}

	return newResult(errs)
}

// Summarize groups transactions by their exact category and sums up their
// amounts. Categories are returned in the order they first appear in.
func Summarize(transactions []Transaction) []CategorySummary {
	summaries := make([]CategorySummary, 0)
	index := make(map[string]int)

	for _, transaction := range transactions {
		i, ok := index[transaction.Category]
		if !ok {
			index[transaction.Category] = len(summaries)
			summaries = append(summaries, CategorySummary{
				Category: transaction.Category,
				Total:    transaction.Amount,
				Count:    1,
			})
			continue
		}

		summaries[i].Total += transaction.Amount
		summaries[i].Count++
	}

	return summaries
}

package budget

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxNameLength = 100

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// WalletInput is the user supplied data for a new wallet.
type WalletInput struct {
	Name       string
	Balance    float64
	Currency   string
	Categories []Category
}

// Wallet is a snapshot of a stored wallet.
type Wallet struct {
	ID         string
	Name       string
	Balance    float64
	Currency   string
	Categories []Category
}

// ValidateWalletInput verifies the data for a new wallet, including its
// allocation plan.
func ValidateWalletInput(input WalletInput) Result {
	var errs []string

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, "Wallet name is required")
	}

	if utf8.RuneCountInString(input.Name) > maxNameLength {
		errs = append(errs, "Wallet name must be 100 characters or less")
	}

	if math.IsNaN(input.Balance) || math.IsInf(input.Balance, 0) {
		errs = append(errs, "Balance must be a valid number")
	}

	if input.Balance < 0 {
		errs = append(errs, "Balance cannot be negative")
	}

	if strings.TrimSpace(input.Currency) == "" {
		errs = append(errs, "Currency is required")
	}

	if input.Currency != "" && !currencyPattern.MatchString(strings.ToUpper(input.Currency)) {
		errs = append(errs, "Currency must be a valid 3-letter code (e.g., USD, EUR)")
	}

	errs = append(errs, ValidateCategories(input.Categories).Errors...)

	return newResult(errs)
}

// CategoryAllocation returns the part of the wallet balance allocated to the
// category with the given name. The name is matched ignoring case.
//
// A wallet without such a category allocates nothing to it, which is not
// an error.
func CategoryAllocation(wallet Wallet, categoryName string) float64 {
	category, ok := findCategory(wallet.Categories, categoryName)
	if !ok {
		return 0
	}

	return wallet.Balance * category.Percentage / 100
}

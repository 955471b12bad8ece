// Package budget contains the rules for wallets, their category
// allocation plans and transactions.
//
// Everything in here works on plain values and has no side effects, callers
// fetch records from the database and persist them after validation.
package budget

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// percentageTolerance is the allowed absolute deviation of the sum of all
// category percentages from 100.
const percentageTolerance = 0.01

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Category is a named spending bucket with its share of the wallet balance.
type Category struct {
	Name       string  `json:"name" binding:"max=100" example:"Groceries"` // Name of the category, unique per wallet ignoring case
	Percentage float64 `json:"percentage" example:"25"`                    // Share of the wallet balance in percent
	Color      string  `json:"color" example:"#10B981"`                    // Display color in #RRGGBB format
}

// normalizedName is the name used for duplicate detection.
func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateCategories verifies that a set of categories can be used as an
// allocation plan.
//
// All violations are reported. An empty set is only reported as such since
// none of the other rules apply to it.
func ValidateCategories(categories []Category) Result {
	var errs []string

	if len(categories) == 0 {
		return newResult([]string{"At least one category is required"})
	}

	for _, category := range categories {
		if strings.TrimSpace(category.Name) == "" {
			errs = append(errs, "Category name cannot be empty")
		}

		if category.Percentage < 0 {
			errs = append(errs, fmt.Sprintf("Category \"%s\" has invalid percentage (must be >= 0)", category.Name))
		}

		if category.Percentage > 100 {
			errs = append(errs, fmt.Sprintf("Category \"%s\" has invalid percentage (must be <= 100)", category.Name))
		}

		if !colorPattern.MatchString(category.Color) {
			errs = append(errs, fmt.Sprintf("Category \"%s\" has invalid color format (use #RRGGBB)", category.Name))
		}
	}

	names := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		names[normalizedName(category.Name)] = struct{}{}
	}

	if len(names) != len(categories) {
		errs = append(errs, "Duplicate category names are not allowed")
	}

	total := CategoryTotal(categories)
	if math.Abs(total-100) > percentageTolerance {
		errs = append(errs, fmt.Sprintf("Categories must total 100%% (currently %.2f%%)", total))
	}

	return newResult(errs)
}

// CategoryTotal returns the sum of all category percentages.
func CategoryTotal(categories []Category) float64 {
	var total float64
	for _, category := range categories {
		total += category.Percentage
	}

	return total
}

// findCategory returns the category with the given name, ignoring case.
func findCategory(categories []Category, name string) (Category, bool) {
	for _, category := range categories {
		if strings.ToLower(category.Name) == strings.ToLower(name) {
			return category, true
		}
	}

	return Category{}, false
}

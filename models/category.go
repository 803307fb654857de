package models

import "strings"

// Categories is the exhaustive set of budget/transaction categories accepted
// by the application, in their canonical capitalized form. Client input is
// matched case-insensitively and normalized before persistence.
var Categories = []string{
	"Groceries",
	"Utilities",
	"Entertainment",
	"Rent",
	"Healthcare",
	"Electricity",
	"Education",
	"Subscriptions",
	"Other",
}

// NormalizeCategory matches value against the canonical category set,
// ignoring case and surrounding whitespace. It returns the canonical form
// and true on a match, or the trimmed input unchanged and false otherwise.
func NormalizeCategory(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	for _, category := range Categories {
		if strings.EqualFold(trimmed, category) {
			return category, true
		}
	}
	return trimmed, false
}

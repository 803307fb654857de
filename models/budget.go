package models

// Budget is a spending limit for a single category over a date range.
// It is always owned by exactly one user; ownership is a foreign key,
// set by the server from the authenticated identity.
type Budget struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Category string `json:"category"`

	// Amount is the budgeted sum. Must be strictly positive;
	// enforced at validation time, never at the database layer.
	Amount float64 `json:"amount"`

	// StartDate and EndDate bound the budget period, StartDate <= EndDate.
	StartDate Date `json:"start_date"`
	EndDate   Date `json:"end_date"`
}

// TableName returns the name of the database table
// associated with the Budget model.
func (b Budget) TableName() string {
	return "budgets"
}

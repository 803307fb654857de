package models

// Transaction is a single expense record of a user.
type Transaction struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`

	// Description is optional; nil means the column is NULL.
	Description *string `json:"description,omitempty"`

	Date Date `json:"date"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}

package models

// Income is a single earning record of a user.
type Income struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"user_id"`
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
	Date   Date    `json:"date"`
}

// TableName returns the name of the database table
// associated with the Income model.
func (i Income) TableName() string {
	return "income"
}

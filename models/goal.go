package models

// Goal is a savings target with a deadline and an optional running total.
type Goal struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	GoalDescription string  `json:"goal_description"`
	GoalAmount      float64 `json:"goal_amount"`
	Deadline        Date    `json:"deadline"`

	// Saving is the amount put aside so far; nil means the column is NULL.
	Saving *float64 `json:"saving,omitempty"`
}

// TableName returns the name of the database table
// associated with the Goal model.
func (g Goal) TableName() string {
	return "goals"
}

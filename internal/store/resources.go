package store

import (
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// Entity specs for the four bookkeeping tables. Column order here is the
// scan order used by [crudRepository], so each scanDest must line up with
// its columns slice exactly.

var budgetSpec = entitySpec[models.Budget]{
	table:      models.Budget{}.TableName(),
	columns:    []string{"id", "user_id", "category", "amount", "start_date", "end_date"},
	insertCols: []string{"user_id", "category", "amount", "start_date", "end_date"},
	updateCols: []string{"category", "amount", "start_date", "end_date"},
	insertVals: func(b *models.Budget) []any {
		return []any{b.UserID, b.Category, b.Amount, b.StartDate, b.EndDate}
	},
	updateVals: func(b *models.Budget) []any {
		return []any{b.Category, b.Amount, b.StartDate, b.EndDate}
	},
	scanDest: func(b *models.Budget) []any {
		return []any{&b.ID, &b.UserID, &b.Category, &b.Amount, &b.StartDate, &b.EndDate}
	},
}

var transactionSpec = entitySpec[models.Transaction]{
	table:      models.Transaction{}.TableName(),
	columns:    []string{"id", "user_id", "amount", "category", "description", "date"},
	insertCols: []string{"user_id", "amount", "category", "description", "date"},
	updateCols: []string{"amount", "category", "description", "date"},
	insertVals: func(t *models.Transaction) []any {
		return []any{t.UserID, t.Amount, t.Category, t.Description, t.Date}
	},
	updateVals: func(t *models.Transaction) []any {
		return []any{t.Amount, t.Category, t.Description, t.Date}
	},
	scanDest: func(t *models.Transaction) []any {
		return []any{&t.ID, &t.UserID, &t.Amount, &t.Category, &t.Description, &t.Date}
	},
}

var incomeSpec = entitySpec[models.Income]{
	table:      models.Income{}.TableName(),
	columns:    []string{"id", "user_id", "amount", "source", "date"},
	insertCols: []string{"user_id", "amount", "source", "date"},
	updateCols: []string{"amount", "source", "date"},
	insertVals: func(i *models.Income) []any {
		return []any{i.UserID, i.Amount, i.Source, i.Date}
	},
	updateVals: func(i *models.Income) []any {
		return []any{i.Amount, i.Source, i.Date}
	},
	scanDest: func(i *models.Income) []any {
		return []any{&i.ID, &i.UserID, &i.Amount, &i.Source, &i.Date}
	},
}

var goalSpec = entitySpec[models.Goal]{
	table:      models.Goal{}.TableName(),
	columns:    []string{"id", "user_id", "goal_description", "goal_amount", "deadline", "saving"},
	insertCols: []string{"user_id", "goal_description", "goal_amount", "deadline", "saving"},
	updateCols: []string{"goal_description", "goal_amount", "deadline", "saving"},
	insertVals: func(g *models.Goal) []any {
		return []any{g.UserID, g.GoalDescription, g.GoalAmount, g.Deadline, g.Saving}
	},
	updateVals: func(g *models.Goal) []any {
		return []any{g.GoalDescription, g.GoalAmount, g.Deadline, g.Saving}
	},
	scanDest: func(g *models.Goal) []any {
		return []any{&g.ID, &g.UserID, &g.GoalDescription, &g.GoalAmount, &g.Deadline, &g.Saving}
	},
}

// NewBudgetRepository constructs an owner-scoped repository over the budgets table.
func NewBudgetRepository(db *DB, logger *logger.Logger) ResourceRepository[models.Budget] {
	return newCrudRepository(db, budgetSpec, logger)
}

// NewTransactionRepository constructs an owner-scoped repository over the transactions table.
func NewTransactionRepository(db *DB, logger *logger.Logger) ResourceRepository[models.Transaction] {
	return newCrudRepository(db, transactionSpec, logger)
}

// NewIncomeRepository constructs an owner-scoped repository over the income table.
func NewIncomeRepository(db *DB, logger *logger.Logger) ResourceRepository[models.Income] {
	return newCrudRepository(db, incomeSpec, logger)
}

// NewGoalRepository constructs an owner-scoped repository over the goals table.
func NewGoalRepository(db *DB, logger *logger.Logger) ResourceRepository[models.Goal] {
	return newCrudRepository(db, goalSpec, logger)
}

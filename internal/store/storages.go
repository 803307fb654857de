package store

import (
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// Storages bundles every repository of the application behind one struct so
// the service layer can be wired from a single value.
type Storages struct {
	UserRepository        UserRepository
	BudgetRepository      ResourceRepository[models.Budget]
	TransactionRepository ResourceRepository[models.Transaction]
	IncomeRepository      ResourceRepository[models.Income]
	GoalRepository        ResourceRepository[models.Goal]
}

// NewStorages constructs all repositories over the given database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		BudgetRepository:      NewBudgetRepository(db, log),
		TransactionRepository: NewTransactionRepository(db, log),
		IncomeRepository:      NewIncomeRepository(db, log),
		GoalRepository:        NewGoalRepository(db, log),
	}
}

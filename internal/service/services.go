package service

import (
	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/models"
)

type Services struct {
	AuthService        AuthService
	BudgetService      RecordService[models.Budget]
	TransactionService RecordService[models.Transaction]
	IncomeService      RecordService[models.Income]
	GoalService        RecordService[models.Goal]
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), cfg.Auth, logger),
		BudgetService:      newRecordService(storages.BudgetRepository, prepareBudget, logger),
		TransactionService: newRecordService(storages.TransactionRepository, prepareTransaction, logger),
		IncomeService:      newRecordService(storages.IncomeRepository, prepareIncome, logger),
		GoalService:        newRecordService(storages.GoalRepository, prepareGoal, logger),
	}
}

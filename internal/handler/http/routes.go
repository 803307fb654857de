package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/user/register", h.register)
		r.Post("/user/login", h.login)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/user/{id}", h.updateUser)

		r.Route("/budget", func(r chi.Router) {
			r.Post("/", createRecord(h.services.BudgetService))
			r.Get("/", listRecords(h.services.BudgetService))
			r.Get("/{id}", getRecord(h.services.BudgetService))
			r.Put("/{id}", updateRecord(h.services.BudgetService))
			r.Delete("/{id}", deleteRecord(h.services.BudgetService))
		})

		r.Route("/transaction", func(r chi.Router) {
			r.Post("/", createRecord(h.services.TransactionService))
			r.Get("/", listRecords(h.services.TransactionService))
			r.Get("/{id}", getRecord(h.services.TransactionService))
			r.Put("/{id}", updateRecord(h.services.TransactionService))
			r.Delete("/{id}", deleteRecord(h.services.TransactionService))
		})

		r.Route("/income", func(r chi.Router) {
			r.Post("/", createRecord(h.services.IncomeService))
			r.Get("/", listRecords(h.services.IncomeService))
			r.Get("/{id}", getRecord(h.services.IncomeService))
			r.Put("/{id}", updateRecord(h.services.IncomeService))
			r.Delete("/{id}", deleteRecord(h.services.IncomeService))
		})

		r.Route("/goal", func(r chi.Router) {
			r.Post("/", createRecord(h.services.GoalService))
			r.Get("/", listRecords(h.services.GoalService))
			r.Get("/{id}", getRecord(h.services.GoalService))
			r.Put("/{id}", updateRecord(h.services.GoalService))
			r.Delete("/{id}", deleteRecord(h.services.GoalService))
		})
	})

	return router
}

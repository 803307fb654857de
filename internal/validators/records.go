// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-budget-keeper/models"
)

// Validation rule messages. Kept as constants so handlers and tests refer to
// one canonical wording per rule.
const (
	MsgUsernameTooShort    = "Username should be more than 2 characters"
	MsgInvalidEmail        = "Invalid email format"
	MsgPasswordTooShort    = "Password must be at least 6 characters long"
	MsgCategoryTooShort    = "Category should be more than 2 characters"
	MsgUnknownCategory     = "Category must be one of the known categories"
	MsgDescriptionTooShort = "Description should be more than 2 characters"
	MsgSourceTooShort      = "Source should be more than 2 characters"
	MsgAmountNotPositive   = "Amount must be positive"
	MsgDateOrderViolation  = "start_date must be before end_date"
	MsgDateRequired        = "Date is required"
	MsgSavingNegative      = "Saving must not be negative"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// RecordValidator implements [Validator] for every domain record type:
// User, Credentials, Budget, Transaction, Income, and Goal. Both value and
// pointer forms of each model are accepted.
type RecordValidator struct {
}

// NewRecordValidator constructs a new RecordValidator
// and returns it as the Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model. Every
// violated rule of the record is collected; callers receive the full list,
// not only the first failure.
func (v *RecordValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value)
	case *models.User:
		return v.validateUser(*value)

	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)

	case models.Budget:
		return v.validateBudget(value)
	case *models.Budget:
		return v.validateBudget(*value)

	case models.Transaction:
		return v.validateTransaction(value)
	case *models.Transaction:
		return v.validateTransaction(*value)

	case models.Income:
		return v.validateIncome(value)
	case *models.Income:
		return v.validateIncome(*value)

	case models.Goal:
		return v.validateGoal(value)
	case *models.Goal:
		return v.validateGoal(*value)

	default:
		return ErrUnsupportedType
	}
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validateUser checks an inbound register/update payload:
// username length, email format, and plaintext password length.
func (v *RecordValidator) validateUser(user models.User) error {
	var fieldErrors FieldErrors

	if len(strings.TrimSpace(user.Username)) < 3 {
		fieldErrors = fieldErrors.add("username", MsgUsernameTooShort)
	}
	if !isValidEmail(user.Email) {
		fieldErrors = fieldErrors.add("email", MsgInvalidEmail)
	}
	if len(user.Password) < 6 {
		fieldErrors = fieldErrors.add("password", MsgPasswordTooShort)
	}

	return fieldErrors.orNil()
}

// validateCredentials checks a login payload: email format and password length.
func (v *RecordValidator) validateCredentials(credentials models.Credentials) error {
	var fieldErrors FieldErrors

	if !isValidEmail(credentials.Email) {
		fieldErrors = fieldErrors.add("email", MsgInvalidEmail)
	}
	if len(credentials.Password) < 6 {
		fieldErrors = fieldErrors.add("password", MsgPasswordTooShort)
	}

	return fieldErrors.orNil()
}

// validateCategory checks length and membership in the fixed category set.
// Membership is matched case-insensitively; normalization to the canonical
// capitalized form happens at the service layer after validation passes.
func validateCategory(fieldErrors FieldErrors, category string) FieldErrors {
	if len(strings.TrimSpace(category)) < 3 {
		return fieldErrors.add("category", MsgCategoryTooShort)
	}
	if _, known := models.NormalizeCategory(category); !known {
		return fieldErrors.add("category", MsgUnknownCategory)
	}
	return fieldErrors
}

// validateBudget checks amount positivity, date-range ordering, and the
// category rules.
func (v *RecordValidator) validateBudget(budget models.Budget) error {
	var fieldErrors FieldErrors

	if budget.Amount <= 0 {
		fieldErrors = fieldErrors.add("amount", MsgAmountNotPositive)
	}

	switch {
	case budget.StartDate.IsZero() || budget.EndDate.IsZero():
		fieldErrors = fieldErrors.add("start_date", MsgDateRequired)
	case budget.StartDate.After(budget.EndDate):
		fieldErrors = fieldErrors.add("start_date", MsgDateOrderViolation)
	}

	fieldErrors = validateCategory(fieldErrors, budget.Category)

	return fieldErrors.orNil()
}

// validateTransaction checks amount positivity, the category rules, the
// optional description length, and date presence.
func (v *RecordValidator) validateTransaction(transaction models.Transaction) error {
	var fieldErrors FieldErrors

	if transaction.Amount <= 0 {
		fieldErrors = fieldErrors.add("amount", MsgAmountNotPositive)
	}

	fieldErrors = validateCategory(fieldErrors, transaction.Category)

	if transaction.Description != nil && len(strings.TrimSpace(*transaction.Description)) < 3 {
		fieldErrors = fieldErrors.add("description", MsgDescriptionTooShort)
	}

	if transaction.Date.IsZero() {
		fieldErrors = fieldErrors.add("date", MsgDateRequired)
	}

	return fieldErrors.orNil()
}

// validateIncome checks amount positivity, source length, and date presence.
func (v *RecordValidator) validateIncome(income models.Income) error {
	var fieldErrors FieldErrors

	if income.Amount <= 0 {
		fieldErrors = fieldErrors.add("amount", MsgAmountNotPositive)
	}
	if len(strings.TrimSpace(income.Source)) < 3 {
		fieldErrors = fieldErrors.add("source", MsgSourceTooShort)
	}
	if income.Date.IsZero() {
		fieldErrors = fieldErrors.add("date", MsgDateRequired)
	}

	return fieldErrors.orNil()
}

// validateGoal checks description length, goal amount positivity, deadline
// presence, and that the optional running total is not negative.
func (v *RecordValidator) validateGoal(goal models.Goal) error {
	var fieldErrors FieldErrors

	if len(strings.TrimSpace(goal.GoalDescription)) < 3 {
		fieldErrors = fieldErrors.add("goal_description", MsgDescriptionTooShort)
	}
	if goal.GoalAmount <= 0 {
		fieldErrors = fieldErrors.add("goal_amount", MsgAmountNotPositive)
	}
	if goal.Deadline.IsZero() {
		fieldErrors = fieldErrors.add("deadline", MsgDateRequired)
	}
	if goal.Saving != nil && *goal.Saving < 0 {
		fieldErrors = fieldErrors.add("saving", MsgSavingNegative)
	}

	return fieldErrors.orNil()
}

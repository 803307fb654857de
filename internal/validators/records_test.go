package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
func date(y int, m time.Month, d int) models.Date {
	return models.NewDate(y, m, d)
}

// requireFieldErrors asserts err is a FieldErrors listing exactly the given fields.
func requireFieldErrors(t *testing.T, err error, fields ...string) FieldErrors {
	t.Helper()
	require.Error(t, err)

	var fieldErrors FieldErrors
	require.ErrorAs(t, err, &fieldErrors)

	got := fieldErrors.Fields()
	require.Len(t, got, len(fields), "violated fields: %v", got)
	for _, f := range fields {
		assert.Contains(t, got, f)
	}
	return fieldErrors
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRecordValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidateUser(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		user := models.User{Username: "alice", Email: "a@x.com", Password: "secret1"}
		assert.NoError(t, v.Validate(ctx, user))
	})

	t.Run("pointer form accepted", func(t *testing.T) {
		user := models.User{Username: "alice", Email: "a@x.com", Password: "secret1"}
		assert.NoError(t, v.Validate(ctx, &user))
	})

	t.Run("all rules reported together", func(t *testing.T) {
		user := models.User{Username: "al", Email: "not-an-email", Password: "short"}
		requireFieldErrors(t, v.Validate(ctx, user), "username", "email", "password")
	})

	t.Run("short username", func(t *testing.T) {
		user := models.User{Username: "al", Email: "a@x.com", Password: "secret1"}
		fe := requireFieldErrors(t, v.Validate(ctx, user), "username")
		assert.Equal(t, MsgUsernameTooShort, fe.Fields()["username"])
	})
}

func TestValidateCredentials(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "a@x.com", Password: "secret1"}))

	requireFieldErrors(t, v.Validate(ctx, models.Credentials{Email: "nope", Password: "secret1"}), "email")
	requireFieldErrors(t, v.Validate(ctx, models.Credentials{Email: "a@x.com", Password: "12345"}), "password")
}

func TestValidateBudget(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	valid := models.Budget{
		Category:  "Groceries",
		Amount:    100,
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.January, 31),
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, valid))
	})

	t.Run("category matched case-insensitively", func(t *testing.T) {
		lower := valid
		lower.Category = "groceries"
		assert.NoError(t, v.Validate(ctx, lower))

		upper := valid
		upper.Category = "GROCERIES"
		assert.NoError(t, v.Validate(ctx, upper))
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		b := valid
		b.Amount = -5
		fe := requireFieldErrors(t, v.Validate(ctx, b), "amount")
		assert.Equal(t, MsgAmountNotPositive, fe.Fields()["amount"])
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		b := valid
		b.Amount = 0
		requireFieldErrors(t, v.Validate(ctx, b), "amount")
	})

	t.Run("start after end rejected", func(t *testing.T) {
		b := valid
		b.StartDate = date(2024, time.February, 1)
		b.EndDate = date(2024, time.January, 1)
		fe := requireFieldErrors(t, v.Validate(ctx, b), "start_date")
		assert.Equal(t, MsgDateOrderViolation, fe.Fields()["start_date"])
	})

	t.Run("start equal to end accepted", func(t *testing.T) {
		b := valid
		b.StartDate = date(2024, time.January, 1)
		b.EndDate = date(2024, time.January, 1)
		assert.NoError(t, v.Validate(ctx, b))
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		b := valid
		b.Category = "Yachts"
		fe := requireFieldErrors(t, v.Validate(ctx, b), "category")
		assert.Equal(t, MsgUnknownCategory, fe.Fields()["category"])
	})

	t.Run("short category rejected", func(t *testing.T) {
		b := valid
		b.Category = "ab"
		fe := requireFieldErrors(t, v.Validate(ctx, b), "category")
		assert.Equal(t, MsgCategoryTooShort, fe.Fields()["category"])
	})

	t.Run("missing dates rejected", func(t *testing.T) {
		b := valid
		b.StartDate = models.Date{}
		b.EndDate = models.Date{}
		requireFieldErrors(t, v.Validate(ctx, b), "start_date")
	})

	t.Run("all violations collected", func(t *testing.T) {
		b := models.Budget{
			Category:  "x",
			Amount:    -1,
			StartDate: date(2024, time.February, 1),
			EndDate:   date(2024, time.January, 1),
		}
		requireFieldErrors(t, v.Validate(ctx, b), "amount", "start_date", "category")
	})
}

func TestValidateTransaction(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	valid := models.Transaction{
		Amount:   25.50,
		Category: "Entertainment",
		Date:     date(2024, time.March, 15),
	}

	assert.NoError(t, v.Validate(ctx, valid))

	t.Run("optional description may be absent", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, valid))
	})

	t.Run("short description rejected", func(t *testing.T) {
		tx := valid
		tx.Description = strPtr("ab")
		requireFieldErrors(t, v.Validate(ctx, tx), "description")
	})

	t.Run("valid description accepted", func(t *testing.T) {
		tx := valid
		tx.Description = strPtr("cinema tickets")
		assert.NoError(t, v.Validate(ctx, tx))
	})

	t.Run("negative amount and unknown category", func(t *testing.T) {
		tx := valid
		tx.Amount = -1
		tx.Category = "Bribes"
		requireFieldErrors(t, v.Validate(ctx, tx), "amount", "category")
	})

	t.Run("missing date rejected", func(t *testing.T) {
		tx := valid
		tx.Date = models.Date{}
		requireFieldErrors(t, v.Validate(ctx, tx), "date")
	})
}

func TestValidateIncome(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	valid := models.Income{Amount: 3000, Source: "Salary", Date: date(2024, time.April, 1)}
	assert.NoError(t, v.Validate(ctx, valid))

	t.Run("zero amount rejected", func(t *testing.T) {
		in := valid
		in.Amount = 0
		requireFieldErrors(t, v.Validate(ctx, in), "amount")
	})

	t.Run("short source rejected", func(t *testing.T) {
		in := valid
		in.Source = "ab"
		requireFieldErrors(t, v.Validate(ctx, in), "source")
	})
}

func TestValidateGoal(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	valid := models.Goal{
		GoalDescription: "New laptop",
		GoalAmount:      1500,
		Deadline:        date(2025, time.June, 1),
	}
	assert.NoError(t, v.Validate(ctx, valid))

	t.Run("optional saving may be absent", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, valid))
	})

	t.Run("non-negative saving accepted", func(t *testing.T) {
		g := valid
		g.Saving = floatPtr(0)
		assert.NoError(t, v.Validate(ctx, g))
	})

	t.Run("negative saving rejected", func(t *testing.T) {
		g := valid
		g.Saving = floatPtr(-10)
		requireFieldErrors(t, v.Validate(ctx, g), "saving")
	})

	t.Run("non-positive goal amount rejected", func(t *testing.T) {
		g := valid
		g.GoalAmount = 0
		requireFieldErrors(t, v.Validate(ctx, g), "goal_amount")
	})
}

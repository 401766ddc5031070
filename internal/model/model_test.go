package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testDate() time.Time {
	return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Date:     testDate(),
		Kind:     KindExpense,
		Category: "Food",
		Amount:   1000,
	}

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr bool
	}{
		{name: "valid expense", mutate: func(*Transaction) {}, wantErr: false},
		{name: "valid income", mutate: func(txn *Transaction) {
			txn.Kind = KindIncome
			txn.Category = "Salary"
		}, wantErr: false},
		{name: "zero date", mutate: func(txn *Transaction) { txn.Date = time.Time{} }, wantErr: true},
		{name: "unknown kind", mutate: func(txn *Transaction) { txn.Kind = "transfer" }, wantErr: true},
		{name: "zero amount", mutate: func(txn *Transaction) { txn.Amount = 0 }, wantErr: true},
		{name: "negative amount", mutate: func(txn *Transaction) { txn.Amount = -1 }, wantErr: true},
		{name: "income category on expense", mutate: func(txn *Transaction) { txn.Category = "Salary" }, wantErr: true},
		{name: "expense category on income", mutate: func(txn *Transaction) {
			txn.Kind = KindIncome
			txn.Category = "Food"
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid
			tt.mutate(&txn)
			err := txn.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransaction)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(KindExpense, "Food"))
	assert.True(t, ValidCategory(KindIncome, "Salary"))
	// "Other" appears in both sets.
	assert.True(t, ValidCategory(KindExpense, "Other"))
	assert.True(t, ValidCategory(KindIncome, "Other"))

	assert.False(t, ValidCategory(KindExpense, "Salary"))
	assert.False(t, ValidCategory(KindIncome, "Food"))
	assert.False(t, ValidCategory(KindExpense, "food")) // case sensitive
}

func TestBudgetValidate(t *testing.T) {
	valid := Budget{Category: "Food", Limit: 100000, Period: PeriodMonthly}
	assert.NoError(t, valid.Validate())

	weekly := Budget{Category: "Transport", Limit: 5000, Period: PeriodWeekly}
	assert.NoError(t, weekly.Validate())

	bad := valid
	bad.Limit = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidBudget)

	bad = valid
	bad.Category = "Salary" // income source, not an expense category
	assert.ErrorIs(t, bad.Validate(), ErrInvalidBudget)

	bad = valid
	bad.Period = "quarterly"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidBudget)
}

func TestGoalValidate(t *testing.T) {
	valid := Goal{
		Name:     "Emergency Fund",
		Target:   100000,
		Current:  0,
		Deadline: testDate(),
		Created:  testDate(),
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Name = "   "
	assert.ErrorIs(t, bad.Validate(), ErrInvalidGoal)

	bad = valid
	bad.Target = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidGoal)

	bad = valid
	bad.Current = 100001
	assert.ErrorIs(t, bad.Validate(), ErrInvalidGoal)

	bad = valid
	bad.Deadline = time.Time{}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidGoal)
}

func TestGoalAddProgress(t *testing.T) {
	g := Goal{Name: "Trip", Target: 100, Current: 40}

	g.AddProgress(30)
	assert.Equal(t, int64(70), g.Current)
	assert.Equal(t, int64(30), g.Remaining())

	g.AddProgress(500)
	assert.Equal(t, int64(100), g.Current)
	assert.Zero(t, g.Remaining())
}

func TestGoalSameName(t *testing.T) {
	g := Goal{Name: "Emergency Fund"}
	assert.True(t, g.SameName("emergency fund"))
	assert.True(t, g.SameName("EMERGENCY FUND"))
	assert.False(t, g.SameName("emergency"))
}

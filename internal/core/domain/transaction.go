package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType marks money entering or leaving the organization.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Known reports whether t is a defined transaction type.
func (t TransactionType) Known() bool {
	return t == Income || t == Expense
}

// Transaction is a single financial record. Amount is cents-scaled: R$ 12,34
// is stored as 1234.
type Transaction struct {
	ID              int64
	Description     string
	Amount          decimal.Decimal
	TransactionType TransactionType
	Date            time.Time
	OrganizationID  int64
	GoalID          *int64 // nil when the transaction relates to no goal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TransactionDraft carries the caller-editable transaction fields.
type TransactionDraft struct {
	Description     string
	Amount          decimal.Decimal
	TransactionType TransactionType
	Date            time.Time
	GoalID          *int64
}

// RelatedToGoal reports whether the transaction is tied to a goal.
func (t Transaction) RelatedToGoal() bool {
	return t.GoalID != nil
}

// GoalRelationLabel is the listing annotation derived from the goal link.
func (t Transaction) GoalRelationLabel() string {
	if t.GoalID != nil {
		return fmt.Sprintf("related to goal %d", *t.GoalID)
	}
	return "not related to any goal"
}

// MonthlyFlow is one bar of the finance chart: income and expenses summed
// for a month, in currency units (cents divided out).
type MonthlyFlow struct {
	Month    string // e.g. "2025-04"
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

const monthKeyLayout = "2006-01"

// MonthlyTotals aggregates transactions into per-month income and expense
// figures for the last months ending at now. This feeds the chart only;
// headline totals always come from the server-computed dashboard summary.
func MonthlyTotals(transactions []Transaction, now time.Time, months int) []MonthlyFlow {
	cents := decimal.NewFromInt(100)
	flows := make([]MonthlyFlow, 0, months)
	index := make(map[string]int, months)
	for i := months - 1; i >= 0; i-- {
		m := now.AddDate(0, -i, 0)
		key := time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC).Format(monthKeyLayout)
		index[key] = len(flows)
		flows = append(flows, MonthlyFlow{Month: key, Income: decimal.Zero, Expenses: decimal.Zero})
	}
	for _, txn := range transactions {
		pos, ok := index[txn.Date.Format(monthKeyLayout)]
		if !ok {
			continue
		}
		amount := txn.Amount.Div(cents)
		if txn.TransactionType == Income {
			flows[pos].Income = flows[pos].Income.Add(amount)
		} else {
			flows[pos].Expenses = flows[pos].Expenses.Add(amount)
		}
	}
	return flows
}

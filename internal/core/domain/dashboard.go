package domain

import "github.com/shopspring/decimal"

// DashboardSummary is the server-computed aggregate of an organization's
// transactions. It is the source of truth for headline figures; nothing in
// this layer recomputes it for authoritative display.
type DashboardSummary struct {
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	TotalBalance      decimal.Decimal
	IsBalancePositive bool
}

// SummarizeTransactions folds a transaction list into aggregate figures.
// Display-only cross-check material; see CrossCheck.
func SummarizeTransactions(transactions []Transaction) DashboardSummary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, txn := range transactions {
		switch txn.TransactionType {
		case Income:
			income = income.Add(txn.Amount)
		case Expense:
			expenses = expenses.Add(txn.Amount)
		}
	}
	balance := income.Sub(expenses)
	return DashboardSummary{
		TotalIncome:       income,
		TotalExpenses:     expenses,
		TotalBalance:      balance,
		IsBalancePositive: balance.GreaterThanOrEqual(decimal.Zero),
	}
}

// CrossCheck reports whether a locally recomputed aggregate agrees with the
// server summary. A mismatch usually means the transaction list cache is
// stale relative to the dashboard (or vice versa) and a refetch is pending.
// Never use this to override the server figures.
func (s DashboardSummary) CrossCheck(transactions []Transaction) bool {
	local := SummarizeTransactions(transactions)
	return s.TotalIncome.Equal(local.TotalIncome) &&
		s.TotalExpenses.Equal(local.TotalExpenses) &&
		s.TotalBalance.Equal(local.TotalBalance)
}

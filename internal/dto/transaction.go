package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
)

// --- Transaction DTOs ---

// TransactionPayload defines the caller-editable transaction fields. The
// create endpoint expects it wrapped under a singular "transaction" key; the
// update patch sends the same fields flat.
type TransactionPayload struct {
	Description     string                 `json:"description" validate:"required"`
	Amount          decimal.Decimal        `json:"amount" validate:"required"`
	TransactionType domain.TransactionType `json:"transaction_type" validate:"required,oneof=income expense"`
	Date            string                 `json:"date" validate:"required,datetime=2006-01-02"`
	GoalID          *int64                 `json:"goal_id,omitempty"`
}

// TransactionEnvelope wraps a transaction payload for the create endpoint.
type TransactionEnvelope struct {
	Transaction TransactionPayload `json:"transaction"`
}

// ToDraft converts the validated payload into a domain draft.
func (p TransactionPayload) ToDraft() (domain.TransactionDraft, error) {
	date, err := ParseWireDate(p.Date)
	if err != nil {
		return domain.TransactionDraft{}, err
	}
	return domain.TransactionDraft{
		Description:     p.Description,
		Amount:          p.Amount,
		TransactionType: p.TransactionType,
		Date:            date,
		GoalID:          p.GoalID,
	}, nil
}

// FromTransactionDraft converts a domain draft into the wire payload.
func FromTransactionDraft(d domain.TransactionDraft) TransactionPayload {
	return TransactionPayload{
		Description:     d.Description,
		Amount:          d.Amount,
		TransactionType: d.TransactionType,
		Date:            d.Date.Format(DateLayout),
		GoalID:          d.GoalID,
	}
}

// TransactionResponse is the transaction resource as the API returns it.
// Amount arrives as a cents-scaled number.
type TransactionResponse struct {
	ID              int64                  `json:"id"`
	Description     string                 `json:"description"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transaction_type"`
	Date            string                 `json:"date"`
	OrganizationID  int64                  `json:"organization_id"`
	GoalID          *int64                 `json:"goal_id"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// ListTransactionsResponse is the listing body: the API wraps the collection
// under a "transactions" key.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToDomain converts the wire transaction into the domain model.
func (r TransactionResponse) ToDomain() domain.Transaction {
	date, _ := ParseWireDate(r.Date)
	return domain.Transaction{
		ID:              r.ID,
		Description:     r.Description,
		Amount:          r.Amount,
		TransactionType: r.TransactionType,
		Date:            date,
		OrganizationID:  r.OrganizationID,
		GoalID:          r.GoalID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ToDomainTransactions converts a transaction listing.
func ToDomainTransactions(rs []TransactionResponse) []domain.Transaction {
	txns := make([]domain.Transaction, len(rs))
	for i, r := range rs {
		txns[i] = r.ToDomain()
	}
	return txns
}

// DashboardSummaryResponse is the server-computed aggregate body.
type DashboardSummaryResponse struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	TotalBalance      decimal.Decimal `json:"total_balance"`
	IsBalancePositive bool            `json:"is_balance_positive"`
}

// ToDomain converts the wire summary into the domain model.
func (r DashboardSummaryResponse) ToDomain() domain.DashboardSummary {
	return domain.DashboardSummary{
		TotalIncome:       r.TotalIncome,
		TotalExpenses:     r.TotalExpenses,
		TotalBalance:      r.TotalBalance,
		IsBalancePositive: r.IsBalancePositive,
	}
}

package services

import (
	"context"
	"time"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/dto"
)

// TransactionSvcFacade is the ledger view-model: it lists transactions with
// their goal-relation annotation, serves the server-computed aggregate
// figures, and gates the three mutations behind the manage capability.
type TransactionSvcFacade interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	// Summary returns the authoritative aggregate figures for the session
	// organization. Always sourced from the dashboard endpoint, never
	// recomputed from the listing.
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
	// MonthlyTotals aggregates the listing by month for the chart.
	// Display-only; not a substitute for Summary.
	MonthlyTotals(ctx context.Context, now time.Time, months int) ([]domain.MonthlyFlow, error)
	CreateTransaction(ctx context.Context, payload dto.TransactionPayload) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID int64, payload dto.TransactionPayload) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

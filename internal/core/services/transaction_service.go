package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/orgtrack/orgtrack_client/internal/apperrors"
	"github.com/orgtrack/orgtrack_client/internal/cache"
	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/core/ports/gateways"
	portssvc "github.com/orgtrack/orgtrack_client/internal/core/ports/services"
	"github.com/orgtrack/orgtrack_client/internal/dto"
)

// transactionService implements the TransactionSvcFacade interface. Every
// transaction mutation affects the aggregate, so success always refreshes
// both the listing and the dashboard keys for the organization.
type transactionService struct {
	BaseService
	transactions gateways.TransactionGateway
	dashboard    gateways.DashboardGateway
	registry     *cache.Registry
}

// NewTransactionService creates a new transaction service with the provided dependencies
func NewTransactionService(
	transactions gateways.TransactionGateway,
	dashboard gateways.DashboardGateway,
	session portssvc.SessionSvcFacade,
	registry *cache.Registry,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:  BaseService{Session: session},
		transactions: transactions,
		dashboard:    dashboard,
		registry:     registry,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// ListTransactions retrieves the organization's transactions.
func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	info, err := s.RequireOrganization(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactions.ListTransactions(ctx, info.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions",
			slog.Int64("organization_id", info.OrganizationID))
		return nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

// Summary fetches the server-computed aggregate. These are the only figures
// fit for headline display.
func (s *transactionService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	info, err := s.RequireOrganization(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := s.dashboard.DashboardSummary(ctx, info.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch dashboard summary",
			slog.Int64("organization_id", info.OrganizationID))
		return nil, err
	}
	return summary, nil
}

// MonthlyTotals aggregates the listing by month for the finance chart.
func (s *transactionService) MonthlyTotals(ctx context.Context, now time.Time, months int) ([]domain.MonthlyFlow, error) {
	txns, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MonthlyTotals(txns, now, months), nil
}

// CreateTransaction records a new transaction. Manage capability required.
func (s *transactionService) CreateTransaction(ctx context.Context, payload dto.TransactionPayload) (*domain.Transaction, error) {
	info, err := s.RequireManage(ctx)
	if err != nil {
		return nil, err
	}
	draft, err := s.draftFromPayload(payload)
	if err != nil {
		return nil, err
	}

	created, err := s.transactions.CreateTransaction(ctx, info.OrganizationID, draft)
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction",
			slog.Int64("organization_id", info.OrganizationID))
		return nil, err
	}

	s.invalidateLedger(ctx, info.OrganizationID)
	s.LogInfo(ctx, "Transaction created",
		slog.Int64("transaction_id", created.ID),
		slog.String("transaction_type", string(created.TransactionType)))
	return created, nil
}

// UpdateTransaction edits an existing transaction. Manage capability required.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID int64, payload dto.TransactionPayload) (*domain.Transaction, error) {
	info, err := s.RequireManage(ctx)
	if err != nil {
		return nil, err
	}
	draft, err := s.draftFromPayload(payload)
	if err != nil {
		return nil, err
	}

	updated, err := s.transactions.UpdateTransaction(ctx, info.OrganizationID, transactionID, draft)
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.Int64("transaction_id", transactionID))
		return nil, err
	}

	s.invalidateLedger(ctx, info.OrganizationID)
	s.LogInfo(ctx, "Transaction updated", slog.Int64("transaction_id", transactionID))
	return updated, nil
}

// DeleteTransaction removes a transaction. Manage capability required.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	info, err := s.RequireManage(ctx)
	if err != nil {
		return err
	}

	if err := s.transactions.DeleteTransaction(ctx, info.OrganizationID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.Int64("transaction_id", transactionID))
		return err
	}

	s.invalidateLedger(ctx, info.OrganizationID)
	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", transactionID))
	return nil
}

// invalidateLedger refreshes the two reads every transaction mutation
// affects. Until the dashboard refetch resolves, the old aggregate may still
// be displayed; callers must not assume it updates synchronously.
func (s *transactionService) invalidateLedger(ctx context.Context, orgID int64) {
	s.registry.Invalidate(ctx, cache.TransactionsKey(orgID), cache.DashboardKey(orgID))
}

func (s *transactionService) draftFromPayload(payload dto.TransactionPayload) (domain.TransactionDraft, error) {
	if err := validate.Struct(payload); err != nil {
		return domain.TransactionDraft{}, apperrors.Validation("invalid transaction data", err)
	}
	draft, err := payload.ToDraft()
	if err != nil {
		return domain.TransactionDraft{}, apperrors.Validation("invalid transaction date", err)
	}
	return draft, nil
}

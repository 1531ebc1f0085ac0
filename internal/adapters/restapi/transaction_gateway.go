package restapi

import (
	"context"
	"fmt"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/core/ports/gateways"
	"github.com/orgtrack/orgtrack_client/internal/dto"
)

// TransactionGateway implements the transaction resource port, including the
// dashboard aggregate fetch.
type TransactionGateway struct {
	client *Client
}

// NewTransactionGateway builds the transaction gateway on the shared client.
func NewTransactionGateway(client *Client) *TransactionGateway {
	return &TransactionGateway{client: client}
}

var (
	_ gateways.TransactionGateway = (*TransactionGateway)(nil)
	_ gateways.DashboardGateway   = (*TransactionGateway)(nil)
)

func (g *TransactionGateway) ListTransactions(ctx context.Context, orgID int64) ([]domain.Transaction, error) {
	var body dto.ListTransactionsResponse
	if err := g.client.get(ctx, fmt.Sprintf("/organizations/%d/transactions", orgID), &body); err != nil {
		return nil, err
	}
	return dto.ToDomainTransactions(body.Transactions), nil
}

func (g *TransactionGateway) CreateTransaction(ctx context.Context, orgID int64, draft domain.TransactionDraft) (*domain.Transaction, error) {
	envelope := dto.TransactionEnvelope{Transaction: dto.FromTransactionDraft(draft)}
	var body dto.TransactionResponse
	if err := g.client.post(ctx, fmt.Sprintf("/organizations/%d/transactions", orgID), envelope, &body); err != nil {
		return nil, err
	}
	txn := body.ToDomain()
	return &txn, nil
}

// UpdateTransaction patches a transaction. Unlike create, the update
// endpoint takes the fields flat, without the "transaction" wrapper.
func (g *TransactionGateway) UpdateTransaction(ctx context.Context, orgID, transactionID int64, draft domain.TransactionDraft) (*domain.Transaction, error) {
	payload := dto.FromTransactionDraft(draft)
	var body dto.TransactionResponse
	if err := g.client.patch(ctx, fmt.Sprintf("/organizations/%d/transactions/%d", orgID, transactionID), payload, &body); err != nil {
		return nil, err
	}
	txn := body.ToDomain()
	return &txn, nil
}

func (g *TransactionGateway) DeleteTransaction(ctx context.Context, orgID, transactionID int64) error {
	return g.client.delete(ctx, fmt.Sprintf("/organizations/%d/transactions/%d", orgID, transactionID))
}

func (g *TransactionGateway) DashboardSummary(ctx context.Context, orgID int64) (*domain.DashboardSummary, error) {
	var body dto.DashboardSummaryResponse
	if err := g.client.get(ctx, fmt.Sprintf("/organizations/%d/dashboard", orgID), &body); err != nil {
		return nil, err
	}
	summary := body.ToDomain()
	return &summary, nil
}

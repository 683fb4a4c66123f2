package repository

import (
	"context"
	"fmt"

	"github.com/huntersguild/trading-post-api/internal/domain"
	"github.com/huntersguild/trading-post-api/internal/repository/dao"
)

type TransactionDAO interface {
	Insert(ctx context.Context, transaction dao.Transaction) (dao.Transaction, error)
	FindAll(ctx context.Context) ([]dao.Transaction, error)
}

// TransactionRepository archives recorded transactions. Write-through
// audit only: the ledger's in-memory log stays authoritative.
type TransactionRepository struct {
	dao TransactionDAO
}

func NewTransactionRepository(dao TransactionDAO) *TransactionRepository {
	return &TransactionRepository{
		dao: dao,
	}
}

func (r *TransactionRepository) Archive(ctx context.Context, transaction domain.Transaction) error {
	itemIDs := make([]string, 0, len(transaction.Items))
	for _, item := range transaction.Items {
		itemIDs = append(itemIDs, item.ID)
	}

	_, err := r.dao.Insert(ctx, dao.Transaction{
		ID:               transaction.ID,
		Kind:             string(transaction.Kind),
		Date:             transaction.Date,
		CounterpartyKind: string(transaction.Counterparty.Kind),
		CounterpartyID:   transaction.Counterparty.ID(),
		ItemIDs:          itemIDs,
		Reason:           transaction.Reason,
		TotalCrowns:      transaction.TotalCrowns,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return nil
}

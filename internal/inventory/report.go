package inventory

import (
	"context"
	"fmt"

	"github.com/huntersguild/trading-post-api/internal/domain"
)

// Reporting queries are pure derivations over the transaction log (plus
// the item registry for the most-sold ranking); they never mutate state.

// EarnedCrownsBySales sums the totals of all sale transactions.
func (e *Engine) EarnedCrownsBySales() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return sumTotals(e.log.ByKind(domain.TransactionSale))
}

// SpentCrownsByPurchases sums the totals of all purchase transactions.
func (e *Engine) SpentCrownsByPurchases() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return sumTotals(e.log.ByKind(domain.TransactionPurchase))
}

// ReturnedCrowns sums the totals of all return transactions, hunter and
// merchant returns alike, with no sign inversion.
func (e *Engine) ReturnedCrowns() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return sumTotals(e.log.ByKind(domain.TransactionReturn))
}

// NetCrowns is sales minus purchases plus returns. Note that merchant returns
// (stock leaving the post) still add to the net rather than subtract;
// that is the ledger's historical convention and callers rely on it.
func (e *Engine) NetCrowns() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	sales := sumTotals(e.log.ByKind(domain.TransactionSale))
	purchases := sumTotals(e.log.ByKind(domain.TransactionPurchase))
	returns := sumTotals(e.log.ByKind(domain.TransactionReturn))

	return sales - purchases + returns
}

// MostSoldItem returns the registry item referenced by the strictly
// greatest number of transactions. Ties keep the first item in registry
// order. ok is false when the registry is empty.
func (e *Engine) MostSoldItem(ctx context.Context) (item domain.Item, ok bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	items, err := e.items.ListAll(ctx)
	if err != nil {
		return domain.Item{}, false, fmt.Errorf("e.items.ListAll -> %w", err)
	}
	if len(items) == 0 {
		return domain.Item{}, false, nil
	}

	mostSold := items[0]
	mostSoldTimes := 0
	for _, candidate := range items {
		times := len(e.log.ByItem(candidate))
		if times > mostSoldTimes {
			mostSold = candidate
			mostSoldTimes = times
		}
	}

	return mostSold, true, nil
}

func sumTotals(transactions []domain.Transaction) int {
	total := 0
	for _, t := range transactions {
		total += t.TotalCrowns
	}

	return total
}

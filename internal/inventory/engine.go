package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/huntersguild/trading-post-api/internal/domain"
)

// Engine owns the stock ledger and the transaction log and is the only
// writer to both. Every mutating operation validates all preconditions
// against the registries and the ledger before touching anything: a failed
// operation leaves ledger and log exactly as they were.
//
// One mutex guards ledger and log together so that the
// validate → total → append → mutate sequence of each operation runs as a
// single unit when callers arrive concurrently (e.g. behind the HTTP
// layer). Registries are read-only here and keep their own policy.
type Engine struct {
	mu        sync.Mutex
	stock     *StockLedger
	log       *TransactionLog
	hunters   HunterRegistry
	merchants MerchantRegistry
	items     ItemRegistry
}

func NewEngine(hunters HunterRegistry, merchants MerchantRegistry, items ItemRegistry) *Engine {
	return &Engine{
		stock:     NewStockLedger(),
		log:       NewTransactionLog(),
		hunters:   hunters,
		merchants: merchants,
		items:     items,
	}
}

// itemGroup aggregates the occurrences of one distinct item in an input
// list, preserving first-occurrence order.
type itemGroup struct {
	item  domain.Item
	count int
}

func groupByID(items []domain.Item) []itemGroup {
	groups := make([]itemGroup, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		if i, ok := index[item.ID]; ok {
			groups[i].count++
			continue
		}
		index[item.ID] = len(groups)
		groups = append(groups, itemGroup{item: item, count: 1})
	}

	return groups
}

// totalCrowns sums unit prices once per occurrence in the original list.
// Duplicates contribute their price each time.
func totalCrowns(items []domain.Item) int {
	total := 0
	for _, item := range items {
		total += item.Price
	}

	return total
}

// AddItemToStock adds quantity units of the item to the ledger.
func (e *Engine) AddItemToStock(item domain.Item, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stock.Add(item, quantity)
}

// RemoveItemFromStock removes quantity units of the item from the ledger.
func (e *Engine) RemoveItemFromStock(item domain.Item, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stock.Remove(item, quantity)
}

// StockLevel returns the on-hand quantity for the item.
func (e *Engine) StockLevel(item domain.Item) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stock.Level(item)
}

// StockRecords returns a snapshot of all stock records.
func (e *Engine) StockRecords() []StockRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stock.Records()
}

// RecordSale validates and records a sale to a hunter. Quantities are
// aggregated per distinct item for the stock precondition and the stock
// decrement; the total still counts every occurrence.
func (e *Engine) RecordSale(ctx context.Context, hunter domain.Hunter, items []domain.Item) (domain.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ok, err := e.hunters.Exists(ctx, hunter.ID)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("e.hunters.Exists -> %w", err)
	}
	if !ok {
		return domain.Transaction{}, fmt.Errorf("%w: hunter %v", ErrUnknownParty, hunter.ID)
	}

	groups := groupByID(items)
	for _, g := range groups {
		known, err := e.items.Exists(ctx, g.item.ID)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("e.items.Exists -> %w", err)
		}
		if !known {
			return domain.Transaction{}, fmt.Errorf("%w: item %v", ErrUnknownItem, g.item.ID)
		}
		if e.stock.Level(g.item) < g.count {
			return domain.Transaction{}, fmt.Errorf("%w: item %v", ErrInsufficientStock, g.item.ID)
		}
	}

	transaction := domain.Transaction{
		ID:           uuid.NewString(),
		Kind:         domain.TransactionSale,
		Date:         time.Now(),
		Items:        items,
		Counterparty: domain.HunterParty(hunter),
		TotalCrowns:  totalCrowns(items),
	}
	e.log.Append(transaction)

	// Cannot fail: levels were checked above under the same lock.
	for _, g := range groups {
		if err := e.stock.Remove(g.item, g.count); err != nil {
			return domain.Transaction{}, fmt.Errorf("e.stock.Remove -> %w", err)
		}
	}

	return transaction, nil
}

// RecordPurchase validates and records a purchase from a merchant. Each
// list entry adds exactly one unit of stock; unlike sales, occurrences are
// not aggregated into a single adjustment.
func (e *Engine) RecordPurchase(ctx context.Context, merchant domain.Merchant, items []domain.Item) (domain.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ok, err := e.merchants.Exists(ctx, merchant.ID)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("e.merchants.Exists -> %w", err)
	}
	if !ok {
		return domain.Transaction{}, fmt.Errorf("%w: merchant %v", ErrUnknownParty, merchant.ID)
	}

	for _, item := range items {
		known, err := e.items.Exists(ctx, item.ID)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("e.items.Exists -> %w", err)
		}
		if !known {
			return domain.Transaction{}, fmt.Errorf("%w: item %v", ErrUnknownItem, item.ID)
		}
	}

	transaction := domain.Transaction{
		ID:           uuid.NewString(),
		Kind:         domain.TransactionPurchase,
		Date:         time.Now(),
		Items:        items,
		Counterparty: domain.MerchantParty(merchant),
		TotalCrowns:  totalCrowns(items),
	}
	e.log.Append(transaction)

	for _, item := range items {
		if err := e.stock.Add(item, 1); err != nil {
			return domain.Transaction{}, fmt.Errorf("e.stock.Add -> %w", err)
		}
	}

	return transaction, nil
}

// RecordReturn validates and records a return from either party. A hunter
// return puts one unit per occurrence back into stock. A merchant return
// hands one unit per occurrence back to the merchant, so it requires every
// occurrence to be coverable before any stock moves.
func (e *Engine) RecordReturn(ctx context.Context, party domain.Counterparty, items []domain.Item, reason string) (domain.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch party.Kind {
	case domain.CounterpartyHunter:
		ok, err := e.hunters.Exists(ctx, party.Hunter.ID)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("e.hunters.Exists -> %w", err)
		}
		if !ok {
			return domain.Transaction{}, fmt.Errorf("%w: hunter %v", ErrUnknownParty, party.Hunter.ID)
		}

	case domain.CounterpartyMerchant:
		ok, err := e.merchants.Exists(ctx, party.Merchant.ID)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("e.merchants.Exists -> %w", err)
		}
		if !ok {
			return domain.Transaction{}, fmt.Errorf("%w: merchant %v", ErrUnknownParty, party.Merchant.ID)
		}

		for _, g := range groupByID(items) {
			known, err := e.items.Exists(ctx, g.item.ID)
			if err != nil {
				return domain.Transaction{}, fmt.Errorf("e.items.Exists -> %w", err)
			}
			if !known {
				return domain.Transaction{}, fmt.Errorf("%w: item %v", ErrUnknownItem, g.item.ID)
			}
			if e.stock.Level(g.item) < g.count {
				return domain.Transaction{}, fmt.Errorf("%w: item %v", ErrInsufficientStock, g.item.ID)
			}
		}

	default:
		return domain.Transaction{}, fmt.Errorf("%w: counterparty kind %q", ErrUnknownParty, party.Kind)
	}

	transaction := domain.Transaction{
		ID:           uuid.NewString(),
		Kind:         domain.TransactionReturn,
		Date:         time.Now(),
		Items:        items,
		Counterparty: party,
		Reason:       reason,
		TotalCrowns:  totalCrowns(items),
	}
	e.log.Append(transaction)

	for _, item := range items {
		var err error
		if party.Kind == domain.CounterpartyHunter {
			err = e.stock.Add(item, 1)
		} else {
			err = e.stock.Remove(item, 1)
		}
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("restock -> %w", err)
		}
	}

	return transaction, nil
}

// Transactions returns the full log in insertion order.
func (e *Engine) Transactions() []domain.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.log.All()
}

// Sales returns all sale transactions.
func (e *Engine) Sales() []domain.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.log.ByKind(domain.TransactionSale)
}

// Purchases returns all purchase transactions.
func (e *Engine) Purchases() []domain.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.log.ByKind(domain.TransactionPurchase)
}

// Returns returns all return transactions.
func (e *Engine) Returns() []domain.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.log.ByKind(domain.TransactionReturn)
}

// ClientReturns returns the return transactions made by hunters.
func (e *Engine) ClientReturns() []domain.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.log.ClientReturns()
}

// MerchantReturns returns the return transactions made by merchants.
func (e *Engine) MerchantReturns() []domain.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.log.MerchantReturns()
}

// TransactionsByItem returns the transactions referencing the item.
func (e *Engine) TransactionsByItem(item domain.Item) []domain.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.log.ByItem(item)
}

// TransactionsByDate returns the transactions recorded on the same
// calendar day as date.
func (e *Engine) TransactionsByDate(date time.Time) []domain.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.log.ByDate(date)
}

// TransactionsByDateRange returns the transactions with
// start <= date <= end.
func (e *Engine) TransactionsByDateRange(start, end time.Time) []domain.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.log.ByDateRange(start, end)
}

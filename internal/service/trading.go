package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/huntersguild/trading-post-api/internal/domain"
	"github.com/huntersguild/trading-post-api/internal/inventory"
	"github.com/huntersguild/trading-post-api/internal/repository"
)

var (
	ErrUnknownParty      = inventory.ErrUnknownParty
	ErrUnknownItem       = inventory.ErrUnknownItem
	ErrInsufficientStock = inventory.ErrInsufficientStock
	ErrInvalidQuantity   = inventory.ErrInvalidQuantity
)

type TransactionArchive interface {
	Archive(ctx context.Context, transaction domain.Transaction) error
}

type TradingHunterRepository interface {
	FindByID(ctx context.Context, id string) (domain.Hunter, error)
}

type TradingMerchantRepository interface {
	FindByID(ctx context.Context, id string) (domain.Merchant, error)
}

type TradingItemRepository interface {
	FindByID(ctx context.Context, id string) (domain.Item, error)
}

// TradingService resolves identifiers into domain records, drives the
// inventory engine with them and archives what the engine records. All
// ledger rules live in the engine; this layer only translates.
type TradingService struct {
	engine    *inventory.Engine
	hunters   TradingHunterRepository
	merchants TradingMerchantRepository
	items     TradingItemRepository
	archive   TransactionArchive
}

func NewTradingService(
	engine *inventory.Engine,
	hunters TradingHunterRepository,
	merchants TradingMerchantRepository,
	items TradingItemRepository,
	archive TransactionArchive,
) *TradingService {
	return &TradingService{
		engine:    engine,
		hunters:   hunters,
		merchants: merchants,
		items:     items,
		archive:   archive,
	}
}

// EconomicReport aggregates the crown totals derived from the ledger.
type EconomicReport struct {
	EarnedBySales    int `json:"earned_by_sales"`
	SpentOnPurchases int `json:"spent_on_purchases"`
	ReturnedCrowns   int `json:"returned_crowns"`
	NetCrowns        int `json:"net_crowns"`
}

// TransactionFilter narrows ListTransactions. Zero values mean "no
// filter". Day filters by calendar-day equality; From/To are inclusive.
type TransactionFilter struct {
	Kind   domain.TransactionKind
	ItemID string
	Day    *time.Time
	From   *time.Time
	To     *time.Time
}

func (s *TradingService) resolveHunter(ctx context.Context, id string) (domain.Hunter, error) {
	hunter, err := s.hunters.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHunterNotFound) {
			return domain.Hunter{}, fmt.Errorf("%w: hunter %v", ErrUnknownParty, id)
		}

		return domain.Hunter{}, fmt.Errorf("s.hunters.FindByID -> %w", err)
	}

	return hunter, nil
}

func (s *TradingService) resolveMerchant(ctx context.Context, id string) (domain.Merchant, error) {
	merchant, err := s.merchants.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return domain.Merchant{}, fmt.Errorf("%w: merchant %v", ErrUnknownParty, id)
		}

		return domain.Merchant{}, fmt.Errorf("s.merchants.FindByID -> %w", err)
	}

	return merchant, nil
}

func (s *TradingService) resolveItems(ctx context.Context, ids []string) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(ids))
	resolved := make(map[string]domain.Item, len(ids))

	for _, id := range ids {
		if item, ok := resolved[id]; ok {
			items = append(items, item)
			continue
		}

		item, err := s.items.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return nil, fmt.Errorf("%w: item %v", ErrUnknownItem, id)
			}

			return nil, fmt.Errorf("s.items.FindByID -> %w", err)
		}

		resolved[id] = item
		items = append(items, item)
	}

	return items, nil
}

// AddStock adds quantity units of the item and returns the new level.
func (s *TradingService) AddStock(ctx context.Context, itemID string, quantity int) (int, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return 0, fmt.Errorf("%w: item %v", ErrUnknownItem, itemID)
		}

		return 0, fmt.Errorf("s.items.FindByID -> %w", err)
	}

	if err = s.engine.AddItemToStock(item, quantity); err != nil {
		return 0, fmt.Errorf("s.engine.AddItemToStock -> %w", err)
	}

	return s.engine.StockLevel(item), nil
}

// RemoveStock removes quantity units of the item and returns the new level.
func (s *TradingService) RemoveStock(ctx context.Context, itemID string, quantity int) (int, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return 0, fmt.Errorf("%w: item %v", ErrUnknownItem, itemID)
		}

		return 0, fmt.Errorf("s.items.FindByID -> %w", err)
	}

	if err = s.engine.RemoveItemFromStock(item, quantity); err != nil {
		return 0, fmt.Errorf("s.engine.RemoveItemFromStock -> %w", err)
	}

	return s.engine.StockLevel(item), nil
}

// StockLevel returns the current level of the item, zero when unstocked.
func (s *TradingService) StockLevel(ctx context.Context, itemID string) (int, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return 0, fmt.Errorf("%w: item %v", ErrUnknownItem, itemID)
		}

		return 0, fmt.Errorf("s.items.FindByID -> %w", err)
	}

	return s.engine.StockLevel(item), nil
}

// ListStock returns every stock record.
func (s *TradingService) ListStock() []inventory.StockRecord {
	return s.engine.StockRecords()
}

// RecordSale resolves the hunter and items and records a sale.
func (s *TradingService) RecordSale(ctx context.Context, hunterID string, itemIDs []string) (domain.Transaction, error) {
	hunter, err := s.resolveHunter(ctx, hunterID)
	if err != nil {
		return domain.Transaction{}, err
	}

	items, err := s.resolveItems(ctx, itemIDs)
	if err != nil {
		return domain.Transaction{}, err
	}

	transaction, err := s.engine.RecordSale(ctx, hunter, items)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.engine.RecordSale -> %w", err)
	}

	s.archiveTransaction(ctx, transaction)

	return transaction, nil
}

// RecordPurchase resolves the merchant and items and records a purchase.
func (s *TradingService) RecordPurchase(ctx context.Context, merchantID string, itemIDs []string) (domain.Transaction, error) {
	merchant, err := s.resolveMerchant(ctx, merchantID)
	if err != nil {
		return domain.Transaction{}, err
	}

	items, err := s.resolveItems(ctx, itemIDs)
	if err != nil {
		return domain.Transaction{}, err
	}

	transaction, err := s.engine.RecordPurchase(ctx, merchant, items)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.engine.RecordPurchase -> %w", err)
	}

	s.archiveTransaction(ctx, transaction)

	return transaction, nil
}

// RecordReturn resolves the returning party (hunter or merchant) and the
// items and records a return.
func (s *TradingService) RecordReturn(ctx context.Context, partyKind domain.CounterpartyKind, partyID string, itemIDs []string, reason string) (domain.Transaction, error) {
	var party domain.Counterparty

	switch partyKind {
	case domain.CounterpartyHunter:
		hunter, err := s.resolveHunter(ctx, partyID)
		if err != nil {
			return domain.Transaction{}, err
		}
		party = domain.HunterParty(hunter)

	case domain.CounterpartyMerchant:
		merchant, err := s.resolveMerchant(ctx, partyID)
		if err != nil {
			return domain.Transaction{}, err
		}
		party = domain.MerchantParty(merchant)

	default:
		return domain.Transaction{}, fmt.Errorf("%w: counterparty kind %q", ErrUnknownParty, partyKind)
	}

	items, err := s.resolveItems(ctx, itemIDs)
	if err != nil {
		return domain.Transaction{}, err
	}

	transaction, err := s.engine.RecordReturn(ctx, party, items, reason)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.engine.RecordReturn -> %w", err)
	}

	s.archiveTransaction(ctx, transaction)

	return transaction, nil
}

// archiveTransaction writes the audit row. The ledger has already
// committed, so a failed archive is logged rather than surfaced.
func (s *TradingService) archiveTransaction(ctx context.Context, transaction domain.Transaction) {
	if err := s.archive.Archive(ctx, transaction); err != nil {
		zap.L().Warn("failed to archive transaction",
			zap.String("transaction_id", transaction.ID),
			zap.Error(err),
		)
	}
}

// ListTransactions applies the filter fields in order: kind, item, day,
// date range.
func (s *TradingService) ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error) {
	transactions := s.engine.Transactions()

	if filter.Kind != "" {
		transactions = filterByKind(transactions, filter.Kind)
	}

	if filter.ItemID != "" {
		item, err := s.items.FindByID(ctx, filter.ItemID)
		if err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return nil, fmt.Errorf("%w: item %v", ErrUnknownItem, filter.ItemID)
			}

			return nil, fmt.Errorf("s.items.FindByID -> %w", err)
		}

		transactions = intersect(transactions, s.engine.TransactionsByItem(item))
	}

	if filter.Day != nil {
		transactions = intersect(transactions, s.engine.TransactionsByDate(*filter.Day))
	}

	if filter.From != nil && filter.To != nil {
		transactions = intersect(transactions, s.engine.TransactionsByDateRange(*filter.From, *filter.To))
	}

	return transactions, nil
}

// Report derives the economic report from the ledger.
func (s *TradingService) Report() EconomicReport {
	return EconomicReport{
		EarnedBySales:    s.engine.EarnedCrownsBySales(),
		SpentOnPurchases: s.engine.SpentCrownsByPurchases(),
		ReturnedCrowns:   s.engine.ReturnedCrowns(),
		NetCrowns:        s.engine.NetCrowns(),
	}
}

// MostSoldItem returns the most transacted item; ok is false when no items
// are registered.
func (s *TradingService) MostSoldItem(ctx context.Context) (domain.Item, bool, error) {
	item, ok, err := s.engine.MostSoldItem(ctx)
	if err != nil {
		return domain.Item{}, false, fmt.Errorf("s.engine.MostSoldItem -> %w", err)
	}

	return item, ok, nil
}

func filterByKind(transactions []domain.Transaction, kind domain.TransactionKind) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Kind == kind {
			out = append(out, t)
		}
	}

	return out
}

func intersect(a, b []domain.Transaction) []domain.Transaction {
	ids := make(map[string]struct{}, len(b))
	for _, t := range b {
		ids[t.ID] = struct{}{}
	}

	out := make([]domain.Transaction, 0, len(a))
	for _, t := range a {
		if _, ok := ids[t.ID]; ok {
			out = append(out, t)
		}
	}

	return out
}

package inventory

import (
	"fmt"
	"sort"

	"github.com/huntersguild/trading-post-api/internal/domain"
)

// StockRecord pairs an item with its on-hand quantity.
type StockRecord struct {
	Item     domain.Item `json:"item"`
	Quantity int         `json:"quantity"`
}

// StockLedger tracks on-hand quantity per item id. A record exists if and
// only if its quantity is positive: depleting a record to zero deletes it.
// The ledger does no I/O and no validation beyond its own invariants; it
// is not safe for concurrent use on its own (the engine serializes access).
type StockLedger struct {
	records map[string]*StockRecord
}

func NewStockLedger() *StockLedger {
	return &StockLedger{
		records: make(map[string]*StockRecord),
	}
}

// Add increments the item's stock, creating the record on first add.
func (l *StockLedger) Add(item domain.Item, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %v for item %v", ErrInvalidQuantity, quantity, item.ID)
	}

	if record, ok := l.records[item.ID]; ok {
		record.Quantity += quantity
		return nil
	}

	l.records[item.ID] = &StockRecord{Item: item, Quantity: quantity}

	return nil
}

// Remove decrements the item's stock, deleting the record on exact
// depletion to zero.
func (l *StockLedger) Remove(item domain.Item, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %v for item %v", ErrInvalidQuantity, quantity, item.ID)
	}

	record, ok := l.records[item.ID]
	if !ok || record.Quantity < quantity {
		return fmt.Errorf("%w: item %v", ErrInsufficientStock, item.ID)
	}

	record.Quantity -= quantity
	if record.Quantity == 0 {
		delete(l.records, item.ID)
	}

	return nil
}

// Level returns the on-hand quantity for the item, zero for absent records.
func (l *StockLedger) Level(item domain.Item) int {
	if record, ok := l.records[item.ID]; ok {
		return record.Quantity
	}

	return 0
}

// Records returns a snapshot of every stock record, ordered by item id.
func (l *StockLedger) Records() []StockRecord {
	records := make([]StockRecord, 0, len(l.records))
	for _, record := range l.records {
		records = append(records, *record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Item.ID < records[j].Item.ID
	})

	return records
}

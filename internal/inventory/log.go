package inventory

import (
	"time"

	"github.com/huntersguild/trading-post-api/internal/domain"
)

// TransactionLog is the append-only history of recorded transactions, in
// recording order. It trusts what it is given: validation is the engine's
// job. Entries are never edited or removed.
type TransactionLog struct {
	transactions []domain.Transaction
}

func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Append stores the transaction at the end of the log.
func (l *TransactionLog) Append(t domain.Transaction) {
	l.transactions = append(l.transactions, t)
}

// All returns every transaction in insertion order.
func (l *TransactionLog) All() []domain.Transaction {
	out := make([]domain.Transaction, len(l.transactions))
	copy(out, l.transactions)

	return out
}

func (l *TransactionLog) Len() int {
	return len(l.transactions)
}

// ByKind returns the transactions of one kind, in insertion order.
func (l *TransactionLog) ByKind(kind domain.TransactionKind) []domain.Transaction {
	return l.filter(func(t domain.Transaction) bool {
		return t.Kind == kind
	})
}

// ByItem returns the transactions whose item list references the item.
func (l *TransactionLog) ByItem(item domain.Item) []domain.Transaction {
	return l.filter(func(t domain.Transaction) bool {
		return t.References(item.ID)
	})
}

// ByDate returns the transactions recorded on the same calendar day as
// date, in the date's location.
func (l *TransactionLog) ByDate(date time.Time) []domain.Transaction {
	year, month, day := date.Date()

	return l.filter(func(t domain.Transaction) bool {
		ty, tm, td := t.Date.In(date.Location()).Date()
		return ty == year && tm == month && td == day
	})
}

// ByDateRange returns the transactions with start <= date <= end.
func (l *TransactionLog) ByDateRange(start, end time.Time) []domain.Transaction {
	return l.filter(func(t domain.Transaction) bool {
		return !t.Date.Before(start) && !t.Date.After(end)
	})
}

// ClientReturns returns the return transactions whose counterparty is a
// hunter.
func (l *TransactionLog) ClientReturns() []domain.Transaction {
	return l.filter(func(t domain.Transaction) bool {
		return t.Kind == domain.TransactionReturn && t.Counterparty.Kind == domain.CounterpartyHunter
	})
}

// MerchantReturns returns the return transactions whose counterparty is a
// merchant.
func (l *TransactionLog) MerchantReturns() []domain.Transaction {
	return l.filter(func(t domain.Transaction) bool {
		return t.Kind == domain.TransactionReturn && t.Counterparty.Kind == domain.CounterpartyMerchant
	})
}

func (l *TransactionLog) filter(keep func(domain.Transaction) bool) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range l.transactions {
		if keep(t) {
			out = append(out, t)
		}
	}

	return out
}

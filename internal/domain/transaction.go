package domain

import "time"

// TransactionKind is the closed set of ledger operation kinds.
type TransactionKind string

const (
	TransactionSale     TransactionKind = "sale"
	TransactionPurchase TransactionKind = "purchase"
	TransactionReturn   TransactionKind = "return"
)

func (k TransactionKind) IsValid() bool {
	return k == TransactionSale || k == TransactionPurchase || k == TransactionReturn
}

// CounterpartyKind tags which side of the trade a counterparty is.
type CounterpartyKind string

const (
	CounterpartyHunter   CounterpartyKind = "hunter"
	CounterpartyMerchant CounterpartyKind = "merchant"
)

// Counterparty is a tagged variant: exactly one of Hunter or Merchant is
// set, according to Kind. Sales always carry a hunter, purchases a
// merchant; returns carry either.
type Counterparty struct {
	Kind     CounterpartyKind `json:"kind"`
	Hunter   *Hunter          `json:"hunter,omitempty"`
	Merchant *Merchant        `json:"merchant,omitempty"`
}

func HunterParty(h Hunter) Counterparty {
	return Counterparty{Kind: CounterpartyHunter, Hunter: &h}
}

func MerchantParty(m Merchant) Counterparty {
	return Counterparty{Kind: CounterpartyMerchant, Merchant: &m}
}

// ID returns the identifier of whichever party is set.
func (c Counterparty) ID() string {
	switch c.Kind {
	case CounterpartyHunter:
		return c.Hunter.ID
	case CounterpartyMerchant:
		return c.Merchant.ID
	default:
		return ""
	}
}

// Name returns the display name of whichever party is set.
func (c Counterparty) Name() string {
	switch c.Kind {
	case CounterpartyHunter:
		return c.Hunter.Name
	case CounterpartyMerchant:
		return c.Merchant.Name
	default:
		return ""
	}
}

// Transaction is one recorded ledger event. Immutable once appended: the
// log never edits or removes entries. Items keeps the original occurrence
// list, duplicates included; TotalCrowns sums unit prices per occurrence.
// Reason is only set for returns.
type Transaction struct {
	ID           string          `json:"id"`
	Kind         TransactionKind `json:"kind"`
	Date         time.Time       `json:"date"`
	Items        []Item          `json:"items"`
	Counterparty Counterparty    `json:"counterparty"`
	Reason       string          `json:"reason,omitempty"`
	TotalCrowns  int             `json:"total_crowns"`
}

// References reports whether the transaction's item list contains the
// given item id.
func (t Transaction) References(itemID string) bool {
	for _, item := range t.Items {
		if item.ID == itemID {
			return true
		}
	}

	return false
}

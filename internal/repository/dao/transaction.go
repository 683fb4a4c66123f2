package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Transaction is the archive row written after the ledger records a
// transaction. The in-memory log stays the reporting source; this table
// is the durable audit trail.
type Transaction struct {
	ID string `gorm:"primaryKey"`

	Kind             string    `gorm:"not null"`
	Date             time.Time `gorm:"not null"`
	CounterpartyKind string    `gorm:"not null"`
	CounterpartyID   string    `gorm:"not null"`
	ItemIDs          []string  `gorm:"serializer:json;not null"`
	Reason           string
	TotalCrowns      int `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type TransactionDAO struct {
	db *gorm.DB
}

func NewTransactionDAO(db *gorm.DB) *TransactionDAO {
	return &TransactionDAO{
		db: db,
	}
}

func (d *TransactionDAO) Insert(ctx context.Context, transaction Transaction) (Transaction, error) {
	result := d.db.WithContext(ctx).Create(&transaction)
	if result.Error != nil {
		return Transaction{}, result.Error
	}

	return transaction, nil
}

func (d *TransactionDAO) FindAll(ctx context.Context) ([]Transaction, error) {
	var transactions []Transaction

	result := d.db.WithContext(ctx).Order("date").Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

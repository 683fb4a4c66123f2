package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrMerchantIDExists = errors.New("merchant already exists")
	ErrMerchantNotFound = errors.New("merchant not found")
)

type Merchant struct {
	ID string `gorm:"primaryKey"`

	Name       string `gorm:"not null"`
	Profession string `gorm:"not null"`
	Location   string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type MerchantDAO struct {
	db *gorm.DB
}

func NewMerchantDAO(db *gorm.DB) *MerchantDAO {
	return &MerchantDAO{
		db: db,
	}
}

func (d *MerchantDAO) Insert(ctx context.Context, merchant Merchant) (Merchant, error) {
	result := d.db.WithContext(ctx).Create(&merchant)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Merchant{}, ErrMerchantIDExists
		}

		return Merchant{}, result.Error
	}

	return merchant, nil
}

func (d *MerchantDAO) FindByID(ctx context.Context, id string) (Merchant, error) {
	var merchant Merchant

	result := d.db.WithContext(ctx).Where("id = ?", id).First(&merchant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Merchant{}, ErrMerchantNotFound
		}

		return Merchant{}, result.Error
	}

	return merchant, nil
}

func (d *MerchantDAO) FindAll(ctx context.Context) ([]Merchant, error) {
	var merchants []Merchant

	result := d.db.WithContext(ctx).Order("id").Find(&merchants)
	if result.Error != nil {
		return nil, result.Error
	}

	return merchants, nil
}

func (d *MerchantDAO) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Merchant{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *MerchantDAO) Update(ctx context.Context, merchant Merchant) (Merchant, error) {
	result := d.db.WithContext(ctx).Model(&Merchant{}).
		Where("id = ?", merchant.ID).
		Updates(map[string]interface{}{
			"name":       merchant.Name,
			"profession": merchant.Profession,
			"location":   merchant.Location,
		})
	if result.Error != nil {
		return Merchant{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Merchant{}, ErrMerchantNotFound
	}

	return d.FindByID(ctx, merchant.ID)
}

func (d *MerchantDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Merchant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMerchantNotFound
	}

	return nil
}

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
	ErrHunterIDExists = errors.New("hunter already exists")
	ErrHunterNotFound = errors.New("hunter not found")
)

type Hunter struct {
	ID string `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Race     string `gorm:"not null"`
	Location string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type HunterDAO struct {
	db *gorm.DB
}

func NewHunterDAO(db *gorm.DB) *HunterDAO {
	return &HunterDAO{
		db: db,
	}
}

func (d *HunterDAO) Insert(ctx context.Context, hunter Hunter) (Hunter, error) {
	result := d.db.WithContext(ctx).Create(&hunter)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Hunter{}, ErrHunterIDExists
		}

		return Hunter{}, result.Error
	}

	return hunter, nil
}

func (d *HunterDAO) FindByID(ctx context.Context, id string) (Hunter, error) {
	var hunter Hunter

	result := d.db.WithContext(ctx).Where("id = ?", id).First(&hunter)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Hunter{}, ErrHunterNotFound
		}

		return Hunter{}, result.Error
	}

	return hunter, nil
}

func (d *HunterDAO) FindAll(ctx context.Context) ([]Hunter, error) {
	var hunters []Hunter

	result := d.db.WithContext(ctx).Order("id").Find(&hunters)
	if result.Error != nil {
		return nil, result.Error
	}

	return hunters, nil
}

func (d *HunterDAO) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Hunter{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *HunterDAO) Update(ctx context.Context, hunter Hunter) (Hunter, error) {
	result := d.db.WithContext(ctx).Model(&Hunter{}).
		Where("id = ?", hunter.ID).
		Updates(map[string]interface{}{
			"name":     hunter.Name,
			"race":     hunter.Race,
			"location": hunter.Location,
		})
	if result.Error != nil {
		return Hunter{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Hunter{}, ErrHunterNotFound
	}

	return d.FindByID(ctx, hunter.ID)
}

func (d *HunterDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Hunter{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHunterNotFound
	}

	return nil
}

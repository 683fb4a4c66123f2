package repository

import (
	"context"
	"fmt"

	"github.com/huntersguild/trading-post-api/internal/domain"
	"github.com/huntersguild/trading-post-api/internal/repository/dao"
)

var (
	ErrMerchantIDExists = dao.ErrMerchantIDExists
	ErrMerchantNotFound = dao.ErrMerchantNotFound
)

type MerchantDAO interface {
	Insert(ctx context.Context, merchant dao.Merchant) (dao.Merchant, error)
	FindByID(ctx context.Context, id string) (dao.Merchant, error)
	FindAll(ctx context.Context) ([]dao.Merchant, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, merchant dao.Merchant) (dao.Merchant, error)
	Delete(ctx context.Context, id string) error
}

// MerchantRepository is the merchant registry. Besides CRUD for the HTTP
// layer it satisfies inventory.MerchantRegistry.
type MerchantRepository struct {
	dao MerchantDAO
}

func NewMerchantRepository(dao MerchantDAO) *MerchantRepository {
	return &MerchantRepository{
		dao: dao,
	}
}

func (r *MerchantRepository) Create(ctx context.Context, merchant domain.Merchant) (domain.Merchant, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(merchant))
	if err != nil {
		return domain.Merchant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *MerchantRepository) FindByID(ctx context.Context, id string) (domain.Merchant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Merchant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MerchantRepository) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.dao.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByID -> %w", err)
	}

	return ok, nil
}

func (r *MerchantRepository) ListAll(ctx context.Context) ([]domain.Merchant, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	merchants := make([]domain.Merchant, 0, len(found))
	for _, m := range found {
		merchants = append(merchants, r.daoToDomain(m))
	}

	return merchants, nil
}

func (r *MerchantRepository) Update(ctx context.Context, merchant domain.Merchant) (domain.Merchant, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(merchant))
	if err != nil {
		return domain.Merchant{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *MerchantRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *MerchantRepository) domainToDAO(merchant domain.Merchant) dao.Merchant {
	return dao.Merchant{
		ID:         merchant.ID,
		Name:       merchant.Name,
		Profession: string(merchant.Profession),
		Location:   merchant.Location,
	}
}

func (r *MerchantRepository) daoToDomain(merchant dao.Merchant) domain.Merchant {
	return domain.Merchant{
		ID:         merchant.ID,
		Name:       merchant.Name,
		Profession: domain.Profession(merchant.Profession),
		Location:   merchant.Location,
		CreatedAt:  merchant.CreatedAt,
		UpdatedAt:  merchant.UpdatedAt,
	}
}

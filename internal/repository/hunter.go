package repository

import (
	"context"
	"fmt"

	"github.com/huntersguild/trading-post-api/internal/domain"
	"github.com/huntersguild/trading-post-api/internal/repository/dao"
)

var (
	ErrHunterIDExists = dao.ErrHunterIDExists
	ErrHunterNotFound = dao.ErrHunterNotFound
)

type HunterDAO interface {
	Insert(ctx context.Context, hunter dao.Hunter) (dao.Hunter, error)
	FindByID(ctx context.Context, id string) (dao.Hunter, error)
	FindAll(ctx context.Context) ([]dao.Hunter, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, hunter dao.Hunter) (dao.Hunter, error)
	Delete(ctx context.Context, id string) error
}

// HunterRepository is the hunter registry. Besides CRUD for the HTTP
// layer it satisfies inventory.HunterRegistry.
type HunterRepository struct {
	dao HunterDAO
}

func NewHunterRepository(dao HunterDAO) *HunterRepository {
	return &HunterRepository{
		dao: dao,
	}
}

func (r *HunterRepository) Create(ctx context.Context, hunter domain.Hunter) (domain.Hunter, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(hunter))
	if err != nil {
		return domain.Hunter{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *HunterRepository) FindByID(ctx context.Context, id string) (domain.Hunter, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Hunter{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *HunterRepository) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.dao.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByID -> %w", err)
	}

	return ok, nil
}

func (r *HunterRepository) ListAll(ctx context.Context) ([]domain.Hunter, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	hunters := make([]domain.Hunter, 0, len(found))
	for _, h := range found {
		hunters = append(hunters, r.daoToDomain(h))
	}

	return hunters, nil
}

func (r *HunterRepository) Update(ctx context.Context, hunter domain.Hunter) (domain.Hunter, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(hunter))
	if err != nil {
		return domain.Hunter{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *HunterRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *HunterRepository) domainToDAO(hunter domain.Hunter) dao.Hunter {
	return dao.Hunter{
		ID:       hunter.ID,
		Name:     hunter.Name,
		Race:     string(hunter.Race),
		Location: hunter.Location,
	}
}

func (r *HunterRepository) daoToDomain(hunter dao.Hunter) domain.Hunter {
	return domain.Hunter{
		ID:        hunter.ID,
		Name:      hunter.Name,
		Race:      domain.Race(hunter.Race),
		Location:  hunter.Location,
		CreatedAt: hunter.CreatedAt,
		UpdatedAt: hunter.UpdatedAt,
	}
}

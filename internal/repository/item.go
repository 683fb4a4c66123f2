package repository

import (
	"context"
	"fmt"

	"github.com/huntersguild/trading-post-api/internal/domain"
	"github.com/huntersguild/trading-post-api/internal/repository/dao"
)

var (
	ErrItemIDExists = dao.ErrItemIDExists
	ErrItemNotFound = dao.ErrItemNotFound
)

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	FindByID(ctx context.Context, id string) (dao.Item, error)
	FindAll(ctx context.Context) ([]dao.Item, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, item dao.Item) (dao.Item, error)
	Delete(ctx context.Context, id string) error
}

// ItemRepository is the item registry. Besides CRUD for the HTTP layer it
// satisfies inventory.ItemRegistry.
type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (domain.Item, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ItemRepository) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.dao.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByID -> %w", err)
	}

	return ok, nil
}

func (r *ItemRepository) ListAll(ctx context.Context) ([]domain.Item, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	items := make([]domain.Item, 0, len(found))
	for _, i := range found {
		items = append(items, r.daoToDomain(i))
	}

	return items, nil
}

func (r *ItemRepository) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ItemRepository) domainToDAO(item domain.Item) dao.Item {
	return dao.Item{
		ID:          item.ID,
		Kind:        string(item.Kind),
		Name:        item.Name,
		Description: item.Description,
		Material:    string(item.Material),
		Weight:      item.Weight,
		Price:       item.Price,
		Effect:      string(item.Effect),
	}
}

func (r *ItemRepository) daoToDomain(item dao.Item) domain.Item {
	return domain.Item{
		ID:          item.ID,
		Kind:        domain.ItemKind(item.Kind),
		Name:        item.Name,
		Description: item.Description,
		Material:    domain.Material(item.Material),
		Weight:      item.Weight,
		Price:       item.Price,
		Effect:      domain.Effect(item.Effect),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

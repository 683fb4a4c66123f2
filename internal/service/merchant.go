package service

import (
	"context"
	"fmt"

	"github.com/huntersguild/trading-post-api/internal/domain"
	"github.com/huntersguild/trading-post-api/internal/repository"
)

var (
	ErrMerchantIDExists = repository.ErrMerchantIDExists
	ErrMerchantNotFound = repository.ErrMerchantNotFound
)

type MerchantRepository interface {
	Create(ctx context.Context, merchant domain.Merchant) (domain.Merchant, error)
	FindByID(ctx context.Context, id string) (domain.Merchant, error)
	ListAll(ctx context.Context) ([]domain.Merchant, error)
	Update(ctx context.Context, merchant domain.Merchant) (domain.Merchant, error)
	Delete(ctx context.Context, id string) error
}

type MerchantService struct {
	repo MerchantRepository
}

func NewMerchantService(repo MerchantRepository) *MerchantService {
	return &MerchantService{
		repo: repo,
	}
}

func (s *MerchantService) CreateMerchant(ctx context.Context, merchant domain.Merchant) (domain.Merchant, error) {
	created, err := s.repo.Create(ctx, merchant)
	if err != nil {
		return domain.Merchant{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *MerchantService) GetMerchant(ctx context.Context, id string) (domain.Merchant, error) {
	merchant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Merchant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return merchant, nil
}

func (s *MerchantService) ListMerchants(ctx context.Context) ([]domain.Merchant, error) {
	merchants, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	return merchants, nil
}

func (s *MerchantService) UpdateMerchant(ctx context.Context, merchant domain.Merchant) (domain.Merchant, error) {
	updated, err := s.repo.Update(ctx, merchant)
	if err != nil {
		return domain.Merchant{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *MerchantService) DeleteMerchant(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/huntersguild/trading-post-api/internal/domain"
	"github.com/huntersguild/trading-post-api/internal/repository"
)

var (
	ErrHunterIDExists = repository.ErrHunterIDExists
	ErrHunterNotFound = repository.ErrHunterNotFound
)

type HunterRepository interface {
	Create(ctx context.Context, hunter domain.Hunter) (domain.Hunter, error)
	FindByID(ctx context.Context, id string) (domain.Hunter, error)
	ListAll(ctx context.Context) ([]domain.Hunter, error)
	Update(ctx context.Context, hunter domain.Hunter) (domain.Hunter, error)
	Delete(ctx context.Context, id string) error
}

type HunterService struct {
	repo HunterRepository
}

func NewHunterService(repo HunterRepository) *HunterService {
	return &HunterService{
		repo: repo,
	}
}

func (s *HunterService) CreateHunter(ctx context.Context, hunter domain.Hunter) (domain.Hunter, error) {
	created, err := s.repo.Create(ctx, hunter)
	if err != nil {
		return domain.Hunter{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *HunterService) GetHunter(ctx context.Context, id string) (domain.Hunter, error) {
	hunter, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Hunter{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return hunter, nil
}

func (s *HunterService) ListHunters(ctx context.Context) ([]domain.Hunter, error) {
	hunters, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	return hunters, nil
}

func (s *HunterService) UpdateHunter(ctx context.Context, hunter domain.Hunter) (domain.Hunter, error) {
	updated, err := s.repo.Update(ctx, hunter)
	if err != nil {
		return domain.Hunter{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *HunterService) DeleteHunter(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

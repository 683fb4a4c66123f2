package inventory

import (
	"context"

	"github.com/huntersguild/trading-post-api/internal/domain"
)

// The engine depends on these narrow lookup capabilities instead of
// concrete repositories, so in-memory, file-backed or database-backed
// registries are interchangeable. Registries are read-only from the
// engine's point of view.

type HunterRegistry interface {
	Exists(ctx context.Context, id string) (bool, error)
	ListAll(ctx context.Context) ([]domain.Hunter, error)
}

type MerchantRegistry interface {
	Exists(ctx context.Context, id string) (bool, error)
	ListAll(ctx context.Context) ([]domain.Merchant, error)
}

type ItemRegistry interface {
	Exists(ctx context.Context, id string) (bool, error)
	ListAll(ctx context.Context) ([]domain.Item, error)
}

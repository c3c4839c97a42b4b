package order

import (
	"context"

	"courier-dispatch/internal/domain"
)

// orderRepository defines storage operations required by the business layer.
type orderRepository interface {
	Get(ctx context.Context, id int64) (*domain.Order, error)
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
	CreateBatch(ctx context.Context, orders []domain.Order) error
}

// regionChecker resolves which region ids actually exist.
type regionChecker interface {
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
}

package courier

import (
	"context"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/ports/dispatchtx"
)

// courierRepository defines storage operations required by the business layer.
type courierRepository interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Courier, error)
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
	CreateBatch(ctx context.Context, couriers []domain.Courier) error
}

// regionChecker resolves which region ids actually exist.
type regionChecker interface {
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
}

// txRunner runs a function within one dispatch transaction. The patch
// cascade needs it: the courier update and the unassignment of orders it can
// no longer hold must land together or not at all.
type txRunner interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
}

package dispatchtx

import (
	"context"
	"time"

	"courier-dispatch/internal/domain"
)

// Repository is the transaction-scoped storage contract shared by the
// assignment engine, the completion engine and the courier patch cascade.
// Every multi-entity mutation of the dispatch flow runs through one
// transaction so a scan-then-write window can never double-assign.
type Repository interface {
	GetCourierForUpdate(ctx context.Context, id int64) (*domain.Courier, error)
	SaveCourier(ctx context.Context, c *domain.Courier) error
	UpdateCourierMetrics(ctx context.Context, courierID int64, rating float64, earnings int64) error

	GetOrderForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	ListUnassignedForUpdate(ctx context.Context) ([]domain.Order, error)
	ListAssignedUncompleted(ctx context.Context, courierID int64) ([]domain.Order, error)
	ListCompletedByCourier(ctx context.Context, courierID int64) ([]domain.Order, error)

	AssignOrders(ctx context.Context, orderIDs []int64, courierID int64, at time.Time) error
	UnassignOrders(ctx context.Context, orderIDs []int64) error
	CompleteOrder(ctx context.Context, orderID int64, at time.Time, snapshot domain.CourierType) error
}

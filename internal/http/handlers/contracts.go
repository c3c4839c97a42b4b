package handlers

import (
	"context"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/service/assignment"
	"courier-dispatch/internal/service/completion"
	"courier-dispatch/internal/service/courier"
	"courier-dispatch/internal/service/order"
	"courier-dispatch/internal/service/region"
)

type courierUsecase interface {
	CreateBatch(ctx context.Context, inputs []courier.CreateInput) ([]int64, error)
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Courier, error)
	Patch(ctx context.Context, u domain.PartialCourierUpdate) (*domain.Courier, error)
}

// NewCourierUsecase wires a courier Service into a courierUsecase.
func NewCourierUsecase(svc *courier.Service) courierUsecase {
	return svc
}

type orderUsecase interface {
	CreateBatch(ctx context.Context, inputs []order.CreateInput) ([]int64, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
}

// NewOrderUsecase wires an order Service into an orderUsecase.
func NewOrderUsecase(svc *order.Service) orderUsecase {
	return svc
}

type assignmentUsecase interface {
	AssignBatch(ctx context.Context, courierID int64) (domain.AssignResult, error)
}

// NewAssignmentUsecase wires an assignment Service into an assignmentUsecase.
func NewAssignmentUsecase(svc *assignment.Service) assignmentUsecase {
	return svc
}

type completionUsecase interface {
	Complete(ctx context.Context, orderID, courierID int64, rawCompleteTime string) error
}

// NewCompletionUsecase wires a completion Service into a completionUsecase.
func NewCompletionUsecase(svc *completion.Service) completionUsecase {
	return svc
}

type regionUsecase interface {
	Create(ctx context.Context, r *domain.Region) (int64, error)
}

// NewRegionUsecase wires a region Service into a regionUsecase.
func NewRegionUsecase(svc *region.Service) regionUsecase {
	return svc
}

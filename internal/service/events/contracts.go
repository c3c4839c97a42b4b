package events

import (
	"context"

	"courier-dispatch/internal/ports/dispatchtx"
	"courier-dispatch/internal/service/order"
)

// OrderPort abstracts the order intake operation the Processor needs for
// "created" events.
type OrderPort interface {
	CreateBatch(ctx context.Context, inputs []order.CreateInput) ([]int64, error)
}

// CompletionPort abstracts the completion operation for "completed" events.
type CompletionPort interface {
	Complete(ctx context.Context, orderID, courierID int64, rawCompleteTime string) error
}

// TxRunner abstracts running a function within a dispatch transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
}

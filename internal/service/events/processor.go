package events

import (
	"context"
	"errors"
	"fmt"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/ports/dispatchtx"
	"courier-dispatch/internal/service/order"
)

// Processor - applies order lifecycle events from the intake stream to the
// dispatch state. Domain rejections (invalid payload, unknown order,
// ownership mismatch) surface as apperr sentinels so the transport layer can
// decide between skipping and redelivery.
type Processor struct {
	orders     OrderPort
	completion CompletionPort
	tx         TxRunner
	logger     logx.Logger
	actions    *actionFactory
}

// NewProcessor - creates a new event Processor.
func NewProcessor(orders OrderPort, completion CompletionPort, tx TxRunner, logger logx.Logger) *Processor {
	p := &Processor{
		orders:     orders,
		completion: completion,
		tx:         tx,
		logger:     logger,
	}
	p.actions = newActionFactory(p.handleCreated, p.handleCanceled, p.handleCompleted)
	return p
}

// Process dispatches the event to the action matching its status.
// Unknown statuses are skipped.
func (p *Processor) Process(ctx context.Context, e Event) error {
	if e.OrderID <= 0 {
		return fmt.Errorf("event without order id: %w", apperr.ErrInvalid)
	}
	action, ok := p.actions.get(e.Status)
	if !ok {
		p.logger.Warn("event skipped: unknown status",
			logx.Int64("order_id", e.OrderID),
			logx.String("status", e.Status),
		)
		return nil
	}
	return action(ctx, e)
}

func (p *Processor) handleCreated(ctx context.Context, e Event) error {
	id := e.OrderID
	_, err := p.orders.CreateBatch(ctx, []order.CreateInput{{
		OrderID:       &id,
		Weight:        e.Weight,
		Region:        e.Region,
		DeliveryHours: e.DeliveryHours,
	}})
	if errors.Is(err, apperr.ErrConflict) {
		// already ingested, replay is fine
		return nil
	}
	if err != nil {
		return fmt.Errorf("create order %d: %w", e.OrderID, err)
	}
	return nil
}

func (p *Processor) handleCanceled(ctx context.Context, e Event) error {
	err := p.tx.WithTx(ctx, func(tx dispatchtx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, e.OrderID)
		if err != nil {
			return err
		}
		if o == nil || !o.Assigned() || o.Completed() {
			return nil
		}
		return tx.UnassignOrders(ctx, []int64{o.ID})
	})
	if err != nil {
		return fmt.Errorf("cancel order %d: %w", e.OrderID, err)
	}
	return nil
}

func (p *Processor) handleCompleted(ctx context.Context, e Event) error {
	if err := p.completion.Complete(ctx, e.OrderID, e.CourierID, e.CompleteTime); err != nil {
		return fmt.Errorf("complete order %d: %w", e.OrderID, err)
	}
	return nil
}

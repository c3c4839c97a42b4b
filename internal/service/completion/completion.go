package completion

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/ports/dispatchtx"
)

// Service - the completion engine: finalizes an order for its owning courier
// and recomputes the courier's rating and earnings from the full completed
// history, from scratch, inside the same transaction.
type Service struct {
	tx               txRunner
	operationTimeout time.Duration
	logger           logx.Logger
	completedTotal   prometheus.Counter
}

// NewService - creates a new completion Service.
func NewService(tx txRunner, timeout time.Duration, logger logx.Logger, completedTotal prometheus.Counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		tx:               tx,
		operationTimeout: timeout,
		logger:           logger,
		completedTotal:   completedTotal,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Complete finalizes the order on behalf of the requesting courier.
// The raw timestamp must be RFC 3339; a courier that does not own the order
// gets an assignment mismatch; re-completing an already completed order by
// its owner is a no-op success.
func (s *Service) Complete(ctx context.Context, orderID, courierID int64, rawCompleteTime string) error {
	if orderID <= 0 || courierID <= 0 {
		return apperr.ErrInvalid
	}
	completeTime, err := time.Parse(time.RFC3339, rawCompleteTime)
	if err != nil {
		return apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		rating   float64
		earnings int64
		repeated bool
	)
	err = s.tx.WithTx(ctx, func(tx dispatchtx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return apperr.ErrNotFound
		}
		if !o.Assigned() || *o.CourierID != courierID {
			return apperr.ErrMismatch
		}
		if o.Completed() {
			repeated = true
			return nil
		}

		courier, err := tx.GetCourierForUpdate(ctx, courierID)
		if err != nil {
			return err
		}
		if courier == nil {
			return apperr.ErrNotFound
		}

		// snapshot the type the courier has NOW; later patches must not
		// rewrite this order's earnings contribution
		if err := tx.CompleteOrder(ctx, orderID, completeTime, courier.Type); err != nil {
			return err
		}

		history, err := tx.ListCompletedByCourier(ctx, courierID)
		if err != nil {
			return err
		}
		rating = ComputeRating(history)
		earnings = ComputeEarnings(history)
		return tx.UpdateCourierMetrics(ctx, courierID, rating, earnings)
	})
	if err != nil {
		return err
	}

	if !repeated {
		s.completedTotal.Inc()
		s.logger.Info("order completed",
			logx.String("event", "order_completed"),
			logx.Int64("order_id", orderID),
			logx.Int64("courier_id", courierID),
			logx.Float64("rating", rating),
			logx.Int64("earnings", earnings),
		)
	}
	return nil
}

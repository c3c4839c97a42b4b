package assignment

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/ports/dispatchtx"
)

// Service - the batch assignment engine: matches unassigned orders against a
// requesting courier and stamps every match with one shared assign time.
type Service struct {
	tx               txRunner
	operationTimeout time.Duration
	logger           logx.Logger
	assignedTotal    prometheus.Counter
	now              func() time.Time
}

// NewService - creates a new assignment Service.
func NewService(tx txRunner, timeout time.Duration, logger logx.Logger, assignedTotal prometheus.Counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		tx:               tx,
		operationTimeout: timeout,
		logger:           logger,
		assignedTotal:    assignedTotal,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// AssignBatch scans all currently unassigned orders and assigns every one the
// courier can take. The scan and the writes share one transaction, and the
// shared timestamp is captured once, before any write. No match is a success
// with an empty result.
func (s *Service) AssignBatch(ctx context.Context, courierID int64) (domain.AssignResult, error) {
	if courierID <= 0 {
		return domain.AssignResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.AssignResult
	err := s.tx.WithTx(ctx, func(tx dispatchtx.Repository) error {
		courier, err := tx.GetCourierForUpdate(ctx, courierID)
		if err != nil {
			return err
		}
		if courier == nil {
			return apperr.ErrNotFound
		}

		pool, err := tx.ListUnassignedForUpdate(ctx)
		if err != nil {
			return err
		}

		var matched []int64
		for i := range pool {
			if courier.CanAssign(&pool[i]) {
				matched = append(matched, pool[i].ID)
			}
		}
		if len(matched) == 0 {
			return nil
		}

		at := s.now()
		if err := tx.AssignOrders(ctx, matched, courierID, at); err != nil {
			return err
		}

		result = domain.AssignResult{OrderIDs: matched, AssignTime: at}
		return nil
	})
	if err != nil {
		return domain.AssignResult{}, err
	}

	if len(result.OrderIDs) > 0 {
		s.assignedTotal.Add(float64(len(result.OrderIDs)))
		s.logger.Info("orders assigned",
			logx.String("event", "orders_assigned"),
			logx.Int64("courier_id", courierID),
			logx.Int("count", len(result.OrderIDs)),
			logx.Time("assign_time", result.AssignTime),
		)
	}
	return result, nil
}

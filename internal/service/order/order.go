package order

import (
	"context"
	"time"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// Service coordinates order intake and lookups.
type Service struct {
	repo             orderRepository
	regions          regionChecker
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures an order Service.
func NewService(r orderRepository, regions regionChecker, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, regions: regions, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Get retrieves an order by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}

// CreateBatch validates every input, collecting all field errors per member,
// and persists the whole batch only when every member is clean. It returns
// the stored ids in input order.
func (s *Service) CreateBatch(ctx context.Context, inputs []CreateInput) ([]int64, error) {
	if len(inputs) == 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := s.loadRefs(ctx, inputs)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(inputs))
	var batchErrs apperr.BatchErrors
	for _, in := range inputs {
		o, errs := validateCreate(in, r)
		if errs != nil {
			batchErrs = append(batchErrs, apperr.EntityErrors{ID: inputID(in), Errors: errs})
			continue
		}
		r.takenIDs[o.ID] = true
		orders = append(orders, o)
	}
	if len(batchErrs) > 0 {
		return nil, batchErrs
	}

	if err := s.repo.CreateBatch(ctx, orders); err != nil {
		return nil, err
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	s.logger.Info("orders created", logx.Int("count", len(ids)))
	return ids, nil
}

func (s *Service) loadRefs(ctx context.Context, inputs []CreateInput) (refs, error) {
	var orderIDs, regionIDs []int64
	for _, in := range inputs {
		if in.OrderID != nil && *in.OrderID > 0 {
			orderIDs = append(orderIDs, *in.OrderID)
		}
		if in.Region != nil && *in.Region > 0 {
			regionIDs = append(regionIDs, *in.Region)
		}
	}
	taken, err := s.repo.ExistingIDs(ctx, orderIDs)
	if err != nil {
		return refs{}, err
	}
	known, err := s.regions.ExistingIDs(ctx, regionIDs)
	if err != nil {
		return refs{}, err
	}
	return refs{takenIDs: taken, knownRegions: known}, nil
}

func inputID(in CreateInput) int64 {
	if in.OrderID == nil {
		return 0
	}
	return *in.OrderID
}

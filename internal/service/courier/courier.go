package courier

import (
	"context"
	"time"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/ports/dispatchtx"
)

// Service coordinates courier business logic and orchestrates repository calls.
type Service struct {
	repo             courierRepository
	regions          regionChecker
	tx               txRunner
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a courier Service.
func NewService(r courierRepository, regions regionChecker, tx txRunner, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		regions:          regions,
		tx:               tx,
		operationTimeout: timeout,
		logger:           logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Get retrieves a courier by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

// List returns couriers with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
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

	couriers := make([]domain.Courier, 0, len(inputs))
	var batchErrs apperr.BatchErrors
	for _, in := range inputs {
		c, errs := validateCreate(in, r)
		if errs != nil {
			batchErrs = append(batchErrs, apperr.EntityErrors{ID: inputID(in), Errors: errs})
			continue
		}
		// an id used earlier in the batch counts as taken too
		r.takenIDs[c.ID] = true
		couriers = append(couriers, c)
	}
	if len(batchErrs) > 0 {
		return nil, batchErrs
	}

	if err := s.repo.CreateBatch(ctx, couriers); err != nil {
		return nil, err
	}

	ids := make([]int64, len(couriers))
	for i, c := range couriers {
		ids[i] = c.ID
	}
	s.logger.Info("couriers created", logx.Int("count", len(ids)))
	return ids, nil
}

func (s *Service) loadRefs(ctx context.Context, inputs []CreateInput) (refs, error) {
	var courierIDs, regionIDs []int64
	for _, in := range inputs {
		if in.CourierID != nil && *in.CourierID > 0 {
			courierIDs = append(courierIDs, *in.CourierID)
		}
		for _, reg := range in.Regions {
			if reg > 0 {
				regionIDs = append(regionIDs, reg)
			}
		}
	}
	taken, err := s.repo.ExistingIDs(ctx, courierIDs)
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
	if in.CourierID == nil {
		return 0
	}
	return *in.CourierID
}

// Patch applies a partial update to a courier. Any assigned-but-uncompleted
// order the courier can no longer legally hold after the change is unassigned
// in the same transaction and becomes available for reassignment.
func (s *Service) Patch(ctx context.Context, u domain.PartialCourierUpdate) (*domain.Courier, error) {
	if u.ID <= 0 {
		return nil, apperr.ErrInvalid
	}
	if u.Type == nil && u.Regions == nil && u.WorkingHours == nil {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var regionIDs []int64
	for _, reg := range u.Regions {
		if reg > 0 {
			regionIDs = append(regionIDs, reg)
		}
	}
	known, err := s.regions.ExistingIDs(ctx, regionIDs)
	if err != nil {
		return nil, err
	}
	if errs := validatePatch(u, known); errs != nil {
		return nil, errs
	}

	var (
		updated    *domain.Courier
		unassigned int
	)
	err = s.tx.WithTx(ctx, func(tx dispatchtx.Repository) error {
		c, err := tx.GetCourierForUpdate(ctx, u.ID)
		if err != nil {
			return err
		}
		if c == nil {
			return apperr.ErrNotFound
		}

		if u.Type != nil {
			c.Type = *u.Type
		}
		if u.Regions != nil {
			c.Regions = u.Regions
		}
		if u.WorkingHours != nil {
			c.WorkingHours = u.WorkingHours
		}
		if err := tx.SaveCourier(ctx, c); err != nil {
			return err
		}

		inFlight, err := tx.ListAssignedUncompleted(ctx, c.ID)
		if err != nil {
			return err
		}
		var dropIDs []int64
		for i := range inFlight {
			if !c.CanAssign(&inFlight[i]) {
				dropIDs = append(dropIDs, inFlight[i].ID)
			}
		}
		if err := tx.UnassignOrders(ctx, dropIDs); err != nil {
			return err
		}

		updated = c
		unassigned = len(dropIDs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if unassigned > 0 {
		s.logger.Info("courier patch unassigned orders",
			logx.String("event", "patch_cascade"),
			logx.Int64("courier_id", u.ID),
			logx.Int("unassigned", unassigned),
		)
	}
	return updated, nil
}

package region

import (
	"context"
	"strings"
	"time"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
)

// regionRepository defines storage operations required by the business layer.
type regionRepository interface {
	Create(ctx context.Context, r *domain.Region) (int64, error)
}

// Service coordinates region registration.
type Service struct {
	repo             regionRepository
	operationTimeout time.Duration
}

// NewService creates and configures a region Service.
func NewService(r regionRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

// Create persists a new region and returns its generated ID.
func (s *Service) Create(ctx context.Context, r *domain.Region) (int64, error) {
	if r == nil || strings.TrimSpace(r.Name) == "" {
		return 0, apperr.ErrInvalid
	}
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()
	return s.repo.Create(ctx, r)
}

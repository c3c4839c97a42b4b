package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
)

// RegionRepo represents region repository.
type RegionRepo struct{ db *pgxpool.Pool }

// NewRegionRepo creates a new RegionRepo.
func NewRegionRepo(db *pgxpool.Pool) *RegionRepo { return &RegionRepo{db: db} }

// Create - creates a new region and returns its generated ID.
func (r *RegionRepo) Create(ctx context.Context, reg *domain.Region) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO regions(name) VALUES($1) RETURNING id`, reg.Name).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create region: %w", err)
	}
	return id, nil
}

// ExistingIDs returns the subset of ids that belong to stored regions.
func (r *RegionRepo) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `SELECT id FROM regions WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("existing region ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}

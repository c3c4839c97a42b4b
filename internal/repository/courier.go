package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
)

// CourierRepo represents courier repository.
type CourierRepo struct{ db *pgxpool.Pool }

// NewCourierRepo creates a new CourierRepo.
func NewCourierRepo(db *pgxpool.Pool) *CourierRepo { return &CourierRepo{db: db} }

const courierColumns = `id, type, regions, working_hours, rating, earnings`

func scanCourier(row pgx.Row) (*domain.Courier, error) {
	var c domain.Courier
	err := row.Scan(&c.ID, &c.Type, &c.Regions, &c.WorkingHours, &c.Rating, &c.Earnings)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Get - returns courier by its ID.
func (r *CourierRepo) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	c, err := scanCourier(r.db.QueryRow(ctx,
		`SELECT `+courierColumns+` FROM couriers WHERE id=$1`, id,
	))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %d: %w", id, err)
	}
	return c, nil
}

// List returns couriers ordered by id. If limit/offset are nil, returns the full list.
func (r *CourierRepo) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	q := `SELECT ` + courierColumns + ` FROM couriers ORDER BY id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.Courier, 0, capacity)
	for rows.Next() {
		var c domain.Courier
		if err := rows.Scan(&c.ID, &c.Type, &c.Regions, &c.WorkingHours, &c.Rating, &c.Earnings); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ExistingIDs returns the subset of ids that already belong to stored couriers.
func (r *CourierRepo) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `SELECT id FROM couriers WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("existing courier ids: %w", err)
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

// CreateBatch persists couriers with caller-chosen ids in one transaction:
// either all of them are stored or none.
func (r *CourierRepo) CreateBatch(ctx context.Context, couriers []domain.Courier) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create couriers: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	for i := range couriers {
		c := &couriers[i]
		_, err := tx.Exec(ctx,
			`INSERT INTO couriers(id, type, regions, working_hours) VALUES($1,$2,$3,$4)`,
			c.ID, c.Type, c.Regions, c.WorkingHours)
		if err != nil {
			if IsDuplicate(err) {
				return apperr.ErrConflict
			}
			return fmt.Errorf("create courier %d: %w", c.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create couriers: %w", err)
	}
	return nil
}

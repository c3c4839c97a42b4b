package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/ports/dispatchtx"
)

// OrderRepo represents order repository.
type OrderRepo struct {
	db *pgxpool.Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{db: db}
}

const orderColumns = `id, weight, region, delivery_hours, courier_id, assign_time, complete_time, completed_courier_type`

func scanOrderRow(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.Weight, &o.Region, &o.DeliveryHours,
		&o.CourierID, &o.AssignTime, &o.CompleteTime, &o.CompletedCourierType)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()
	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		err := rows.Scan(&o.ID, &o.Weight, &o.Region, &o.DeliveryHours,
			&o.CourierID, &o.AssignTime, &o.CompleteTime, &o.CompletedCourierType)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Get - returns order by its ID.
func (r *OrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrderRow(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, id,
	))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, nil
}

// ExistingIDs returns the subset of ids that already belong to stored orders.
func (r *OrderRepo) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `SELECT id FROM orders WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("existing order ids: %w", err)
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

// CreateBatch persists orders with caller-chosen ids in one transaction:
// either all of them are stored or none.
func (r *OrderRepo) CreateBatch(ctx context.Context, orders []domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create orders: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	for i := range orders {
		o := &orders[i]
		_, err := tx.Exec(ctx,
			`INSERT INTO orders(id, weight, region, delivery_hours) VALUES($1,$2,$3,$4)`,
			o.ID, o.Weight, o.Region, o.DeliveryHours)
		if err != nil {
			if IsDuplicate(err) {
				return apperr.ErrConflict
			}
			return fmt.Errorf("create order %d: %w", o.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create orders: %w", err)
	}
	return nil
}

// WithTx opens a transaction and executes fn within it.
func (r *OrderRepo) WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo is the transaction-scoped dispatch repository.
type TxRepo struct {
	tx pgx.Tx
}

var _ dispatchtx.Repository = (*TxRepo)(nil)

// GetCourierForUpdate loads and row-locks a courier.
func (r *TxRepo) GetCourierForUpdate(ctx context.Context, id int64) (*domain.Courier, error) {
	var c domain.Courier
	err := r.tx.QueryRow(ctx,
		`SELECT `+courierColumns+` FROM couriers WHERE id=$1 FOR UPDATE`, id,
	).Scan(&c.ID, &c.Type, &c.Regions, &c.WorkingHours, &c.Rating, &c.Earnings)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %d for update: %w", id, err)
	}
	return &c, nil
}

// SaveCourier updates the mutable courier attributes.
func (r *TxRepo) SaveCourier(ctx context.Context, c *domain.Courier) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE couriers
        SET type = $2, regions = $3, working_hours = $4, updated_at = now()
        WHERE id = $1
    `, c.ID, c.Type, c.Regions, c.WorkingHours)
	if err != nil {
		return fmt.Errorf("save courier %d: %w", c.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("courier %d not found", c.ID)
	}
	return nil
}

// UpdateCourierMetrics stores recomputed rating and earnings.
func (r *TxRepo) UpdateCourierMetrics(ctx context.Context, courierID int64, rating float64, earnings int64) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE couriers
        SET rating = $2, earnings = $3, updated_at = now()
        WHERE id = $1
    `, courierID, rating, earnings)
	if err != nil {
		return fmt.Errorf("update courier %d metrics: %w", courierID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("courier %d not found", courierID)
	}
	return nil
}

// GetOrderForUpdate loads and row-locks an order.
func (r *TxRepo) GetOrderForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrderRow(r.tx.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1 FOR UPDATE`, id,
	))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d for update: %w", id, err)
	}
	return o, nil
}

// ListUnassignedForUpdate locks and returns every order without an assign
// time. The lock is what keeps two concurrent batch-assign scans from
// stamping the same order.
func (r *TxRepo) ListUnassignedForUpdate(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.tx.Query(ctx, `
        SELECT `+orderColumns+`
        FROM orders
        WHERE assign_time IS NULL
        ORDER BY id
        FOR UPDATE
    `)
	if err != nil {
		return nil, fmt.Errorf("list unassigned orders: %w", err)
	}
	return collectOrders(rows)
}

// ListAssignedUncompleted returns the courier's in-flight orders.
func (r *TxRepo) ListAssignedUncompleted(ctx context.Context, courierID int64) ([]domain.Order, error) {
	rows, err := r.tx.Query(ctx, `
        SELECT `+orderColumns+`
        FROM orders
        WHERE courier_id = $1 AND complete_time IS NULL
        ORDER BY id
        FOR UPDATE
    `, courierID)
	if err != nil {
		return nil, fmt.Errorf("list in-flight orders of courier %d: %w", courierID, err)
	}
	return collectOrders(rows)
}

// ListCompletedByCourier returns the courier's full completed history ordered
// by completion time.
func (r *TxRepo) ListCompletedByCourier(ctx context.Context, courierID int64) ([]domain.Order, error) {
	rows, err := r.tx.Query(ctx, `
        SELECT `+orderColumns+`
        FROM orders
        WHERE courier_id = $1 AND complete_time IS NOT NULL
        ORDER BY complete_time, id
    `, courierID)
	if err != nil {
		return nil, fmt.Errorf("list completed orders of courier %d: %w", courierID, err)
	}
	return collectOrders(rows)
}

// AssignOrders stamps the batch with one shared assign time and the courier.
func (r *TxRepo) AssignOrders(ctx context.Context, orderIDs []int64, courierID int64, at time.Time) error {
	if len(orderIDs) == 0 {
		return nil
	}
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET courier_id = $2, assign_time = $3, updated_at = now()
        WHERE id = ANY($1) AND assign_time IS NULL
    `, orderIDs, courierID, at)
	if err != nil {
		return fmt.Errorf("assign %d orders to courier %d: %w", len(orderIDs), courierID, err)
	}
	if int(ct.RowsAffected()) != len(orderIDs) {
		return fmt.Errorf("assign race: stamped %d of %d orders", ct.RowsAffected(), len(orderIDs))
	}
	return nil
}

// UnassignOrders clears courier and assign time, returning the orders to the
// unassigned pool. Completed orders are never touched.
func (r *TxRepo) UnassignOrders(ctx context.Context, orderIDs []int64) error {
	if len(orderIDs) == 0 {
		return nil
	}
	_, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET courier_id = NULL, assign_time = NULL, updated_at = now()
        WHERE id = ANY($1) AND complete_time IS NULL
    `, orderIDs)
	if err != nil {
		return fmt.Errorf("unassign %d orders: %w", len(orderIDs), err)
	}
	return nil
}

// CompleteOrder stamps the completion time and freezes the courier type
// snapshot used by earnings.
func (r *TxRepo) CompleteOrder(ctx context.Context, orderID int64, at time.Time, snapshot domain.CourierType) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET complete_time = $2, completed_courier_type = $3, updated_at = now()
        WHERE id = $1
    `, orderID, at, snapshot)
	if err != nil {
		return fmt.Errorf("complete order %d: %w", orderID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

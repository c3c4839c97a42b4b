package completion

import (
	"testing"
	"time"

	"courier-dispatch/internal/domain"
)

func typep(t domain.CourierType) *domain.CourierType { return &t }
func timep(t time.Time) *time.Time                   { return &t }
func int64p(v int64) *int64                          { return &v }

func completedOrder(region int64, assign, complete time.Time) domain.Order {
	courierID := int64(1)
	return domain.Order{
		Region:               region,
		CourierID:            &courierID,
		AssignTime:           timep(assign),
		CompleteTime:         timep(complete),
		CompletedCourierType: typep(domain.TypeFoot),
	}
}

func TestComputeEarnings(t *testing.T) {
	t.Parallel()

	orders := []domain.Order{
		{CompletedCourierType: typep(domain.TypeFoot)},
		{CompletedCourierType: typep(domain.TypeCar)},
		{CompletedCourierType: nil},
	}
	if got := ComputeEarnings(orders); got != 500*2+500*9 {
		t.Fatalf("earnings = %d", got)
	}
	if got := ComputeEarnings(nil); got != 0 {
		t.Fatalf("empty earnings = %d", got)
	}
}

func TestComputeEarnings_SnapshotSurvivesTypeChange(t *testing.T) {
	t.Parallel()

	// the order was completed while the courier was on foot; the courier
	// switching to a car afterwards must not rewrite this contribution
	orders := []domain.Order{{CompletedCourierType: typep(domain.TypeFoot)}}
	if got := ComputeEarnings(orders); got != 1000 {
		t.Fatalf("earnings = %d", got)
	}
}

func TestComputeRating_ChainsWithinRegion(t *testing.T) {
	t.Parallel()

	assign := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		completedOrder(1, assign, assign.Add(13*time.Minute)),
		completedOrder(1, assign, assign.Add(24*time.Minute)),
	}

	// first 780s from assign, second 660s from the previous drop-off:
	// avg 720s -> (3600-720)/3600*5 = 4.00
	if got := ComputeRating(orders); got != 4.00 {
		t.Fatalf("rating = %v", got)
	}
}

func TestComputeRating_TakesBestRegion(t *testing.T) {
	t.Parallel()

	assign := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		completedOrder(1, assign, assign.Add(50*time.Minute)),
		completedOrder(2, assign, assign.Add(6*time.Minute)),
	}

	// region 2 averages 360s -> (3600-360)/3600*5 = 4.50
	if got := ComputeRating(orders); got != 4.50 {
		t.Fatalf("rating = %v", got)
	}
}

func TestComputeRating_Bounds(t *testing.T) {
	t.Parallel()

	assign := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	slow := []domain.Order{completedOrder(1, assign, assign.Add(2*time.Hour))}
	if got := ComputeRating(slow); got != 0 {
		t.Fatalf("slower than an hour must rate 0, got %v", got)
	}

	instant := []domain.Order{completedOrder(1, assign, assign)}
	if got := ComputeRating(instant); got != 5.00 {
		t.Fatalf("instant completion must rate 5, got %v", got)
	}
}

func TestComputeRating_EmptyHistory(t *testing.T) {
	t.Parallel()

	if got := ComputeRating(nil); got != 0 {
		t.Fatalf("rating = %v", got)
	}

	// incomplete records carry nil timestamps and must be skipped, not crash
	partial := []domain.Order{{Region: 1}}
	if got := ComputeRating(partial); got != 0 {
		t.Fatalf("rating = %v", got)
	}
}

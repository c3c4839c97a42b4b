package completion

import (
	"math"
	"sort"
	"time"

	"courier-dispatch/internal/domain"
)

const (
	basePayment   = 500
	ratingCeiling = 3600 // seconds; anything slower rates 0
)

// ComputeEarnings sums the flat base payment multiplied by the courier-type
// coefficient snapshotted into each completed order. The snapshot, not the
// courier's current type, keeps history stable under later type changes.
func ComputeEarnings(completed []domain.Order) int64 {
	var total int64
	for i := range completed {
		if completed[i].CompletedCourierType == nil {
			continue
		}
		total += basePayment * completed[i].CompletedCourierType.EarningCoefficient()
	}
	return total
}

// ComputeRating derives the courier rating from the full completed history.
//
// Orders are grouped by region and walked in completion order. The first
// order of a region contributes complete−assign; every later one contributes
// the elapsed time since the previous drop-off in that region
// (complete−previous complete), because a batch shares one assign time and
// the raw span would overcount. The best (smallest) per-region average, in
// seconds, maps linearly from [0,3600] onto [5,0], rounded to 2 decimals.
func ComputeRating(completed []domain.Order) float64 {
	byRegion := make(map[int64][]domain.Order)
	for i := range completed {
		o := completed[i]
		if !o.Completed() || !o.Assigned() {
			continue
		}
		byRegion[o.Region] = append(byRegion[o.Region], o)
	}
	if len(byRegion) == 0 {
		return 0
	}

	best := math.Inf(1)
	for _, orders := range byRegion {
		sort.Slice(orders, func(i, j int) bool {
			return orders[i].CompleteTime.Before(*orders[j].CompleteTime)
		})

		var total time.Duration
		for i, o := range orders {
			if i == 0 {
				total += o.CompleteTime.Sub(*o.AssignTime)
			} else {
				total += o.CompleteTime.Sub(*orders[i-1].CompleteTime)
			}
		}
		avg := total.Seconds() / float64(len(orders))
		if avg < best {
			best = avg
		}
	}

	t := math.Min(math.Max(best, 0), ratingCeiling)
	rating := (ratingCeiling - t) / ratingCeiling * 5
	return math.Round(rating*100) / 100
}

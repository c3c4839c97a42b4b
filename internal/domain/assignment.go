package domain

import "time"

// AssignResult - the outcome of one batch-assign request. An empty OrderIDs
// with a zero AssignTime means nothing matched, which is a success, not an
// error.
type AssignResult struct {
	OrderIDs   []int64
	AssignTime time.Time
}

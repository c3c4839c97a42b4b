package domain

import "time"

// Order - a delivery order. CourierID and AssignTime are set when the order
// is assigned; CompleteTime and CompletedCourierType when it is completed.
// CompletedCourierType freezes the courier type used for the earnings
// contribution of this order, so later type changes do not rewrite history.
type Order struct {
	ID                   int64
	Weight               float64
	Region               int64
	DeliveryHours        []string
	CourierID            *int64
	AssignTime           *time.Time
	CompleteTime         *time.Time
	CompletedCourierType *CourierType
}

// Assigned reports whether the order is currently assigned to a courier.
func (o *Order) Assigned() bool {
	return o.CourierID != nil && o.AssignTime != nil
}

// Completed reports whether the order has been completed.
func (o *Order) Completed() bool {
	return o.CompleteTime != nil
}

package events

import (
	"time"
)

// Event is a single order lifecycle event from the intake stream.
// Creation payload fields are only present on "created" events; courier and
// completion time only on "completed" ones.
type Event struct {
	OrderID       int64     `json:"order_id"`
	Status        string    `json:"status"`
	Weight        *float64  `json:"weight,omitempty"`
	Region        *int64    `json:"region,omitempty"`
	DeliveryHours []string  `json:"delivery_hours,omitempty"`
	CourierID     int64     `json:"courier_id,omitempty"`
	CompleteTime  string    `json:"complete_time,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

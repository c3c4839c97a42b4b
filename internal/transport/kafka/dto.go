package kafka

import (
	"strings"
	"time"

	"courier-dispatch/internal/service/events"
)

// EventDTO is the wire shape of an order lifecycle event.
type EventDTO struct {
	OrderID       int64     `json:"order_id"`
	Status        string    `json:"status"`
	Weight        *float64  `json:"weight,omitempty"`
	Region        *int64    `json:"region,omitempty"`
	DeliveryHours []string  `json:"delivery_hours,omitempty"`
	CourierID     int64     `json:"courier_id,omitempty"`
	CompleteTime  string    `json:"complete_time,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to events.Event.
func ToDomain(dto EventDTO) events.Event {
	return events.Event{
		OrderID:       dto.OrderID,
		Status:        strings.TrimSpace(dto.Status),
		Weight:        dto.Weight,
		Region:        dto.Region,
		DeliveryHours: dto.DeliveryHours,
		CourierID:     dto.CourierID,
		CompleteTime:  strings.TrimSpace(dto.CompleteTime),
		CreatedAt:     dto.CreatedAt,
	}
}

package handlers

import "courier-dispatch/internal/apperr"

type createCourierItem struct {
	CourierID    *int64   `json:"courier_id"`
	CourierType  *string  `json:"courier_type"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

type createCouriersRequest struct {
	Data []createCourierItem `json:"data"`
}

type patchCourierRequest struct {
	CourierType  *string  `json:"courier_type,omitempty"`
	Regions      []int64  `json:"regions,omitempty"`
	WorkingHours []string `json:"working_hours,omitempty"`
}

type courierDTO struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
	Rating       float64  `json:"rating"`
	Earnings     int64    `json:"earnings"`
}

type couriersListResponse struct {
	Couriers []courierDTO `json:"couriers"`
}

type createOrderItem struct {
	OrderID       *int64   `json:"order_id"`
	Weight        *float64 `json:"weight"`
	Region        *int64   `json:"region"`
	DeliveryHours []string `json:"delivery_hours"`
}

type createOrdersRequest struct {
	Data []createOrderItem `json:"data"`
}

type orderDTO struct {
	OrderID       int64    `json:"order_id"`
	Weight        float64  `json:"weight"`
	Region        int64    `json:"region"`
	DeliveryHours []string `json:"delivery_hours"`
	CompleteTime  *string  `json:"complete_time,omitempty"`
}

type assignOrdersRequest struct {
	CourierID int64 `json:"courier_id"`
}

type assignOrdersResponse struct {
	Orders     []idRef `json:"orders"`
	AssignTime string  `json:"assign_time,omitempty"`
}

type completeOrderRequest struct {
	CourierID    int64  `json:"courier_id"`
	OrderID      int64  `json:"order_id"`
	CompleteTime string `json:"complete_time"`
}

type completeOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

type createRegionRequest struct {
	Name string `json:"name"`
}

type idRef struct {
	ID int64 `json:"id"`
}

type createdCouriersResponse struct {
	Couriers []idRef `json:"couriers"`
}

type createdOrdersResponse struct {
	Orders []idRef `json:"orders"`
}

type entityErrorsDTO struct {
	ID     int64                        `json:"id"`
	Errors map[string]apperr.FieldError `json:"errors"`
}

type validationErrorBody struct {
	Couriers []entityErrorsDTO `json:"couriers,omitempty"`
	Orders   []entityErrorsDTO `json:"orders,omitempty"`
}

type validationErrorResponse struct {
	ValidationError validationErrorBody `json:"validation_error"`
}

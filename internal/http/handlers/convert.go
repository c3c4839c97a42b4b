package handlers

import (
	"time"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/service/courier"
	"courier-dispatch/internal/service/order"
)

func (req createCouriersRequest) toInputs() []courier.CreateInput {
	out := make([]courier.CreateInput, 0, len(req.Data))
	for _, item := range req.Data {
		out = append(out, courier.CreateInput{
			CourierID:    item.CourierID,
			CourierType:  item.CourierType,
			Regions:      item.Regions,
			WorkingHours: item.WorkingHours,
		})
	}
	return out
}

func (req createOrdersRequest) toInputs() []order.CreateInput {
	out := make([]order.CreateInput, 0, len(req.Data))
	for _, item := range req.Data {
		out = append(out, order.CreateInput{
			OrderID:       item.OrderID,
			Weight:        item.Weight,
			Region:        item.Region,
			DeliveryHours: item.DeliveryHours,
		})
	}
	return out
}

func courierToResponse(c domain.Courier) courierDTO {
	regions := c.Regions
	if regions == nil {
		regions = []int64{}
	}
	hours := c.WorkingHours
	if hours == nil {
		hours = []string{}
	}
	return courierDTO{
		CourierID:    c.ID,
		CourierType:  string(c.Type),
		Regions:      regions,
		WorkingHours: hours,
		Rating:       c.Rating,
		Earnings:     c.Earnings,
	}
}

func couriersToResponse(list []domain.Courier) []courierDTO {
	out := make([]courierDTO, 0, len(list))
	for _, c := range list {
		out = append(out, courierToResponse(c))
	}
	return out
}

func orderToResponse(o domain.Order) orderDTO {
	hours := o.DeliveryHours
	if hours == nil {
		hours = []string{}
	}
	dto := orderDTO{
		OrderID:       o.ID,
		Weight:        o.Weight,
		Region:        o.Region,
		DeliveryHours: hours,
	}
	if o.CompleteTime != nil {
		s := o.CompleteTime.UTC().Format(time.RFC3339)
		dto.CompleteTime = &s
	}
	return dto
}

func idsToRefs(ids []int64) []idRef {
	out := make([]idRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, idRef{ID: id})
	}
	return out
}

func batchErrorsToResponse(be apperr.BatchErrors) []entityErrorsDTO {
	out := make([]entityErrorsDTO, 0, len(be))
	for _, ee := range be {
		out = append(out, entityErrorsDTO{ID: ee.ID, Errors: ee.Errors})
	}
	return out
}

func assignResultToResponse(res domain.AssignResult) assignOrdersResponse {
	resp := assignOrdersResponse{Orders: idsToRefs(res.OrderIDs)}
	if len(res.OrderIDs) > 0 {
		resp.AssignTime = res.AssignTime.UTC().Format(time.RFC3339)
	}
	return resp
}

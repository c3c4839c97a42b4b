package order

import (
	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
)

// CreateInput carries raw order creation fields. Nil means the field was not
// supplied at all, which is distinct from an invalid value.
type CreateInput struct {
	OrderID       *int64
	Weight        *float64
	Region        *int64
	DeliveryHours []string
}

type refs struct {
	takenIDs     map[int64]bool
	knownRegions map[int64]bool
}

// validateCreate checks every field of one creation input and collects every
// failure; construction proceeds only on a clean map.
func validateCreate(in CreateInput, r refs) (domain.Order, apperr.FieldErrors) {
	errs := apperr.FieldErrors{}
	var o domain.Order

	switch {
	case in.OrderID == nil:
		errs["order_id"] = apperr.Missing()
	case *in.OrderID <= 0:
		errs["order_id"] = apperr.InvalidFormat("id must be a positive integer")
	case r.takenIDs[*in.OrderID]:
		errs["order_id"] = apperr.InvalidReference("id already exists")
	default:
		o.ID = *in.OrderID
	}

	switch {
	case in.Weight == nil:
		errs["weight"] = apperr.Missing()
	case *in.Weight <= 0:
		errs["weight"] = apperr.InvalidFormat("weight must be positive")
	default:
		o.Weight = *in.Weight
	}

	switch {
	case in.Region == nil:
		errs["region"] = apperr.Missing()
	case *in.Region <= 0:
		errs["region"] = apperr.InvalidFormat("region id must be a positive integer")
	case !r.knownRegions[*in.Region]:
		errs["region"] = apperr.InvalidReference("unknown region")
	default:
		o.Region = *in.Region
	}

	// Interval strings are stored split-only; their format is not checked here.
	if in.DeliveryHours == nil {
		errs["delivery_hours"] = apperr.Missing()
	} else {
		o.DeliveryHours = in.DeliveryHours
	}

	if len(errs) > 0 {
		return domain.Order{}, errs
	}
	return o, nil
}

package courier

import (
	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
)

// CreateInput carries raw courier creation fields. Nil means the field was
// not supplied at all, which is distinct from an invalid value.
type CreateInput struct {
	CourierID    *int64
	CourierType  *string
	Regions      []int64
	WorkingHours []string
}

// refs is what validators need to check identifier references: ids already
// taken by stored couriers (or earlier members of the same batch) and the
// set of known regions.
type refs struct {
	takenIDs     map[int64]bool
	knownRegions map[int64]bool
}

// validateCreate checks every field of one creation input and collects every
// failure; construction proceeds only on a clean map.
func validateCreate(in CreateInput, r refs) (domain.Courier, apperr.FieldErrors) {
	errs := apperr.FieldErrors{}
	var c domain.Courier

	switch {
	case in.CourierID == nil:
		errs["courier_id"] = apperr.Missing()
	case *in.CourierID <= 0:
		errs["courier_id"] = apperr.InvalidFormat("id must be a positive integer")
	case r.takenIDs[*in.CourierID]:
		errs["courier_id"] = apperr.InvalidReference("id already exists")
	default:
		c.ID = *in.CourierID
	}

	switch {
	case in.CourierType == nil:
		errs["courier_type"] = apperr.Missing()
	case !domain.CourierType(*in.CourierType).Valid():
		errs["courier_type"] = apperr.InvalidFormat("unknown courier type")
	default:
		c.Type = domain.CourierType(*in.CourierType)
	}

	if len(in.Regions) == 0 {
		errs["regions"] = apperr.Missing()
	} else if fe, ok := checkRegions(in.Regions, r.knownRegions); !ok {
		errs["regions"] = fe
	} else {
		c.Regions = in.Regions
	}

	// Interval strings are stored split-only; their format is not checked here.
	if in.WorkingHours == nil {
		errs["working_hours"] = apperr.Missing()
	} else {
		c.WorkingHours = in.WorkingHours
	}

	if len(errs) > 0 {
		return domain.Courier{}, errs
	}
	return c, nil
}

func checkRegions(ids []int64, known map[int64]bool) (apperr.FieldError, bool) {
	for _, id := range ids {
		if id <= 0 {
			return apperr.InvalidFormat("region id must be a positive integer"), false
		}
		if !known[id] {
			return apperr.InvalidReference("unknown region"), false
		}
	}
	return apperr.FieldError{}, true
}

// validatePatch checks the supplied subset of patchable fields.
func validatePatch(u domain.PartialCourierUpdate, knownRegions map[int64]bool) apperr.FieldErrors {
	errs := apperr.FieldErrors{}

	if u.Type != nil && !u.Type.Valid() {
		errs["courier_type"] = apperr.InvalidFormat("unknown courier type")
	}
	if u.Regions != nil {
		if fe, ok := checkRegions(u.Regions, knownRegions); !ok {
			errs["regions"] = fe
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

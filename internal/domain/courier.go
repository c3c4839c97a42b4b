package domain

// CourierType represents the transport type of a courier.
type CourierType string

// List of known courier types
const (
	TypeFoot CourierType = "foot"
	TypeBike CourierType = "bike"
	TypeCar  CourierType = "car"
)

var allowedTypes = [...]CourierType{TypeFoot, TypeBike, TypeCar}

// Valid checks if the CourierType is one of the known types.
func (t CourierType) Valid() bool {
	for _, v := range allowedTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Capacity returns the lifting capacity of the courier type in kilograms.
func (t CourierType) Capacity() float64 {
	switch t {
	case TypeFoot:
		return 10
	case TypeBike:
		return 15
	case TypeCar:
		return 50
	}
	return 0
}

// EarningCoefficient returns the per-type multiplier applied to the flat
// 500-unit base payment of every completed order.
func (t CourierType) EarningCoefficient() int64 {
	switch t {
	case TypeFoot:
		return 2
	case TypeBike:
		return 5
	case TypeCar:
		return 9
	}
	return 0
}

// Courier represents a delivery courier. Rating and Earnings are derived
// values recomputed after every completed order.
type Courier struct {
	ID           int64
	Type         CourierType
	Regions      []int64
	WorkingHours []string
	Rating       float64
	Earnings     int64
}

// ServesRegion reports whether the courier services the given region.
func (c *Courier) ServesRegion(region int64) bool {
	for _, r := range c.Regions {
		if r == region {
			return true
		}
	}
	return false
}

// CanAssign reports whether the courier may take the order: the order weight
// must fit the type capacity, the order region must be serviced, and at least
// one delivery window must be compatible with a working window.
func (c *Courier) CanAssign(o *Order) bool {
	if o.Weight > c.Type.Capacity() {
		return false
	}
	if !c.ServesRegion(o.Region) {
		return false
	}
	return AnyWindowCompatible(c.WorkingHours, o.DeliveryHours)
}

// PartialCourierUpdate carries optional fields to patch a courier.
// A nil field means “do not change” that attribute.
type PartialCourierUpdate struct {
	ID           int64
	Type         *CourierType
	Regions      []int64
	WorkingHours []string
}

package domain

// Region is a geographic service area, purely referential.
type Region struct {
	ID   int64
	Name string
}

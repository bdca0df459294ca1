package models

// Sequence is the per-year certificate counter.
type Sequence struct {
	Year       int
	LastNumber int64
	Prefix     string
}

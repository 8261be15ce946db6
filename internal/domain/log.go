package domain

import "time"

// LogEntry is one persisted footprint computation. The derived kilogram fields
// are frozen at write time and never recomputed on read.
type LogEntry struct {
	ID     int64
	UserID string

	// Inputs as submitted. Date is an opaque caller-supplied label.
	Date           string
	TravelKm       float64
	TravelMode     string
	ElectricityKwh float64
	Diet           string

	// Engine outputs.
	TravelKg      float64
	ElectricityKg float64
	FoodKg        float64
	TotalKg       float64

	CreatedAt time.Time
}

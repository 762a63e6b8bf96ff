package model

import "github.com/google/uuid"

// ImportResult reports the outcome of a receipt import batch. Unusable
// receipts are skipped with a reason instead of failing the batch.
type ImportResult struct {
	Imported []ImportedRide `json:"imported"`
	Skipped  []SkippedRide  `json:"skipped"`
}

type ImportedRide struct {
	RideID     uuid.UUID `json:"ride_id"`
	Confidence float64   `json:"confidence"`
}

type SkippedRide struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

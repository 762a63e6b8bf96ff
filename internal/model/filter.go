package model

import (
	"time"

	"github.com/google/uuid"
)

type ReportFilter struct {
	Range      DateRange
	DriverID   *uuid.UUID
	VehicleIDs []uuid.UUID
}

func (f ReportFilter) ClampRange(defaultRange, maxRange int) ReportFilter {
	if f.Range.From.IsZero() || f.Range.To.IsZero() {
		f.Range.To = time.Now()
		f.Range.From = f.Range.To.AddDate(0, 0, -defaultRange)
	}
	if f.Range.To.Before(f.Range.From) {
		f.Range.To = f.Range.From.Add(24 * time.Hour)
	}
	if f.Range.To.Sub(f.Range.From) > time.Duration(maxRange)*24*time.Hour {
		f.Range.From = f.Range.To.Add(-time.Duration(maxRange) * 24 * time.Hour)
	}
	return f
}

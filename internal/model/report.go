package model

import (
	"time"

	"github.com/google/uuid"
)

type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// ReportMetrics is the full aggregation snapshot consumed by the dashboard.
// It is recomputed wholesale for every request and never mutated in place.
type ReportMetrics struct {
	Summary       ReportSummary         `json:"summary"`
	Sources       SourceBreakdown       `json:"sources"`
	DailyTrends   []DailyTrend          `json:"daily_trends"`
	Drivers       []DriverEfficiency    `json:"drivers"`
	Vehicles      []VehicleUtilization  `json:"vehicles"`
	Cancellations CancellationBreakdown `json:"cancellations"`
	PeakHours     PeakHourMatrix        `json:"peak_hours"`
	Payments      PaymentBreakdown      `json:"payments"`
	GeneratedFor  DateRange             `json:"generated_for"`
}

type ReportSummary struct {
	TotalRides      int64   `json:"total_rides"`
	CompletedRides  int64   `json:"completed_rides"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCommission float64 `json:"total_commission"`
	AveragePerRide  float64 `json:"average_per_ride"`
}

type SourceMetric struct {
	Rides   int64   `json:"rides"`
	Revenue float64 `json:"revenue"`
}

type SourceBreakdown struct {
	InDriver SourceMetric `json:"indriver"`
	External SourceMetric `json:"external"`
}

// DailyTrend is one calendar-day bucket, keyed by a fixed-width YYYY-MM-DD
// date so that lexicographic order equals chronological order.
type DailyTrend struct {
	Date            string  `json:"date"`
	TotalRides      int64   `json:"total_rides"`
	InDriverRides   int64   `json:"indriver_rides"`
	ExternalRides   int64   `json:"external_rides"`
	TotalRevenue    float64 `json:"total_revenue"`
	InDriverRevenue float64 `json:"indriver_revenue"`
	ExternalRevenue float64 `json:"external_revenue"`
}

type DriverEfficiency struct {
	DriverID       uuid.UUID `json:"driver_id"`
	DriverName     string    `json:"driver_name"`
	TotalRides     int64     `json:"total_rides"`
	CompletedRides int64     `json:"completed_rides"`
	Revenue        float64   `json:"revenue"`
	AvgPerRide     float64   `json:"avg_per_ride"`
	CompletionRate float64   `json:"completion_rate"`
}

type VehicleUtilization struct {
	VehicleID          uuid.UUID `json:"vehicle_id"`
	PlateNumber        string    `json:"plate_number"`
	Rides              int64     `json:"rides"`
	Revenue            float64   `json:"revenue"`
	ActiveDays         int64     `json:"active_days"`
	TotalDays          int64     `json:"total_days"`
	UtilizationPercent float64   `json:"utilization_percent"`
}

type CancellationBreakdown struct {
	ByPassenger      int64   `json:"by_passenger"`
	ByDriver         int64   `json:"by_driver"`
	TotalCancelled   int64   `json:"total_cancelled"`
	CancellationRate float64 `json:"cancellation_rate"`
}

// PeakHourMatrix counts completed rides by weekday (0=Sunday) and hour.
type PeakHourMatrix [7][24]int64

type PaymentBreakdown struct {
	Cash        int64 `json:"cash"`
	Nequi       int64 `json:"nequi"`
	Daviplata   int64 `json:"daviplata"`
	Bancolombia int64 `json:"bancolombia"`
	Other       int64 `json:"other"`
}

package report

import (
	"strings"

	"github.com/google/uuid"

	"github.com/stevenmunoz/wego-sub001/internal/model"
)

// Input carries everything the aggregation needs. The engine reads no
// ambient state: rides, lookup maps and the reporting window all arrive as
// arguments, so Aggregate is safe to call concurrently and always produces
// the same snapshot for the same input.
type Input struct {
	Rides         []model.Ride
	DriverNames   map[uuid.UUID]string
	VehiclePlates map[uuid.UUID]string
	Range         model.DateRange
}

// Aggregate folds the ride list once per dimension and assembles the full
// dashboard snapshot.
func Aggregate(in Input) model.ReportMetrics {
	return model.ReportMetrics{
		Summary:       Summarize(in.Rides),
		Sources:       BreakdownSources(in.Rides),
		DailyTrends:   DailyTrends(in.Rides),
		Drivers:       RankDrivers(in.Rides, in.DriverNames),
		Vehicles:      RankVehicles(in.Rides, in.VehiclePlates, in.Range),
		Cancellations: BreakdownCancellations(in.Rides),
		PeakHours:     PeakHours(in.Rides),
		Payments:      BreakdownPayments(in.Rides),
		GeneratedFor:  in.Range,
	}
}

// Summarize computes headline counts and revenue. Only completed rides
// contribute to financial sums; cancelled rides count toward TotalRides only.
func Summarize(rides []model.Ride) model.ReportSummary {
	var summary model.ReportSummary
	summary.TotalRides = int64(len(rides))
	for _, ride := range rides {
		if ride.Status != model.RideCompleted {
			continue
		}
		summary.CompletedRides++
		summary.TotalRevenue += ride.TotalReceived
		summary.TotalCommission += ride.ServiceCommission
	}
	summary.AveragePerRide = ratio(summary.TotalRevenue, float64(summary.CompletedRides))
	return summary
}

// BreakdownSources partitions completed rides into platform (indriver) and
// external work.
func BreakdownSources(rides []model.Ride) model.SourceBreakdown {
	var breakdown model.SourceBreakdown
	for _, ride := range rides {
		if ride.Status != model.RideCompleted {
			continue
		}
		if ride.Category.IsPlatform() {
			breakdown.InDriver.Rides++
			breakdown.InDriver.Revenue += ride.TotalReceived
		} else {
			breakdown.External.Rides++
			breakdown.External.Revenue += ride.TotalReceived
		}
	}
	return breakdown
}

func BreakdownCancellations(rides []model.Ride) model.CancellationBreakdown {
	var breakdown model.CancellationBreakdown
	for _, ride := range rides {
		switch ride.Status {
		case model.RideCancelledByPassenger:
			breakdown.ByPassenger++
		case model.RideCancelledByDriver:
			breakdown.ByDriver++
		}
	}
	breakdown.TotalCancelled = breakdown.ByPassenger + breakdown.ByDriver
	breakdown.CancellationRate = ratio(float64(breakdown.TotalCancelled), float64(len(rides))) * 100
	return breakdown
}

// BreakdownPayments buckets completed rides by payment method. Matching is
// case-insensitive and "efectivo" counts as cash; anything unrecognized
// lands in Other.
func BreakdownPayments(rides []model.Ride) model.PaymentBreakdown {
	var breakdown model.PaymentBreakdown
	for _, ride := range rides {
		if ride.Status != model.RideCompleted {
			continue
		}
		switch normalizePaymentMethod(ride.PaymentMethod) {
		case model.PaymentCash:
			breakdown.Cash++
		case model.PaymentNequi:
			breakdown.Nequi++
		case model.PaymentDaviplata:
			breakdown.Daviplata++
		case model.PaymentBancolombia:
			breakdown.Bancolombia++
		default:
			breakdown.Other++
		}
	}
	return breakdown
}

func normalizePaymentMethod(raw string) model.PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cash", "efectivo":
		return model.PaymentCash
	case "nequi":
		return model.PaymentNequi
	case "daviplata":
		return model.PaymentDaviplata
	case "bancolombia":
		return model.PaymentBancolombia
	default:
		return model.PaymentOther
	}
}

// DriverNames builds the driver lookup used to decorate report rows.
func DriverNames(drivers []model.Driver) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(drivers))
	for _, driver := range drivers {
		names[driver.ID] = driver.FullName
	}
	return names
}

// VehiclePlates builds the vehicle lookup used to decorate report rows.
func VehiclePlates(vehicles []model.Vehicle) map[uuid.UUID]string {
	plates := make(map[uuid.UUID]string, len(vehicles))
	for _, vehicle := range vehicles {
		plates[vehicle.ID] = vehicle.PlateNumber
	}
	return plates
}

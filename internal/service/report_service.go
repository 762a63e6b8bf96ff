package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/stevenmunoz/wego-sub001/internal/model"
	"github.com/stevenmunoz/wego-sub001/internal/report"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
)

// RideStore is the slice of the storage layer the services need.
type RideStore interface {
	RidesInRange(ctx context.Context, rng model.DateRange, driverID *uuid.UUID) ([]model.Ride, error)
	Drivers(ctx context.Context) ([]model.Driver, error)
	Vehicles(ctx context.Context) ([]model.Vehicle, error)
	InsertRides(ctx context.Context, rides []model.Ride) error
}

type ReportService struct {
	rides        RideStore
	finance      report.FinanceSource
	defaultRange int
	maxRange     int
}

func NewReportService(rides RideStore, finance report.FinanceSource, defaultRange, maxRange int) *ReportService {
	return &ReportService{
		rides:        rides,
		finance:      finance,
		defaultRange: defaultRange,
		maxRange:     maxRange,
	}
}

// GetOverview loads the rides and lookups for the window and runs the full
// aggregation. Drivers only ever see their own rides.
func (s *ReportService) GetOverview(ctx context.Context, principal model.Principal, filter model.ReportFilter) (*model.ReportMetrics, error) {
	filter = filter.ClampRange(s.defaultRange, s.maxRange)

	if principal.IsDriver() {
		if principal.DriverID == nil {
			return nil, ErrPermissionDenied
		}
		filter.DriverID = principal.DriverID
	}

	rides, err := s.rides.RidesInRange(ctx, filter.Range, filter.DriverID)
	if err != nil {
		return nil, err
	}
	drivers, err := s.rides.Drivers(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.rides.Vehicles(ctx)
	if err != nil {
		return nil, err
	}

	metrics := report.Aggregate(report.Input{
		Rides:         rides,
		DriverNames:   report.DriverNames(drivers),
		VehiclePlates: report.VehiclePlates(vehicles),
		Range:         filter.Range,
	})
	return &metrics, nil
}

// GetVehicleFinance runs the per-vehicle income/expense aggregation. When
// no vehicle ids are given the whole fleet is included. Vehicle finance is
// owner and admin territory.
func (s *ReportService) GetVehicleFinance(ctx context.Context, principal model.Principal, filter model.ReportFilter) (*model.VehicleFinanceReport, error) {
	if principal.IsDriver() {
		return nil, ErrPermissionDenied
	}

	filter = filter.ClampRange(s.defaultRange, s.maxRange)

	vehicleIDs := filter.VehicleIDs
	if len(vehicleIDs) == 0 {
		vehicles, err := s.rides.Vehicles(ctx)
		if err != nil {
			return nil, err
		}
		vehicleIDs = make([]uuid.UUID, 0, len(vehicles))
		for _, vehicle := range vehicles {
			vehicleIDs = append(vehicleIDs, vehicle.ID)
		}
	}

	result := report.VehicleFinance(ctx, s.finance, vehicleIDs, filter.Range)
	return &result, nil
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stevenmunoz/wego-sub001/internal/model"
)

type RideRepository struct {
	db *gorm.DB
}

func NewRideRepository(db *gorm.DB) *RideRepository {
	return &RideRepository{db: db}
}

type rideRow struct {
	ID                 uuid.UUID
	DriverID           *uuid.UUID
	VehicleID          *uuid.UUID
	RideDate           *time.Time
	RideTime           string
	Status             string
	Category           string
	PaymentMethod      string
	Fare               float64
	TotalReceived      float64
	ServiceCommission  float64
	CommissionPercent  float64
	TaxOnService       float64
	TotalPaid          float64
	NetIncome          float64
	PassengerName      string
	DestinationAddress string
	RatingGiven        int
	CreatedAt          time.Time
}

// RidesInRange loads rides whose date falls inside the reporting window.
// Rides with no date at all are included so status-only aggregations still
// see them. An optional driver id scopes the result to one driver.
func (r *RideRepository) RidesInRange(ctx context.Context, rng model.DateRange, driverID *uuid.UUID) ([]model.Ride, error) {
	var rows []rideRow

	query := r.db.WithContext(ctx).
		Table("rides").
		Where("(ride_date IS NULL OR ride_date BETWEEN ? AND ?)", rng.From, rng.To)

	if driverID != nil {
		query = query.Where("driver_id = ?", *driverID)
	}

	if err := query.Order("ride_date ASC, created_at ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	rides := make([]model.Ride, 0, len(rows))
	for _, row := range rows {
		rides = append(rides, model.Ride{
			ID:                 row.ID,
			DriverID:           row.DriverID,
			VehicleID:          row.VehicleID,
			Date:               row.RideDate,
			Time:               row.RideTime,
			Status:             model.RideStatus(row.Status),
			Category:           model.RideCategory(row.Category),
			PaymentMethod:      row.PaymentMethod,
			Fare:               row.Fare,
			TotalReceived:      row.TotalReceived,
			ServiceCommission:  row.ServiceCommission,
			CommissionPercent:  row.CommissionPercent,
			TaxOnService:       row.TaxOnService,
			TotalPaid:          row.TotalPaid,
			NetIncome:          row.NetIncome,
			PassengerName:      row.PassengerName,
			DestinationAddress: row.DestinationAddress,
			RatingGiven:        row.RatingGiven,
			CreatedAt:          row.CreatedAt,
		})
	}
	return rides, nil
}

func (r *RideRepository) Drivers(ctx context.Context) ([]model.Driver, error) {
	var rows []struct {
		ID       uuid.UUID
		FullName string
	}
	if err := r.db.WithContext(ctx).
		Table("drivers").
		Select("id, full_name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	drivers := make([]model.Driver, 0, len(rows))
	for _, row := range rows {
		drivers = append(drivers, model.Driver{ID: row.ID, FullName: row.FullName})
	}
	return drivers, nil
}

func (r *RideRepository) Vehicles(ctx context.Context) ([]model.Vehicle, error) {
	var rows []struct {
		ID          uuid.UUID
		PlateNumber string
	}
	if err := r.db.WithContext(ctx).
		Table("vehicles").
		Select("id, plate_number").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	vehicles := make([]model.Vehicle, 0, len(rows))
	for _, row := range rows {
		vehicles = append(vehicles, model.Vehicle{ID: row.ID, PlateNumber: row.PlateNumber})
	}
	return vehicles, nil
}

// InsertRides persists a batch of imported rides.
func (r *RideRepository) InsertRides(ctx context.Context, rides []model.Ride) error {
	if len(rides) == 0 {
		return nil
	}

	rows := make([]rideRow, 0, len(rides))
	for _, ride := range rides {
		rows = append(rows, rideRow{
			ID:                 ride.ID,
			DriverID:           ride.DriverID,
			VehicleID:          ride.VehicleID,
			RideDate:           ride.Date,
			RideTime:           ride.Time,
			Status:             string(ride.Status),
			Category:           string(ride.Category),
			PaymentMethod:      ride.PaymentMethod,
			Fare:               ride.Fare,
			TotalReceived:      ride.TotalReceived,
			ServiceCommission:  ride.ServiceCommission,
			CommissionPercent:  ride.CommissionPercent,
			TaxOnService:       ride.TaxOnService,
			TotalPaid:          ride.TotalPaid,
			NetIncome:          ride.NetIncome,
			PassengerName:      ride.PassengerName,
			DestinationAddress: ride.DestinationAddress,
			RatingGiven:        ride.RatingGiven,
			CreatedAt:          ride.CreatedAt,
		})
	}

	return r.db.WithContext(ctx).Table("rides").Create(&rows).Error
}

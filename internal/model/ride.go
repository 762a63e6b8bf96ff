package model

import (
	"time"

	"github.com/google/uuid"
)

type RideStatus string

const (
	RideCompleted            RideStatus = "completed"
	RideCancelledByPassenger RideStatus = "cancelled_by_passenger"
	RideCancelledByDriver    RideStatus = "cancelled_by_driver"
)

func (s RideStatus) IsCancelled() bool {
	return s == RideCancelledByPassenger || s == RideCancelledByDriver
}

type RideCategory string

const (
	CategoryInDriver    RideCategory = "indriver"
	CategoryExternal    RideCategory = "external"
	CategoryIndependent RideCategory = "independent"
	CategoryOther       RideCategory = "other"
)

// IsPlatform reports whether the ride was booked through InDriver.
// Everything else (external, independent, other) counts as external work.
func (c RideCategory) IsPlatform() bool {
	return c == CategoryInDriver
}

type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentNequi       PaymentMethod = "nequi"
	PaymentDaviplata   PaymentMethod = "daviplata"
	PaymentBancolombia PaymentMethod = "bancolombia"
	PaymentOther       PaymentMethod = "other"
)

// Ride is one completed or cancelled trip. Date may be missing when the
// record was imported from a receipt the OCR could not fully read; Time is
// the free-text time-of-day string as captured ("07:52", "19:03").
type Ride struct {
	ID        uuid.UUID  `json:"id"`
	DriverID  *uuid.UUID `json:"driver_id,omitempty"`
	VehicleID *uuid.UUID `json:"vehicle_id,omitempty"`

	Date *time.Time `json:"date,omitempty"`
	Time string     `json:"time"`

	Status   RideStatus   `json:"status"`
	Category RideCategory `json:"category"`

	PaymentMethod string `json:"payment_method"`

	Fare              float64 `json:"fare"`
	TotalReceived     float64 `json:"total_received"`
	ServiceCommission float64 `json:"service_commission"`
	CommissionPercent float64 `json:"commission_percent"`
	TaxOnService      float64 `json:"tax_on_service"`
	TotalPaid         float64 `json:"total_paid"`
	NetIncome         float64 `json:"net_income"`

	PassengerName      string `json:"passenger_name,omitempty"`
	DestinationAddress string `json:"destination_address,omitempty"`
	RatingGiven        int    `json:"rating_given,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type Driver struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}

type Vehicle struct {
	ID          uuid.UUID `json:"id"`
	PlateNumber string    `json:"plate_number"`
}

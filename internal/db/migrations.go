package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		full_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate_number TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS rides (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		driver_id UUID REFERENCES drivers(id),
		vehicle_id UUID REFERENCES vehicles(id),
		ride_date DATE,
		ride_time TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'indriver',
		payment_method TEXT NOT NULL DEFAULT '',
		fare NUMERIC(14,2) NOT NULL DEFAULT 0,
		total_received NUMERIC(14,2) NOT NULL DEFAULT 0,
		service_commission NUMERIC(14,2) NOT NULL DEFAULT 0,
		commission_percent NUMERIC(6,2) NOT NULL DEFAULT 0,
		tax_on_service NUMERIC(14,2) NOT NULL DEFAULT 0,
		total_paid NUMERIC(14,2) NOT NULL DEFAULT 0,
		net_income NUMERIC(14,2) NOT NULL DEFAULT 0,
		passenger_name TEXT NOT NULL DEFAULT '',
		destination_address TEXT NOT NULL DEFAULT '',
		rating_given SMALLINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_rides_date ON rides (ride_date);`,
	`CREATE INDEX IF NOT EXISTS idx_rides_driver ON rides (driver_id, ride_date);`,
	`CREATE INDEX IF NOT EXISTS idx_rides_vehicle ON rides (vehicle_id, ride_date);`,
	`CREATE TABLE IF NOT EXISTS vehicle_incomes (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id),
		amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		income_date TIMESTAMPTZ NOT NULL,
		income_type TEXT NOT NULL DEFAULT 'other',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicle_incomes_vehicle ON vehicle_incomes (vehicle_id, income_date);`,
	`CREATE TABLE IF NOT EXISTS vehicle_expenses (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id),
		amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		expense_date TIMESTAMPTZ NOT NULL,
		category TEXT NOT NULL DEFAULT 'other',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicle_expenses_vehicle ON vehicle_expenses (vehicle_id, expense_date);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

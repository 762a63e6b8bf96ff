package model

import (
	"time"

	"github.com/google/uuid"
)

type IncomeType string

const (
	IncomeRental        IncomeType = "rental"
	IncomeDriverPayment IncomeType = "driver_payment"
	IncomeBonus         IncomeType = "bonus"
	IncomeOther         IncomeType = "other"
)

// IncomeTypes lists the fixed income enumeration in display order.
var IncomeTypes = []IncomeType{
	IncomeRental,
	IncomeDriverPayment,
	IncomeBonus,
	IncomeOther,
}

type ExpenseCategory string

const (
	ExpenseFuel        ExpenseCategory = "fuel"
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseRepairs     ExpenseCategory = "repairs"
	ExpenseInsurance   ExpenseCategory = "insurance"
	ExpenseSoat        ExpenseCategory = "soat"
	ExpenseTaxes       ExpenseCategory = "taxes"
	ExpenseParking     ExpenseCategory = "parking"
	ExpenseWashing     ExpenseCategory = "washing"
	ExpenseFines       ExpenseCategory = "fines"
	ExpenseOther       ExpenseCategory = "other"
)

var ExpenseCategories = []ExpenseCategory{
	ExpenseFuel,
	ExpenseMaintenance,
	ExpenseRepairs,
	ExpenseInsurance,
	ExpenseSoat,
	ExpenseTaxes,
	ExpenseParking,
	ExpenseWashing,
	ExpenseFines,
	ExpenseOther,
}

type VehicleIncome struct {
	ID        uuid.UUID  `json:"id"`
	VehicleID uuid.UUID  `json:"vehicle_id"`
	Amount    float64    `json:"amount"`
	Date      time.Time  `json:"date"`
	Type      IncomeType `json:"type"`
}

type VehicleExpense struct {
	ID        uuid.UUID       `json:"id"`
	VehicleID uuid.UUID       `json:"vehicle_id"`
	Amount    float64         `json:"amount"`
	Date      time.Time       `json:"date"`
	Category  ExpenseCategory `json:"category"`
}

// VehicleFinanceReport sums vehicle income and expense records over a
// reporting window. Vehicles whose records could not be read contribute
// zero and are listed in Failures instead of failing the whole report.
type VehicleFinanceReport struct {
	TotalIncome        float64                     `json:"total_income"`
	TotalExpenses      float64                     `json:"total_expenses"`
	NetProfit          float64                     `json:"net_profit"`
	IncomeByType       map[IncomeType]float64      `json:"income_by_type"`
	ExpensesByCategory map[ExpenseCategory]float64 `json:"expenses_by_category"`
	Failures           []VehicleFinanceFailure     `json:"failures,omitempty"`
	GeneratedFor       DateRange                   `json:"generated_for"`
}

type VehicleFinanceFailure struct {
	VehicleID uuid.UUID `json:"vehicle_id"`
	Error     string    `json:"error"`
}

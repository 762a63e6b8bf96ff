package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stevenmunoz/wego-sub001/internal/model"
)

// FinanceRepository reads vehicle income and expense sub-collections. It
// satisfies report.FinanceSource.
type FinanceRepository struct {
	db *gorm.DB
}

func NewFinanceRepository(db *gorm.DB) *FinanceRepository {
	return &FinanceRepository{db: db}
}

func (r *FinanceRepository) IncomeRecords(ctx context.Context, vehicleID uuid.UUID, rng model.DateRange) ([]model.VehicleIncome, error) {
	var rows []struct {
		ID         uuid.UUID
		VehicleID  uuid.UUID
		Amount     float64
		IncomeDate time.Time
		IncomeType string
	}

	if err := r.db.WithContext(ctx).
		Table("vehicle_incomes").
		Select("id, vehicle_id, amount, income_date, income_type").
		Where("vehicle_id = ? AND income_date BETWEEN ? AND ?", vehicleID, rng.From, rng.To).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	incomes := make([]model.VehicleIncome, 0, len(rows))
	for _, row := range rows {
		incomes = append(incomes, model.VehicleIncome{
			ID:        row.ID,
			VehicleID: row.VehicleID,
			Amount:    row.Amount,
			Date:      row.IncomeDate,
			Type:      model.IncomeType(row.IncomeType),
		})
	}
	return incomes, nil
}

func (r *FinanceRepository) ExpenseRecords(ctx context.Context, vehicleID uuid.UUID, rng model.DateRange) ([]model.VehicleExpense, error) {
	var rows []struct {
		ID          uuid.UUID
		VehicleID   uuid.UUID
		Amount      float64
		ExpenseDate time.Time
		Category    string
	}

	if err := r.db.WithContext(ctx).
		Table("vehicle_expenses").
		Select("id, vehicle_id, amount, expense_date, category").
		Where("vehicle_id = ? AND expense_date BETWEEN ? AND ?", vehicleID, rng.From, rng.To).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	expenses := make([]model.VehicleExpense, 0, len(rows))
	for _, row := range rows {
		expenses = append(expenses, model.VehicleExpense{
			ID:        row.ID,
			VehicleID: row.VehicleID,
			Amount:    row.Amount,
			Date:      row.ExpenseDate,
			Category:  model.ExpenseCategory(row.Category),
		})
	}
	return expenses, nil
}

package report

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stevenmunoz/wego-sub001/internal/model"
)

// FinanceSource reads a vehicle's income and expense records for a window.
// The storage layer implements it; tests use in-memory fakes.
type FinanceSource interface {
	IncomeRecords(ctx context.Context, vehicleID uuid.UUID, rng model.DateRange) ([]model.VehicleIncome, error)
	ExpenseRecords(ctx context.Context, vehicleID uuid.UUID, rng model.DateRange) ([]model.VehicleExpense, error)
}

type vehicleFinance struct {
	incomes  []model.VehicleIncome
	expenses []model.VehicleExpense
	err      error
}

// VehicleFinance fans out one read pair per vehicle, joins, then reduces
// into category breakdowns and net profit. A failed read degrades that
// vehicle's contribution to zero and is recorded in Failures; it never
// aborts the whole report.
func VehicleFinance(ctx context.Context, src FinanceSource, vehicleIDs []uuid.UUID, rng model.DateRange) model.VehicleFinanceReport {
	fetched := make([]vehicleFinance, len(vehicleIDs))

	var wg sync.WaitGroup
	for i, id := range vehicleIDs {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			incomes, err := src.IncomeRecords(ctx, id, rng)
			if err != nil {
				fetched[i] = vehicleFinance{err: err}
				return
			}
			expenses, err := src.ExpenseRecords(ctx, id, rng)
			if err != nil {
				fetched[i] = vehicleFinance{err: err}
				return
			}
			fetched[i] = vehicleFinance{incomes: incomes, expenses: expenses}
		}(i, id)
	}
	wg.Wait()

	result := model.VehicleFinanceReport{
		IncomeByType:       make(map[model.IncomeType]float64, len(model.IncomeTypes)),
		ExpensesByCategory: make(map[model.ExpenseCategory]float64, len(model.ExpenseCategories)),
		GeneratedFor:       rng,
	}
	for _, incomeType := range model.IncomeTypes {
		result.IncomeByType[incomeType] = 0
	}
	for _, category := range model.ExpenseCategories {
		result.ExpensesByCategory[category] = 0
	}

	for i, vehicle := range fetched {
		if vehicle.err != nil {
			result.Failures = append(result.Failures, model.VehicleFinanceFailure{
				VehicleID: vehicleIDs[i],
				Error:     vehicle.err.Error(),
			})
			continue
		}
		for _, income := range vehicle.incomes {
			if !withinRange(income.Date, rng) {
				continue
			}
			result.TotalIncome += income.Amount
			result.IncomeByType[normalizeIncomeType(income.Type)] += income.Amount
		}
		for _, expense := range vehicle.expenses {
			if !withinRange(expense.Date, rng) {
				continue
			}
			result.TotalExpenses += expense.Amount
			result.ExpensesByCategory[normalizeExpenseCategory(expense.Category)] += expense.Amount
		}
	}

	result.NetProfit = result.TotalIncome - result.TotalExpenses
	return result
}

// withinRange checks the inclusive reporting window.
func withinRange(t time.Time, rng model.DateRange) bool {
	return !t.Before(rng.From) && !t.After(rng.To)
}

func normalizeIncomeType(incomeType model.IncomeType) model.IncomeType {
	for _, known := range model.IncomeTypes {
		if incomeType == known {
			return incomeType
		}
	}
	return model.IncomeOther
}

func normalizeExpenseCategory(category model.ExpenseCategory) model.ExpenseCategory {
	for _, known := range model.ExpenseCategories {
		if category == known {
			return category
		}
	}
	return model.ExpenseOther
}

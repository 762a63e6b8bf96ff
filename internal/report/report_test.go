package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenmunoz/wego-sub001/internal/model"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func completedRide(date *time.Time, received float64, category model.RideCategory) model.Ride {
	return model.Ride{
		ID:            uuid.New(),
		Date:          date,
		Status:        model.RideCompleted,
		Category:      category,
		TotalReceived: received,
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, model.ReportSummary{}, summary)
}

func TestSummarizeSkipsCancelledRevenue(t *testing.T) {
	date := datePtr(2024, time.January, 15)
	rides := []model.Ride{
		completedRide(date, 15000, model.CategoryInDriver),
		completedRide(date, 12000, model.CategoryInDriver),
		{ID: uuid.New(), Date: date, Status: model.RideCancelledByPassenger, Category: model.CategoryInDriver, TotalReceived: 9000},
	}

	summary := Summarize(rides)

	assert.Equal(t, int64(3), summary.TotalRides)
	assert.Equal(t, int64(2), summary.CompletedRides)
	assert.Equal(t, 27000.0, summary.TotalRevenue)
	assert.Equal(t, 13500.0, summary.AveragePerRide)
}

func TestBreakdownSourcesCollapsesExternalCategories(t *testing.T) {
	date := datePtr(2024, time.March, 1)
	rides := []model.Ride{
		completedRide(date, 10000, model.CategoryInDriver),
		completedRide(date, 8000, model.CategoryExternal),
		completedRide(date, 7000, model.CategoryIndependent),
		completedRide(date, 6000, model.CategoryOther),
	}

	breakdown := BreakdownSources(rides)

	assert.Equal(t, int64(1), breakdown.InDriver.Rides)
	assert.Equal(t, 10000.0, breakdown.InDriver.Revenue)
	assert.Equal(t, int64(3), breakdown.External.Rides)
	assert.Equal(t, 21000.0, breakdown.External.Revenue)
}

func TestBreakdownCancellationsCountConservation(t *testing.T) {
	date := datePtr(2024, time.June, 2)
	rides := []model.Ride{
		completedRide(date, 10000, model.CategoryInDriver),
		{ID: uuid.New(), Date: date, Status: model.RideCancelledByPassenger},
		{ID: uuid.New(), Date: date, Status: model.RideCancelledByDriver},
		{ID: uuid.New(), Date: date, Status: model.RideCancelledByDriver},
	}

	breakdown := BreakdownCancellations(rides)

	assert.Equal(t, int64(1), breakdown.ByPassenger)
	assert.Equal(t, int64(2), breakdown.ByDriver)
	assert.Equal(t, breakdown.ByPassenger+breakdown.ByDriver, breakdown.TotalCancelled)
	assert.InDelta(t, 75.0, breakdown.CancellationRate, 0.0001)
}

func TestBreakdownPaymentsEfectivoIsCash(t *testing.T) {
	date := datePtr(2024, time.May, 5)
	tests := []struct {
		method string
		want   func(model.PaymentBreakdown) int64
	}{
		{"Efectivo", func(b model.PaymentBreakdown) int64 { return b.Cash }},
		{"CASH", func(b model.PaymentBreakdown) int64 { return b.Cash }},
		{"Nequi", func(b model.PaymentBreakdown) int64 { return b.Nequi }},
		{"daviplata", func(b model.PaymentBreakdown) int64 { return b.Daviplata }},
		{"Bancolombia", func(b model.PaymentBreakdown) int64 { return b.Bancolombia }},
		{"tarjeta", func(b model.PaymentBreakdown) int64 { return b.Other }},
		{"", func(b model.PaymentBreakdown) int64 { return b.Other }},
	}

	for _, tc := range tests {
		ride := completedRide(date, 1000, model.CategoryInDriver)
		ride.PaymentMethod = tc.method
		breakdown := BreakdownPayments([]model.Ride{ride})
		assert.Equal(t, int64(1), tc.want(breakdown), "method %q", tc.method)
	}
}

func TestBreakdownPaymentsIgnoresCancelled(t *testing.T) {
	ride := model.Ride{ID: uuid.New(), Status: model.RideCancelledByDriver, PaymentMethod: "nequi"}

	breakdown := BreakdownPayments([]model.Ride{ride})

	assert.Equal(t, model.PaymentBreakdown{}, breakdown)
}

func TestDailyTrendsGroupsAndSorts(t *testing.T) {
	first := datePtr(2024, time.January, 15)
	later := datePtr(2024, time.February, 1)
	rides := []model.Ride{
		completedRide(later, 5000, model.CategoryExternal),
		completedRide(first, 15000, model.CategoryInDriver),
		completedRide(first, 12000, model.CategoryInDriver),
		{ID: uuid.New(), Date: first, Status: model.RideCancelledByPassenger, Category: model.CategoryInDriver, TotalReceived: 8000},
		{ID: uuid.New(), Status: model.RideCompleted, Category: model.CategoryInDriver, TotalReceived: 4000}, // no date
	}

	trends := DailyTrends(rides)

	require.Len(t, trends, 2)
	assert.Equal(t, "2024-01-15", trends[0].Date)
	assert.Equal(t, int64(3), trends[0].TotalRides)
	assert.Equal(t, int64(3), trends[0].InDriverRides)
	assert.Equal(t, 27000.0, trends[0].TotalRevenue)
	assert.Equal(t, 27000.0, trends[0].InDriverRevenue)
	assert.Equal(t, "2024-02-01", trends[1].Date)
	assert.Equal(t, int64(1), trends[1].ExternalRides)
	assert.Equal(t, 5000.0, trends[1].ExternalRevenue)
}

func TestRankDriversSkipsMissingIDAndSortsByCompleted(t *testing.T) {
	date := datePtr(2024, time.April, 10)
	busy := uuid.New()
	slow := uuid.New()
	names := map[uuid.UUID]string{busy: "Carlos", slow: "Andrea"}

	rides := []model.Ride{
		{ID: uuid.New(), DriverID: &slow, Date: date, Status: model.RideCompleted, TotalReceived: 20000},
		{ID: uuid.New(), DriverID: &slow, Date: date, Status: model.RideCancelledByDriver},
		{ID: uuid.New(), DriverID: &busy, Date: date, Status: model.RideCompleted, TotalReceived: 10000},
		{ID: uuid.New(), DriverID: &busy, Date: date, Status: model.RideCompleted, TotalReceived: 14000},
		{ID: uuid.New(), Date: date, Status: model.RideCompleted, TotalReceived: 9999}, // no driver
	}

	result := RankDrivers(rides, names)

	require.Len(t, result, 2)
	assert.Equal(t, "Carlos", result[0].DriverName)
	assert.Equal(t, int64(2), result[0].CompletedRides)
	assert.Equal(t, 12000.0, result[0].AvgPerRide)
	assert.InDelta(t, 100.0, result[0].CompletionRate, 0.0001)
	assert.Equal(t, "Andrea", result[1].DriverName)
	assert.InDelta(t, 50.0, result[1].CompletionRate, 0.0001)
}

func TestRankDriversTiesKeepFirstSeenOrder(t *testing.T) {
	date := datePtr(2024, time.April, 11)
	first := uuid.New()
	second := uuid.New()

	rides := []model.Ride{
		{ID: uuid.New(), DriverID: &first, Date: date, Status: model.RideCompleted, TotalReceived: 5000},
		{ID: uuid.New(), DriverID: &second, Date: date, Status: model.RideCompleted, TotalReceived: 5000},
	}

	result := RankDrivers(rides, nil)

	require.Len(t, result, 2)
	assert.Equal(t, first, result[0].DriverID)
	assert.Equal(t, second, result[1].DriverID)
}

func TestRankVehiclesUtilization(t *testing.T) {
	vehicle := uuid.New()
	plates := map[uuid.UUID]string{vehicle: "ABC123"}
	rng := model.DateRange{
		From: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
	}

	rides := []model.Ride{}
	for _, day := range []int{2, 2, 5, 9} {
		ride := completedRide(datePtr(2024, time.January, day), 10000, model.CategoryInDriver)
		ride.VehicleID = &vehicle
		rides = append(rides, ride)
	}

	result := RankVehicles(rides, plates, rng)

	require.Len(t, result, 1)
	assert.Equal(t, "ABC123", result[0].PlateNumber)
	assert.Equal(t, int64(4), result[0].Rides)
	assert.Equal(t, int64(3), result[0].ActiveDays)
	assert.Equal(t, int64(10), result[0].TotalDays)
	assert.InDelta(t, 30.0, result[0].UtilizationPercent, 0.0001)
}

func TestRankVehiclesIgnoresCancelled(t *testing.T) {
	vehicle := uuid.New()
	ride := model.Ride{
		ID:        uuid.New(),
		VehicleID: &vehicle,
		Date:      datePtr(2024, time.January, 2),
		Status:    model.RideCancelledByPassenger,
	}

	result := RankVehicles([]model.Ride{ride}, nil, model.DateRange{})

	assert.Empty(t, result)
}

func TestPeakHoursMatrix(t *testing.T) {
	// 2024-01-15 is a Monday (weekday 1).
	monday := datePtr(2024, time.January, 15)

	rides := []model.Ride{
		{ID: uuid.New(), Date: monday, Time: "07:52", Status: model.RideCompleted},
		{ID: uuid.New(), Date: monday, Time: "07:10", Status: model.RideCompleted},
		{ID: uuid.New(), Date: monday, Time: "19:03", Status: model.RideCompleted},
		{ID: uuid.New(), Date: monday, Time: "", Status: model.RideCompleted},
		{ID: uuid.New(), Date: monday, Time: "08:00", Status: model.RideCancelledByDriver},
		{ID: uuid.New(), Time: "09:00", Status: model.RideCompleted}, // no date
	}

	matrix := PeakHours(rides)

	assert.Equal(t, int64(2), matrix[1][7])
	assert.Equal(t, int64(1), matrix[1][19])
	assert.Equal(t, int64(1), matrix[1][0])
	assert.Equal(t, int64(0), matrix[1][8])

	var total int64
	for day := range matrix {
		for hour := range matrix[day] {
			require.GreaterOrEqual(t, matrix[day][hour], int64(0))
			total += matrix[day][hour]
		}
	}
	assert.Equal(t, int64(4), total, "sum equals completed rides with a parseable date")
}

func TestHourOf(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"07:52", 7},
		{"19:03", 19},
		{"7:05", 7},
		{"23:59", 23},
		{"", 0},
		{"mediodía", 0},
		{"a las 9", 9},
		{"99:00", 23},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, hourOf(tc.raw), "raw %q", tc.raw)
	}
}

func TestInclusiveDays(t *testing.T) {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(10), inclusiveDays(model.DateRange{From: from, To: from.AddDate(0, 0, 9)}))
	assert.Equal(t, int64(1), inclusiveDays(model.DateRange{From: from, To: from}))
	assert.Equal(t, int64(0), inclusiveDays(model.DateRange{From: from, To: from.AddDate(0, 0, -1)}))
	assert.Equal(t, int64(0), inclusiveDays(model.DateRange{}))
}

func TestInclusiveDaysCountsCalendarDays(t *testing.T) {
	bogota := time.FixedZone("-05", -5*3600)

	// Jan 1 23:30 through Jan 3 00:30 local time touches three calendar days.
	rng := model.DateRange{
		From: time.Date(2024, time.January, 1, 23, 30, 0, 0, bogota),
		To:   time.Date(2024, time.January, 3, 0, 30, 0, 0, bogota),
	}
	assert.Equal(t, int64(3), inclusiveDays(rng))

	// Non-midnight bounds on the same day still count as one day.
	sameDay := model.DateRange{
		From: time.Date(2024, time.June, 5, 18, 0, 0, 0, bogota),
		To:   time.Date(2024, time.June, 5, 23, 0, 0, 0, bogota),
	}
	assert.Equal(t, int64(1), inclusiveDays(sameDay))
}

func TestAggregateEmptyInput(t *testing.T) {
	rng := model.DateRange{
		From: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}

	metrics := Aggregate(Input{Range: rng})

	assert.Equal(t, model.ReportSummary{}, metrics.Summary)
	assert.Equal(t, model.SourceBreakdown{}, metrics.Sources)
	assert.Empty(t, metrics.DailyTrends)
	assert.Empty(t, metrics.Drivers)
	assert.Empty(t, metrics.Vehicles)
	assert.Equal(t, model.CancellationBreakdown{}, metrics.Cancellations)
	assert.Equal(t, model.PeakHourMatrix{}, metrics.PeakHours)
	assert.Equal(t, model.PaymentBreakdown{}, metrics.Payments)
	assert.Equal(t, rng, metrics.GeneratedFor)
}

func TestAggregateScenario(t *testing.T) {
	date := datePtr(2024, time.January, 15)
	driver := uuid.New()

	rides := []model.Ride{
		{ID: uuid.New(), DriverID: &driver, Date: date, Time: "08:15", Status: model.RideCompleted, Category: model.CategoryInDriver, TotalReceived: 15000, ServiceCommission: 1425, PaymentMethod: "Efectivo"},
		{ID: uuid.New(), DriverID: &driver, Date: date, Time: "14:30", Status: model.RideCompleted, Category: model.CategoryInDriver, TotalReceived: 12000, ServiceCommission: 1140, PaymentMethod: "nequi"},
		{ID: uuid.New(), DriverID: &driver, Date: date, Time: "20:00", Status: model.RideCancelledByPassenger, Category: model.CategoryInDriver},
	}

	in := Input{
		Rides:       rides,
		DriverNames: map[uuid.UUID]string{driver: "Carlos"},
		Range: model.DateRange{
			From: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	metrics := Aggregate(in)

	assert.Equal(t, int64(2), metrics.Summary.CompletedRides)
	assert.Equal(t, 27000.0, metrics.Summary.TotalRevenue)
	assert.Equal(t, int64(1), metrics.Cancellations.ByPassenger)
	assert.InDelta(t, 33.33, metrics.Cancellations.CancellationRate, 0.01)

	require.Len(t, metrics.DailyTrends, 1)
	assert.Equal(t, "2024-01-15", metrics.DailyTrends[0].Date)
	assert.Equal(t, int64(3), metrics.DailyTrends[0].TotalRides)
	assert.Equal(t, int64(3), metrics.DailyTrends[0].InDriverRides)
	assert.Equal(t, 27000.0, metrics.DailyTrends[0].TotalRevenue)

	assert.Equal(t, int64(1), metrics.Payments.Cash)
	assert.Equal(t, int64(1), metrics.Payments.Nequi)

	// Same input, same snapshot.
	assert.Equal(t, metrics, Aggregate(in))
}

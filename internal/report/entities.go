package report

import (
	"sort"

	"github.com/google/uuid"

	"github.com/stevenmunoz/wego-sub001/internal/model"
)

// RankDrivers groups rides by driver and derives per-driver efficiency.
// Rides without a driver id are skipped. The list is sorted descending by
// completed ride count; ties keep the order in which drivers first appear
// in the ride list.
func RankDrivers(rides []model.Ride, names map[uuid.UUID]string) []model.DriverEfficiency {
	grouped := make(map[uuid.UUID]*model.DriverEfficiency)
	order := make([]uuid.UUID, 0)

	for _, ride := range rides {
		if ride.DriverID == nil {
			continue
		}
		id := *ride.DriverID
		entry, exists := grouped[id]
		if !exists {
			entry = &model.DriverEfficiency{
				DriverID:   id,
				DriverName: names[id],
			}
			grouped[id] = entry
			order = append(order, id)
		}
		entry.TotalRides++
		if ride.Status == model.RideCompleted {
			entry.CompletedRides++
			entry.Revenue += ride.TotalReceived
		}
	}

	result := make([]model.DriverEfficiency, 0, len(order))
	for _, id := range order {
		entry := grouped[id]
		entry.AvgPerRide = ratio(entry.Revenue, float64(entry.CompletedRides))
		entry.CompletionRate = ratio(float64(entry.CompletedRides), float64(entry.TotalRides)) * 100
		result = append(result, *entry)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CompletedRides > result[j].CompletedRides
	})
	return result
}

// RankVehicles groups completed rides by vehicle and derives utilization
// over the reporting window: the share of calendar days in the window on
// which the vehicle completed at least one ride.
func RankVehicles(rides []model.Ride, plates map[uuid.UUID]string, rng model.DateRange) []model.VehicleUtilization {
	type vehicleAcc struct {
		util model.VehicleUtilization
		days map[string]struct{}
	}

	grouped := make(map[uuid.UUID]*vehicleAcc)
	order := make([]uuid.UUID, 0)

	for _, ride := range rides {
		if ride.Status != model.RideCompleted || ride.VehicleID == nil {
			continue
		}
		id := *ride.VehicleID
		acc, exists := grouped[id]
		if !exists {
			acc = &vehicleAcc{
				util: model.VehicleUtilization{VehicleID: id, PlateNumber: plates[id]},
				days: make(map[string]struct{}),
			}
			grouped[id] = acc
			order = append(order, id)
		}
		acc.util.Rides++
		acc.util.Revenue += ride.TotalReceived
		if key, ok := dayKey(ride.Date); ok {
			acc.days[key] = struct{}{}
		}
	}

	totalDays := inclusiveDays(rng)
	result := make([]model.VehicleUtilization, 0, len(order))
	for _, id := range order {
		acc := grouped[id]
		acc.util.ActiveDays = int64(len(acc.days))
		acc.util.TotalDays = totalDays
		acc.util.UtilizationPercent = ratio(float64(acc.util.ActiveDays), float64(totalDays)) * 100
		result = append(result, acc.util)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Rides > result[j].Rides
	})
	return result
}

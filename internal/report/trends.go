package report

import (
	"sort"

	"github.com/stevenmunoz/wego-sub001/internal/model"
)

// DailyTrends groups every ride (completed or not) by calendar day. Revenue
// fields accumulate for completed rides only. Rides without a parseable date
// are skipped. The result is sorted ascending by date key; the key is
// fixed-width ISO so lexicographic order is chronological.
func DailyTrends(rides []model.Ride) []model.DailyTrend {
	buckets := make(map[string]*model.DailyTrend)
	for _, ride := range rides {
		key, ok := dayKey(ride.Date)
		if !ok {
			continue
		}
		bucket, exists := buckets[key]
		if !exists {
			bucket = &model.DailyTrend{Date: key}
			buckets[key] = bucket
		}

		bucket.TotalRides++
		platform := ride.Category.IsPlatform()
		if platform {
			bucket.InDriverRides++
		} else {
			bucket.ExternalRides++
		}

		if ride.Status != model.RideCompleted {
			continue
		}
		bucket.TotalRevenue += ride.TotalReceived
		if platform {
			bucket.InDriverRevenue += ride.TotalReceived
		} else {
			bucket.ExternalRevenue += ride.TotalReceived
		}
	}

	trends := make([]model.DailyTrend, 0, len(buckets))
	for _, bucket := range buckets {
		trends = append(trends, *bucket)
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Date < trends[j].Date
	})
	return trends
}

package report

import (
	"github.com/stevenmunoz/wego-sub001/internal/model"
)

// PeakHours fills the 7x24 weekday/hour matrix from completed rides. Only
// rides with a parseable date contribute; the hour comes from the first one-
// or two-digit token of the free-text time field. Rides whose time cannot be
// parsed fall into hour 0, matching the source data model (a ride logged
// without a time shows up as a midnight ride).
func PeakHours(rides []model.Ride) model.PeakHourMatrix {
	var matrix model.PeakHourMatrix
	for _, ride := range rides {
		if ride.Status != model.RideCompleted {
			continue
		}
		if ride.Date == nil || ride.Date.IsZero() {
			continue
		}
		weekday := int(ride.Date.Weekday())
		matrix[weekday][hourOf(ride.Time)]++
	}
	return matrix
}

// hourOf extracts the hour from a free-text "HH:mm"-like string: the first
// run of up to two digits, clamped to [0,23]. Malformed input yields 0.
func hourOf(raw string) int {
	hour := 0
	digits := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			if digits > 0 {
				break
			}
			continue
		}
		hour = hour*10 + int(r-'0')
		digits++
		if digits == 2 {
			break
		}
	}
	if digits == 0 {
		return 0
	}
	if hour > 23 {
		return 23
	}
	return hour
}

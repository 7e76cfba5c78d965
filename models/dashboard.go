package models

import (
	"math"
	"time"
)

// KpiValue pairs a count with its change against the previous period, in
// percent rounded to two decimals.
type KpiValue struct {
	Count         int
	PercentChange float64
}

type CalendarDay struct {
	Date     time.Time
	Bookings int
}

type BookingSummaryDay struct {
	Date      time.Time
	Booked    int
	Cancelled int
}

type DashboardStats struct {
	TotalCars       KpiValue
	TotalCustomers  KpiValue
	TodaysPickups   KpiValue
	TodaysReturns   KpiValue
	OngoingBookings KpiValue
	Calendar        []CalendarDay
	BookingSummary  []BookingSummaryDay
}

// SafePercentChange avoids division by zero: a previous period of zero counts
// as no change when the current period is also zero, otherwise as +100%.
func SafePercentChange(current, previous int) float64 {
	if previous == 0 {
		if current == 0 {
			return 0.0
		}
		return 100.0
	}
	change := float64(current-previous) / float64(previous) * 100
	return math.Round(change*100) / 100
}

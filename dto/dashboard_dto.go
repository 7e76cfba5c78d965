package dto

import (
	"github.com/driveline/rental-backend/models"
	"github.com/driveline/rental-backend/pure_utils"
)

type APIKpiValue struct {
	Count         int     `json:"count"`
	PercentChange float64 `json:"percent_change"`
}

type APICalendarDay struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
}

type APIBookingSummaryDay struct {
	Date      string `json:"date"`
	Booked    int    `json:"booked"`
	Cancelled int    `json:"cancelled"`
}

type APIDashboardStats struct {
	TotalCars       APIKpiValue            `json:"total_cars"`
	TotalCustomers  APIKpiValue            `json:"total_customers"`
	TodaysPickups   APIKpiValue            `json:"todays_pickups"`
	TodaysReturns   APIKpiValue            `json:"todays_returns"`
	OngoingBookings APIKpiValue            `json:"ongoing_bookings"`
	Calendar        []APICalendarDay       `json:"calendar"`
	BookingSummary  []APIBookingSummaryDay `json:"booking_summary"`
}

func AdaptDashboardStatsDto(stats models.DashboardStats) APIDashboardStats {
	return APIDashboardStats{
		TotalCars:       adaptKpiValue(stats.TotalCars),
		TotalCustomers:  adaptKpiValue(stats.TotalCustomers),
		TodaysPickups:   adaptKpiValue(stats.TodaysPickups),
		TodaysReturns:   adaptKpiValue(stats.TodaysReturns),
		OngoingBookings: adaptKpiValue(stats.OngoingBookings),
		Calendar: pure_utils.Map(stats.Calendar, func(day models.CalendarDay) APICalendarDay {
			return APICalendarDay{Date: FormatDate(day.Date), Bookings: day.Bookings}
		}),
		BookingSummary: pure_utils.Map(stats.BookingSummary,
			func(day models.BookingSummaryDay) APIBookingSummaryDay {
				return APIBookingSummaryDay{
					Date:      FormatDate(day.Date),
					Booked:    day.Booked,
					Cancelled: day.Cancelled,
				}
			}),
	}
}

func adaptKpiValue(v models.KpiValue) APIKpiValue {
	return APIKpiValue{Count: v.Count, PercentChange: v.PercentChange}
}

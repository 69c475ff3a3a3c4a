package stats

import (
	"time"

	"github.com/celosalong/salon-booking-api/internal/catalog"
	"github.com/celosalong/salon-booking-api/internal/domain/booking"
	"github.com/celosalong/salon-booking-api/internal/models"
	"github.com/celosalong/salon-booking-api/internal/store"
)

// Every figure here is a pure function of the current collection snapshot.
// Nothing is maintained incrementally; each call rescans its input.

var swedishDayNames = []string{"Sön", "Mån", "Tis", "Ons", "Tor", "Fre", "Lör"}

const dateLayout = "2006-01-02"

// servicePrice looks up the catalog price, 0 for an unknown id so stale
// records never break an aggregate.
func servicePrice(serviceID string) float64 {
	if svc, ok := catalog.ServiceByID(serviceID); ok {
		return svc.Price
	}
	return 0
}

// Counters computes the KPI row aggregate of the booking repository.
func Counters(bookings []models.Booking, now time.Time) store.BookingCounters {
	today := now.Format(dateLayout)
	month := today[:7]

	var c store.BookingCounters
	c.TotalBookings = len(bookings)

	for _, b := range bookings {
		if b.Date == today {
			c.TodayCount++
		}
		inMonth := len(b.Date) >= 7 && b.Date[:7] == month
		if inMonth {
			c.MonthCount++
		}

		switch booking.Status(b.Status) {
		case booking.StatusPending:
			c.PendingCount++
		case booking.StatusCompleted:
			c.CompletedCount++
			if inMonth {
				c.MonthRevenue += servicePrice(b.ServiceID)
			}
		}
	}

	return c
}

type ReviewSummary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// Reviews averages visible ratings only. Average is 0 for an empty visible
// set, never NaN.
func Reviews(reviews []models.Review) ReviewSummary {
	var sum, count int
	for _, r := range reviews {
		if !r.IsVisible {
			continue
		}
		count++
		sum += r.Rating
	}

	if count == 0 {
		return ReviewSummary{}
	}
	return ReviewSummary{
		Count:   count,
		Average: float64(sum) / float64(count),
	}
}

type RevenuePoint struct {
	Name  string  `json:"name"`
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type CountPoint struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ServiceCount struct {
	ServiceID string `json:"service_id"`
	Name      string `json:"name"`
	Value     int    `json:"value"`
}

type StatusCount struct {
	Status string `json:"status"`
	Value  int    `json:"value"`
}

type RecentBooking struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Service string  `json:"service"`
	Date    string  `json:"date"`
	Time    string  `json:"time"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}

type KPIs struct {
	ConfirmedRevenue float64 `json:"confirmed_revenue"`
	MonthBookings    int     `json:"month_bookings"`
	PendingBookings  int     `json:"pending_bookings"`
	Rating           float64 `json:"rating"`
}

type Dashboard struct {
	KPIs                KPIs                  `json:"kpis"`
	RevenueData         []RevenuePoint        `json:"revenue_data"`
	BookingsPerDay      []CountPoint          `json:"bookings_per_day"`
	RecentBookings      []RecentBooking       `json:"recent_bookings"`
	ServiceDistribution []ServiceCount        `json:"service_distribution"`
	StatusDistribution  []StatusCount         `json:"status_distribution"`
	Counters            store.BookingCounters `json:"counters"`
	Reviews             ReviewSummary         `json:"reviews"`
}

// BuildDashboard derives the full admin dashboard payload. bookings is the
// repository snapshot, newest created first (GetAll order), which also
// fixes the recent-bookings section.
func BuildDashboard(bookings []models.Booking, reviews []models.Review, now time.Time) Dashboard {
	d := Dashboard{
		Counters: Counters(bookings, now),
		Reviews:  Reviews(reviews),
	}

	// Last 7 days, oldest first.
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dateStr := day.Format(dateLayout)
		name := swedishDayNames[int(day.Weekday())]

		var revenue float64
		var count int
		for _, b := range bookings {
			if b.Date != dateStr {
				continue
			}
			if booking.Status(b.Status) == booking.StatusCompleted {
				revenue += servicePrice(b.ServiceID)
			}
			if booking.Status(b.Status) != booking.StatusCancelled {
				count++
			}
		}

		d.RevenueData = append(d.RevenueData, RevenuePoint{Name: name, Date: dateStr, Total: revenue})
		d.BookingsPerDay = append(d.BookingsPerDay, CountPoint{Name: name, Date: dateStr, Count: count})
	}

	for _, b := range bookings {
		if len(d.RecentBookings) == 10 {
			break
		}
		svcName := b.ServiceID
		if svc, ok := catalog.ServiceByID(b.ServiceID); ok {
			svcName = svc.Name
		}
		d.RecentBookings = append(d.RecentBookings, RecentBooking{
			ID:      b.ID,
			Name:    b.CustomerName,
			Service: svcName,
			Date:    b.Date,
			Time:    b.Time,
			Amount:  servicePrice(b.ServiceID),
			Status:  b.Status,
		})
	}

	for _, svc := range catalog.Services() {
		var n int
		for _, b := range bookings {
			if b.ServiceID == svc.ID && booking.Status(b.Status) != booking.StatusCancelled {
				n++
			}
		}
		d.ServiceDistribution = append(d.ServiceDistribution, ServiceCount{
			ServiceID: svc.ID,
			Name:      svc.Name,
			Value:     n,
		})
	}

	// Zero-filled, all four statuses always present.
	for _, st := range booking.AllStatuses() {
		var n int
		for _, b := range bookings {
			if booking.Status(b.Status) == st {
				n++
			}
		}
		d.StatusDistribution = append(d.StatusDistribution, StatusCount{
			Status: string(st),
			Value:  n,
		})
	}

	var confirmed float64
	for _, b := range bookings {
		switch booking.Status(b.Status) {
		case booking.StatusConfirmed, booking.StatusCompleted:
			confirmed += servicePrice(b.ServiceID)
		}
	}

	d.KPIs = KPIs{
		ConfirmedRevenue: confirmed,
		MonthBookings:    d.Counters.MonthCount,
		PendingBookings:  d.Counters.PendingCount,
		Rating:           d.Reviews.Average,
	}

	return d
}

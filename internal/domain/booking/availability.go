package booking

import (
	"time"

	"github.com/celosalong/salon-booking-api/internal/models"
	"github.com/celosalong/salon-booking-api/internal/schedule"
)

const (
	// SlotCapacity is the number of concurrent non-cancelled bookings a
	// single half-hour slot can hold.
	SlotCapacity = 2

	// LeadTimeMinutes is the minimum buffer between "now" and the first
	// slot offered for the current day.
	LeadTimeMinutes = 30
)

// Slot is computed per query and never persisted.
type Slot struct {
	Time      string `json:"time"`
	Count     int    `json:"count"`
	Available bool   `json:"available"`
}

// AvailableSlots computes the bookable slots for a date. Fully deterministic
// given (date, now, bookings); callers inject now for testability.
//
// bookings must be that date's records; cancelled ones never count against
// capacity. Past dates are not rejected here — only "is this exactly today"
// is special-cased, and the caller constrains the date range.
func AvailableSlots(date, now time.Time, bookings []models.Booking) []Slot {
	base := schedule.SlotsFor(date.Weekday())

	if sameDay(date, now) {
		cutoff := now.Hour()*60 + now.Minute() + LeadTimeMinutes
		filtered := base[:0]
		for _, t := range base {
			if slotMinutes(t) >= cutoff {
				filtered = append(filtered, t)
			}
		}
		base = filtered
	}

	counts := make(map[string]int)
	for _, b := range bookings {
		if Status(b.Status) == StatusCancelled {
			continue
		}
		counts[b.Time]++
	}

	slots := make([]Slot, 0, len(base))
	for _, t := range base {
		n := counts[t]
		slots = append(slots, Slot{
			Time:      t,
			Count:     n,
			Available: n < SlotCapacity,
		})
	}

	return slots
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// slotMinutes converts "HH:mm" to minutes since midnight. Slot strings come
// from the schedule package and are always well formed.
func slotMinutes(hm string) int {
	t, _ := time.Parse("15:04", hm)
	return t.Hour()*60 + t.Minute()
}

package schedule

import (
	"fmt"
	"time"
)

// Weekly schedule of the salon. Slots are the canonical bookable half-hour
// start times; OpenHour/CloseHour drive the "is currently open" display.

var weekdaySlots = []string{
	"10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30", "18:00", "18:30",
}

var sundaySlots = []string{
	"10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
	"13:00", "13:30", "14:00", "14:30",
}

// SlotsFor returns the base slot sequence for a day of week. Total: every
// weekday maps to one of the two sequences.
func SlotsFor(day time.Weekday) []string {
	base := weekdaySlots
	if day == time.Sunday {
		base = sundaySlots
	}
	out := make([]string, len(base))
	copy(out, base)
	return out
}

type OpeningHours struct {
	Day       string `json:"day"`
	Hours     string `json:"hours"`
	OpenHour  int    `json:"-"`
	CloseHour int    `json:"-"`
}

// Ordered Monday first, matching the printed opening hours sign.
var openingHours = []OpeningHours{
	{Day: "Måndag", Hours: "10–19", OpenHour: 10, CloseHour: 19},
	{Day: "Tisdag", Hours: "10–19", OpenHour: 10, CloseHour: 19},
	{Day: "Onsdag", Hours: "10–19", OpenHour: 10, CloseHour: 19},
	{Day: "Torsdag", Hours: "10–19", OpenHour: 10, CloseHour: 19},
	{Day: "Fredag", Hours: "10–19", OpenHour: 10, CloseHour: 19},
	{Day: "Lördag", Hours: "10–19", OpenHour: 10, CloseHour: 19},
	{Day: "Söndag", Hours: "10–15", OpenHour: 10, CloseHour: 15},
}

func Hours() []OpeningHours {
	out := make([]OpeningHours, len(openingHours))
	copy(out, openingHours)
	return out
}

// hoursFor maps time.Weekday (Sunday = 0) onto the Monday-first table.
func hoursFor(day time.Weekday) OpeningHours {
	idx := (int(day) + 6) % 7
	return openingHours[idx]
}

type OpenStatus struct {
	IsOpen     bool   `json:"is_open"`
	StatusText string `json:"status_text"`
}

// StatusAt reports whether the salon is open at the given local time,
// with a display line for the hero banner.
func StatusAt(now time.Time) OpenStatus {
	today := hoursFor(now.Weekday())
	minutes := now.Hour()*60 + now.Minute()

	open := today.OpenHour * 60
	closeAt := today.CloseHour * 60

	if minutes >= open && minutes < closeAt {
		return OpenStatus{
			IsOpen:     true,
			StatusText: fmt.Sprintf("Öppet till %d:00", today.CloseHour),
		}
	}

	if minutes < open {
		return OpenStatus{
			IsOpen:     false,
			StatusText: fmt.Sprintf("Öppnar %d:00 idag", today.OpenHour),
		}
	}

	tomorrow := hoursFor((now.Weekday() + 1) % 7)
	return OpenStatus{
		IsOpen:     false,
		StatusText: fmt.Sprintf("Öppnar %d:00 imorgon", tomorrow.OpenHour),
	}
}

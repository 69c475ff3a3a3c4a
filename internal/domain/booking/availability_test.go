package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celosalong/salon-booking-api/internal/models"
)

func slotTimes(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestAvailableSlotsFutureDateUnfiltered(t *testing.T) {
	date := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)  // Wednesday
	now := time.Date(2026, 8, 25, 17, 50, 0, 0, time.UTC) // the evening before

	slots := AvailableSlots(date, now, nil)

	require.Len(t, slots, 18)
	assert.Equal(t, "10:00", slots[0].Time)
	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Equal(t, 0, s.Count)
	}
}

func TestAvailableSlotsSameDayLeadTime(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantSlots []string
	}{
		{
			// 17:50 + 30 min = 18:20, so 18:00 is gone but 18:30 stays.
			name:      "late afternoon keeps only the last slot",
			now:       time.Date(2026, 8, 25, 17, 50, 0, 0, time.UTC),
			wantSlots: []string{"18:30"},
		},
		{
			// 12:00 + 30 min lands exactly on the 12:30 slot.
			name: "cutoff exactly on a slot keeps it",
			now:  time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
			wantSlots: []string{
				"12:30", "13:00", "13:30", "14:00", "14:30", "15:00",
				"15:30", "16:00", "16:30", "17:00", "17:30", "18:00", "18:30",
			},
		},
		{
			name:      "after the last reachable slot",
			now:       time.Date(2026, 8, 25, 18, 1, 0, 0, time.UTC),
			wantSlots: []string{},
		},
		{
			name: "early morning keeps everything",
			now:  time.Date(2026, 8, 25, 7, 0, 0, 0, time.UTC),
			wantSlots: []string{
				"10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
				"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
				"16:00", "16:30", "17:00", "17:30", "18:00", "18:30",
			},
		},
	}

	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC) // Tuesday

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := AvailableSlots(date, tt.now, nil)
			assert.Equal(t, tt.wantSlots, slotTimes(slots))
		})
	}
}

func TestAvailableSlotsCapacity(t *testing.T) {
	date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC) // Sunday
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	lastSlot := func(bookings []models.Booking) Slot {
		slots := AvailableSlots(date, now, bookings)
		require.Len(t, slots, 10)
		return slots[9]
	}

	// One booking on the last Sunday slot leaves room for a second.
	bookings := []models.Booking{
		{Time: "14:30", Status: string(StatusConfirmed)},
	}
	s := lastSlot(bookings)
	assert.Equal(t, Slot{Time: "14:30", Count: 1, Available: true}, s)

	// The second booking fills it.
	bookings = append(bookings, models.Booking{Time: "14:30", Status: string(StatusPending)})
	s = lastSlot(bookings)
	assert.Equal(t, Slot{Time: "14:30", Count: 2, Available: false}, s)

	// Untouched slots stay open.
	slots := AvailableSlots(date, now, bookings)
	assert.Equal(t, 0, slots[0].Count)
	assert.True(t, slots[0].Available)
}

func TestAvailableSlotsIgnoresCancelled(t *testing.T) {
	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{Time: "10:00", Status: string(StatusCancelled)},
		{Time: "10:00", Status: string(StatusCancelled)},
		{Time: "10:00", Status: string(StatusPending)},
	}

	slots := AvailableSlots(date, now, bookings)
	require.NotEmpty(t, slots)

	assert.Equal(t, "10:00", slots[0].Time)
	assert.Equal(t, 1, slots[0].Count)
	assert.True(t, slots[0].Available)
}

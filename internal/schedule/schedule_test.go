package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsFor(t *testing.T) {
	tests := []struct {
		name      string
		day       time.Weekday
		wantCount int
		wantFirst string
		wantLast  string
	}{
		{name: "monday", day: time.Monday, wantCount: 18, wantFirst: "10:00", wantLast: "18:30"},
		{name: "saturday", day: time.Saturday, wantCount: 18, wantFirst: "10:00", wantLast: "18:30"},
		{name: "sunday", day: time.Sunday, wantCount: 10, wantFirst: "10:00", wantLast: "14:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := SlotsFor(tt.day)
			require.Len(t, slots, tt.wantCount)
			assert.Equal(t, tt.wantFirst, slots[0])
			assert.Equal(t, tt.wantLast, slots[len(slots)-1])
		})
	}
}

func TestSlotsForReturnsCopy(t *testing.T) {
	slots := SlotsFor(time.Monday)
	slots[0] = "mutated"

	assert.Equal(t, "10:00", SlotsFor(time.Monday)[0])
}

func TestHours(t *testing.T) {
	hours := Hours()
	require.Len(t, hours, 7)

	assert.Equal(t, "Måndag", hours[0].Day)
	assert.Equal(t, "10–19", hours[0].Hours)
	assert.Equal(t, "Söndag", hours[6].Day)
	assert.Equal(t, "10–15", hours[6].Hours)
}

func TestStatusAt(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		wantOpen bool
		wantText string
	}{
		{
			name:     "weekday midday",
			now:      time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC), // Tuesday
			wantOpen: true,
			wantText: "Öppet till 19:00",
		},
		{
			name:     "weekday before opening",
			now:      time.Date(2026, 8, 25, 8, 30, 0, 0, time.UTC),
			wantOpen: false,
			wantText: "Öppnar 10:00 idag",
		},
		{
			name:     "weekday after closing",
			now:      time.Date(2026, 8, 25, 20, 0, 0, 0, time.UTC),
			wantOpen: false,
			wantText: "Öppnar 10:00 imorgon",
		},
		{
			name:     "sunday just before closing",
			now:      time.Date(2026, 8, 23, 14, 59, 0, 0, time.UTC), // Sunday
			wantOpen: true,
			wantText: "Öppet till 15:00",
		},
		{
			name:     "sunday at closing minute",
			now:      time.Date(2026, 8, 23, 15, 0, 0, 0, time.UTC),
			wantOpen: false,
			wantText: "Öppnar 10:00 imorgon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := StatusAt(tt.now)
			assert.Equal(t, tt.wantOpen, st.IsOpen)
			assert.Equal(t, tt.wantText, st.StatusText)
		})
	}
}

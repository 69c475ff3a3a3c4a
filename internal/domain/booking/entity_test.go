package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celosalong/salon-booking-api/internal/httperr"
	"github.com/celosalong/salon-booking-api/internal/models"
)

func TestCancelSelfService(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		booking  models.Booking
		phone    string
		wantCode string
	}{
		{
			name: "matching phone cancels",
			booking: models.Booking{
				Phone: "0701234567", Date: "2026-08-26", Time: "10:00",
				Status: string(StatusPending),
			},
			phone: "070-123 45 67",
		},
		{
			name: "wrong phone is rejected",
			booking: models.Booking{
				Phone: "0701234567", Date: "2026-08-26", Time: "10:00",
				Status: string(StatusPending),
			},
			phone:    "0707654321",
			wantCode: "phone_mismatch",
		},
		{
			name: "already cancelled",
			booking: models.Booking{
				Phone: "0701234567", Date: "2026-08-26", Time: "10:00",
				Status: string(StatusCancelled),
			},
			phone:    "0701234567",
			wantCode: "already_cancelled",
		},
		{
			name: "booking already started",
			booking: models.Booking{
				Phone: "0701234567", Date: "2026-08-25", Time: "11:30",
				Status: string(StatusConfirmed),
			},
			phone:    "0701234567",
			wantCode: "booking_in_past",
		},
		{
			name: "unparseable stored time",
			booking: models.Booking{
				Phone: "0701234567", Date: "2026-08-26", Time: "banana",
				Status: string(StatusPending),
			},
			phone:    "0701234567",
			wantCode: "invalid_date_or_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.booking
			err := CancelSelfService(&b, tt.phone, now)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, httperr.BusinessCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(StatusCancelled), b.Status)
		})
	}
}

func TestCancelSelfServiceLeavesStatusOnError(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	b := models.Booking{
		Phone: "0701234567", Date: "2026-08-26", Time: "10:00",
		Status: string(StatusConfirmed),
	}

	err := CancelSelfService(&b, "0700000000", now)

	require.Error(t, err)
	assert.Equal(t, string(StatusConfirmed), b.Status)
}

func TestChangeStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  Status
		next     Status
		wantCode string
	}{
		{name: "pending to confirmed", current: StatusPending, next: StatusConfirmed},
		{name: "confirmed to completed", current: StatusConfirmed, next: StatusCompleted},
		{name: "confirmed to cancelled", current: StatusConfirmed, next: StatusCancelled},
		{name: "cancelled back to pending", current: StatusCancelled, next: StatusPending},
		{name: "pending straight to completed", current: StatusPending, next: StatusCompleted, wantCode: "invalid_transition"},
		{name: "cancelled to completed", current: StatusCancelled, next: StatusCompleted, wantCode: "invalid_transition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := models.Booking{Status: string(tt.current)}
			err := ChangeStatus(&b, tt.next)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, httperr.BusinessCode(err))
				assert.Equal(t, string(tt.current), b.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(tt.next), b.Status)
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, st := range AllStatuses() {
		parsed, err := ParseStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
	}

	_, err := ParseStatus("archived")
	require.Error(t, err)
	assert.Equal(t, "invalid_status", httperr.BusinessCode(err))
}

func TestStartTime(t *testing.T) {
	b := models.Booking{Date: "2026-08-25", Time: "14:30"}

	start, err := StartTime(&b, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC), start)
}

package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celosalong/salon-booking-api/internal/email"
	"github.com/celosalong/salon-booking-api/internal/httperr"
	"github.com/celosalong/salon-booking-api/internal/notify"
	"github.com/celosalong/salon-booking-api/internal/store/memory"
)

func validInput() CreateBookingInput {
	return CreateBookingInput{
		CustomerName: "Erik Svensson",
		Email:        "erik@example.com",
		Phone:        "0701234567",
		ServiceID:    "herrklippning",
		Date:         "2026-09-01",
		Time:         "10:00",
		Notes:        "Kort på sidorna",
	}
}

func newCreateUC() (*CreateBooking, *memory.Store) {
	repo := memory.NewStore("")
	dispatcher := notify.NewDispatcher(email.NewNoop())
	return NewCreateBooking(repo, dispatcher), repo
}

func TestCreateBooking(t *testing.T) {
	uc, repo := newCreateUC()
	ctx := context.Background()

	b, emailStatus, err := uc.Execute(ctx, validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, "Erik Svensson", b.CustomerName)
	// The noop mailer has no API key, so the form learns the mail was skipped.
	assert.Equal(t, EmailSkippedMissingKey, emailStatus)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateBookingInput)
		wantCode string
	}{
		{
			name:     "missing name",
			mutate:   func(in *CreateBookingInput) { in.CustomerName = "" },
			wantCode: "missing_required_fields",
		},
		{
			name:     "missing phone",
			mutate:   func(in *CreateBookingInput) { in.Phone = "" },
			wantCode: "missing_required_fields",
		},
		{
			name:     "unknown service",
			mutate:   func(in *CreateBookingInput) { in.ServiceID = "spa-weekend" },
			wantCode: "invalid_service",
		},
		{
			name:     "malformed date",
			mutate:   func(in *CreateBookingInput) { in.Date = "01/09/2026" },
			wantCode: "invalid_date_or_time",
		},
		{
			name:     "malformed time",
			mutate:   func(in *CreateBookingInput) { in.Time = "kl 10" },
			wantCode: "invalid_date_or_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newCreateUC()
			in := validInput()
			tt.mutate(&in)

			_, _, err := uc.Execute(context.Background(), in)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, httperr.BusinessCode(err))

			all, repoErr := repo.GetAll(context.Background())
			require.NoError(t, repoErr)
			assert.Empty(t, all)
		})
	}
}

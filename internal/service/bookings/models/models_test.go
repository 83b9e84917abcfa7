package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klepi21/barberians/internal/domain"
)

func TestToDomainBookingStatus(t *testing.T) {
	tests := []struct {
		status  string
		want    domain.BookingStatus
		wantErr error
	}{
		{status: "pending", want: domain.StatusPending},
		{status: "done", want: domain.StatusDone},
		{status: "cancelled", want: domain.StatusCancelled},
		{status: "confirmed", wantErr: ErrInvalidStatus},
		{status: "PENDING", wantErr: ErrInvalidStatus},
		{status: "", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got, err := ToDomainBookingStatus(tt.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

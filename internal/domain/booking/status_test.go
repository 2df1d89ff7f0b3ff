//go:build unit

package booking_test

import (
	"testing"

	"seatslabs/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	allowed := map[booking.Status][]booking.Status{
		booking.StatusPending:    {booking.StatusApproved, booking.StatusRejected, booking.StatusCancelled},
		booking.StatusApproved:   {booking.StatusInProgress, booking.StatusRejected, booking.StatusCancelled},
		booking.StatusInProgress: {booking.StatusCompleted, booking.StatusCancelled},
		booking.StatusRejected:   {},
		booking.StatusCompleted:  {},
		booking.StatusCancelled:  {},
	}

	all := []booking.Status{
		booking.StatusPending,
		booking.StatusApproved,
		booking.StatusRejected,
		booking.StatusInProgress,
		booking.StatusCompleted,
		booking.StatusCancelled,
	}

	for from, targets := range allowed {
		expected := make(map[booking.Status]bool, len(targets))
		for _, to := range targets {
			expected[to] = true
		}
		for _, to := range all {
			t.Run(from.String()+" to "+to.String(), func(t *testing.T) {
				assert.Equal(t, expected[to], from.CanTransitionTo(to))
			})
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusApproved.IsTerminal())
	assert.False(t, booking.StatusInProgress.IsTerminal())
	assert.True(t, booking.StatusRejected.IsTerminal())
	assert.True(t, booking.StatusCompleted.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
}

func TestNewStatus(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		for _, raw := range []string{"pending", "approved", "rejected", "in_progress", "completed", "cancelled"} {
			s, err := booking.NewStatus(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, s.String())
		}
	})

	t.Run("unknown value", func(t *testing.T) {
		_, err := booking.NewStatus("archived")
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, err := booking.NewStatus("Pending")
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

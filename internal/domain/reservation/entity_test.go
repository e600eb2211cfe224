//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/notfound999/reservations/internal/domain/reservation"
	"github.com/notfound999/reservations/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot(t *testing.T) {
	base := time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC)

	t.Run("valid slot", func(t *testing.T) {
		slot, err := reservation.NewTimeSlot(base, base.Add(30*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, base, slot.Start())
		assert.Equal(t, base.Add(30*time.Minute), slot.End())
		assert.Equal(t, 30*time.Minute, slot.Duration())
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(base, base)
		assert.Error(t, err)

		_, err = reservation.NewTimeSlot(base.Add(time.Hour), base)
		assert.Error(t, err)
	})

	t.Run("overlap semantics", func(t *testing.T) {
		slot := mustSlot(t, base, base.Add(time.Hour))

		testCases := []struct {
			name     string
			start    time.Time
			end      time.Time
			overlaps bool
		}{
			{name: "identical interval", start: base, end: base.Add(time.Hour), overlaps: true},
			{name: "contained interval", start: base.Add(15 * time.Minute), end: base.Add(45 * time.Minute), overlaps: true},
			{name: "straddles start", start: base.Add(-30 * time.Minute), end: base.Add(30 * time.Minute), overlaps: true},
			{name: "straddles end", start: base.Add(30 * time.Minute), end: base.Add(90 * time.Minute), overlaps: true},
			{name: "back-to-back after", start: base.Add(time.Hour), end: base.Add(2 * time.Hour), overlaps: false},
			{name: "back-to-back before", start: base.Add(-time.Hour), end: base, overlaps: false},
			{name: "fully disjoint", start: base.Add(3 * time.Hour), end: base.Add(4 * time.Hour), overlaps: false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				other := mustSlot(t, tc.start, tc.end)
				assert.Equal(t, tc.overlaps, slot.Overlaps(other))
				assert.Equal(t, tc.overlaps, other.Overlaps(slot))
			})
		}
	})
}

func mustSlot(t *testing.T, start, end time.Time) reservation.TimeSlot {
	t.Helper()
	slot, err := reservation.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestNewReservation(t *testing.T) {
	base := time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC)
	slot := mustSlot(t, base, base.Add(30*time.Minute))

	t.Run("auto-confirm admits as confirmed", func(t *testing.T) {
		res := reservation.NewReservation(uuid.New(), uuid.New(), uuid.New(), slot, true, nil)
		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.True(t, res.IsActive())
	})

	t.Run("manual approval admits as pending", func(t *testing.T) {
		note := "please call on arrival"
		res := reservation.NewReservation(uuid.New(), uuid.New(), uuid.New(), slot, false, &note)
		assert.Equal(t, reservation.StatusPending, res.Status())
		require.NotNil(t, res.Note())
		assert.Equal(t, note, *res.Note())
	})
}

func TestReservationTransitions(t *testing.T) {
	t.Run("confirm pending", func(t *testing.T) {
		res := buildWithStatus(t, reservation.StatusPending)
		require.NoError(t, res.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("confirm non-pending", func(t *testing.T) {
		for _, status := range []reservation.Status{reservation.StatusConfirmed, reservation.StatusCancelled} {
			res := buildWithStatus(t, status)
			assert.ErrorIs(t, res.Confirm(), reservation.ErrNotPending)
			assert.Equal(t, status, res.Status(), "failed transition must not mutate")
		}
	})

	t.Run("reject pending", func(t *testing.T) {
		res := buildWithStatus(t, reservation.StatusPending)
		require.NoError(t, res.Reject())
		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.False(t, res.IsActive())
	})

	t.Run("reject non-pending", func(t *testing.T) {
		res := buildWithStatus(t, reservation.StatusConfirmed)
		assert.ErrorIs(t, res.Reject(), reservation.ErrNotPending)
	})

	t.Run("cancel pending and confirmed", func(t *testing.T) {
		for _, status := range []reservation.Status{reservation.StatusPending, reservation.StatusConfirmed} {
			res := buildWithStatus(t, status)
			require.NoError(t, res.Cancel())
			assert.Equal(t, reservation.StatusCancelled, res.Status())
		}
	})

	t.Run("cancel is not idempotent", func(t *testing.T) {
		res := buildWithStatus(t, reservation.StatusCancelled)
		assert.ErrorIs(t, res.Cancel(), reservation.ErrAlreadyCancelled)
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, reservation.StatusPending.IsValid())
	assert.True(t, reservation.StatusConfirmed.IsValid())
	assert.True(t, reservation.StatusCancelled.IsValid())
	assert.False(t, reservation.Status("deleted").IsValid())

	assert.True(t, reservation.StatusCancelled.IsTerminal())
	assert.False(t, reservation.StatusPending.IsTerminal())
	assert.False(t, reservation.StatusConfirmed.IsTerminal())
}

func buildWithStatus(t *testing.T, status reservation.Status) *reservation.Reservation {
	t.Helper()
	res, err := builder.NewReservationBuilder().WithStatus(status).BuildDomain()
	require.NoError(t, err)
	return res
}

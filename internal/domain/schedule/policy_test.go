//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-09-14 is a Monday.
var policyNow = time.Date(2026, time.September, 14, 8, 0, 0, 0, time.UTC)

func at(day int, hour, minute int) time.Time {
	return time.Date(2026, time.September, day, hour, minute, 0, 0, time.UTC)
}

func expectViolation(t *testing.T, err error, code schedule.ViolationCode) {
	t.Helper()
	pv, ok := schedule.AsPolicyViolation(err)
	require.True(t, ok, "expected a policy violation, got %v", err)
	assert.Equal(t, code, pv.Code)
	assert.NotEmpty(t, pv.Reason)
}

func TestValidateCandidate(t *testing.T) {
	settings := builder.NewScheduleBuilder().
		WithDayOff(time.Sunday).
		WithBreak(time.Monday, schedule.NewTimeOfDay(12, 0), schedule.NewTimeOfDay(13, 0)).
		BuildSettings()

	t.Run("accepts a slot inside working hours", func(t *testing.T) {
		err := schedule.ValidateCandidate(policyNow, at(14, 10, 0), at(14, 10, 30), settings)
		assert.NoError(t, err)
	})

	t.Run("accepts boundary slots", func(t *testing.T) {
		// Opening instant and closing instant are both bookable edges.
		assert.NoError(t, schedule.ValidateCandidate(policyNow, at(14, 9, 0), at(14, 9, 30), settings))
		assert.NoError(t, schedule.ValidateCandidate(policyNow, at(14, 16, 30), at(14, 17, 0), settings))
	})

	t.Run("closed day", func(t *testing.T) {
		// 2026-09-20 is a Sunday.
		err := schedule.ValidateCandidate(policyNow, at(20, 10, 0), at(20, 10, 30), settings)
		expectViolation(t, err, schedule.ViolationClosedDay)
	})

	t.Run("unconfigured weekday counts as closed", func(t *testing.T) {
		partial := builder.NewScheduleBuilder().WithoutDay(time.Tuesday).BuildSettings()
		err := schedule.ValidateCandidate(policyNow, at(15, 10, 0), at(15, 10, 30), partial)
		expectViolation(t, err, schedule.ViolationClosedDay)
	})

	t.Run("outside working hours", func(t *testing.T) {
		testCases := []struct {
			name  string
			start time.Time
			end   time.Time
		}{
			{name: "before opening", start: at(14, 8, 30), end: at(14, 9, 0)},
			{name: "past closing", start: at(14, 16, 45), end: at(14, 17, 15)},
			{name: "spans midnight", start: at(14, 16, 30), end: at(15, 0, 30)},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				err := schedule.ValidateCandidate(policyNow, tc.start, tc.end, settings)
				expectViolation(t, err, schedule.ViolationOutsideHours)
			})
		}
	})

	t.Run("break conflict", func(t *testing.T) {
		testCases := []struct {
			name     string
			start    time.Time
			end      time.Time
			conflict bool
		}{
			{name: "inside break", start: at(14, 12, 15), end: at(14, 12, 45), conflict: true},
			{name: "straddles break start", start: at(14, 11, 45), end: at(14, 12, 15), conflict: true},
			{name: "straddles break end", start: at(14, 12, 45), end: at(14, 13, 15), conflict: true},
			{name: "ends at break start", start: at(14, 11, 30), end: at(14, 12, 0), conflict: false},
			{name: "starts at break end", start: at(14, 13, 0), end: at(14, 13, 30), conflict: false},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				err := schedule.ValidateCandidate(policyNow, tc.start, tc.end, settings)
				if tc.conflict {
					expectViolation(t, err, schedule.ViolationBreak)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("minimum lead time", func(t *testing.T) {
		limited := builder.NewScheduleBuilder().WithMinAdvanceHours(4).BuildSettings()

		err := schedule.ValidateCandidate(policyNow, at(14, 10, 0), at(14, 10, 30), limited)
		expectViolation(t, err, schedule.ViolationTooSoon)

		// Exactly at the earliest admissible instant.
		assert.NoError(t, schedule.ValidateCandidate(policyNow, at(14, 12, 0), at(14, 12, 30), limited))
	})

	t.Run("maximum advance window", func(t *testing.T) {
		limited := builder.NewScheduleBuilder().WithMaxAdvanceDays(7).BuildSettings()

		err := schedule.ValidateCandidate(policyNow, at(22, 10, 0), at(22, 10, 30), limited)
		expectViolation(t, err, schedule.ViolationTooFarAhead)

		assert.NoError(t, schedule.ValidateCandidate(policyNow, at(20, 10, 0), at(20, 10, 30), limited))
	})

	t.Run("past slot without lead-time limit", func(t *testing.T) {
		open := builder.NewScheduleBuilder().BuildSettings()
		now := at(14, 11, 0)

		err := schedule.ValidateCandidate(now, at(14, 10, 0), at(14, 10, 30), open)
		expectViolation(t, err, schedule.ViolationInPast)
	})

	t.Run("check order is fixed", func(t *testing.T) {
		// A past slot on a closed day reports the day, not the past.
		err := schedule.ValidateCandidate(at(21, 8, 0), at(20, 10, 0), at(20, 10, 30), settings)
		expectViolation(t, err, schedule.ViolationClosedDay)

		// A past slot with a lead-time limit reports the lead time first.
		limited := builder.NewScheduleBuilder().WithMinAdvanceHours(4).BuildSettings()
		err = schedule.ValidateCandidate(at(14, 11, 0), at(14, 10, 0), at(14, 10, 30), limited)
		expectViolation(t, err, schedule.ViolationTooSoon)
	})
}

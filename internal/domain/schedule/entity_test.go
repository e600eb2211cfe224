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

func TestTimeOfDay(t *testing.T) {
	t.Run("parse and format", func(t *testing.T) {
		parsed, err := schedule.ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, parsed.Hour())
		assert.Equal(t, 30, parsed.Minute())
		assert.Equal(t, "09:30", parsed.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{"", "9am", "25:00", "12:60", "12:0"} {
			_, err := schedule.ParseTimeOfDay(raw)
			assert.Error(t, err, "input %q", raw)
		}
	})

	t.Run("anchoring keeps location", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*3600)
		day := time.Date(2026, time.September, 14, 23, 59, 0, 0, loc)

		at := schedule.NewTimeOfDay(10, 15).At(day)
		assert.Equal(t, time.Date(2026, time.September, 14, 10, 15, 0, 0, loc), at)
		assert.Equal(t, loc, at.Location())
	})

	t.Run("ordering", func(t *testing.T) {
		a := schedule.NewTimeOfDay(9, 0)
		b := schedule.NewTimeOfDay(17, 0)
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
		assert.False(t, a.Before(a))
	})
}

func TestWorkingDayValidate(t *testing.T) {
	open := schedule.NewTimeOfDay(9, 0)
	closing := schedule.NewTimeOfDay(17, 0)
	breakStart := schedule.NewTimeOfDay(12, 0)
	breakEnd := schedule.NewTimeOfDay(13, 0)

	testCases := []struct {
		name  string
		day   schedule.WorkingDay
		errIs error
	}{
		{
			name: "plain working day",
			day:  schedule.WorkingDay{Day: time.Monday, Open: open, Close: closing},
		},
		{
			name: "day off skips all checks",
			day:  schedule.WorkingDay{Day: time.Sunday, DayOff: true},
		},
		{
			name:  "open equals close",
			day:   schedule.WorkingDay{Day: time.Monday, Open: open, Close: open},
			errIs: schedule.ErrOpenNotBeforeClose,
		},
		{
			name:  "open after close",
			day:   schedule.WorkingDay{Day: time.Monday, Open: closing, Close: open},
			errIs: schedule.ErrOpenNotBeforeClose,
		},
		{
			name:  "break start without end",
			day:   schedule.WorkingDay{Day: time.Monday, Open: open, Close: closing, BreakStart: &breakStart},
			errIs: schedule.ErrIncompleteBreak,
		},
		{
			name:  "break end without start",
			day:   schedule.WorkingDay{Day: time.Monday, Open: open, Close: closing, BreakEnd: &breakEnd},
			errIs: schedule.ErrIncompleteBreak,
		},
		{
			name: "valid break",
			day:  schedule.WorkingDay{Day: time.Monday, Open: open, Close: closing, BreakStart: &breakStart, BreakEnd: &breakEnd},
		},
		{
			name:  "break in wrong order",
			day:   schedule.WorkingDay{Day: time.Monday, Open: open, Close: closing, BreakStart: &breakEnd, BreakEnd: &breakStart},
			errIs: schedule.ErrBreakOrder,
		},
		{
			name: "break before opening",
			day: func() schedule.WorkingDay {
				early := schedule.NewTimeOfDay(8, 0)
				return schedule.WorkingDay{Day: time.Monday, Open: open, Close: closing, BreakStart: &early, BreakEnd: &breakEnd}
			}(),
			errIs: schedule.ErrBreakOutsideHours,
		},
		{
			name: "break past closing",
			day: func() schedule.WorkingDay {
				late := schedule.NewTimeOfDay(18, 0)
				return schedule.WorkingDay{Day: time.Monday, Open: open, Close: closing, BreakStart: &breakStart, BreakEnd: &late}
			}(),
			errIs: schedule.ErrBreakOutsideHours,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.day.Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettingsValidate(t *testing.T) {
	t.Run("full week passes", func(t *testing.T) {
		assert.NoError(t, builder.NewScheduleBuilder().BuildSettings().Validate())
	})

	t.Run("missing weekday fails", func(t *testing.T) {
		s := builder.NewScheduleBuilder().WithoutDay(time.Wednesday).BuildSettings()
		assert.ErrorIs(t, s.Validate(), schedule.ErrMissingWorkingDays)
	})

	t.Run("duplicate weekday fails", func(t *testing.T) {
		s := builder.NewScheduleBuilder().BuildSettings()
		s.WorkingDays = append(s.WorkingDays, s.WorkingDays[0])
		assert.Error(t, s.Validate())
	})

	t.Run("invalid day surfaces its error", func(t *testing.T) {
		s := builder.NewScheduleBuilder().
			WithHours(time.Friday, schedule.NewTimeOfDay(17, 0), schedule.NewTimeOfDay(9, 0)).
			BuildSettings()
		assert.ErrorIs(t, s.Validate(), schedule.ErrOpenNotBeforeClose)
	})
}

func TestDefaultSettings(t *testing.T) {
	s := schedule.DefaultSettings()
	require.NoError(t, s.Validate())

	assert.True(t, s.AutoConfirmAppointments)
	assert.Equal(t, 30, s.DefaultSlotDurationMinutes)
	require.NotNil(t, s.MinAdvanceBookingHours)
	assert.Equal(t, 2, *s.MinAdvanceBookingHours)
	require.NotNil(t, s.MaxAdvanceBookingDays)
	assert.Equal(t, 30, *s.MaxAdvanceBookingDays)

	for d := time.Sunday; d <= time.Saturday; d++ {
		wd, ok := s.Day(d)
		require.True(t, ok, "weekday %s must be configured", d)
		weekend := d == time.Saturday || d == time.Sunday
		assert.Equal(t, weekend, wd.DayOff, "weekday %s", d)
	}
}

func TestTimeOff(t *testing.T) {
	start := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)

	t.Run("valid block", func(t *testing.T) {
		to, err := schedule.NewTimeOff(start, end, "renovation")
		require.NoError(t, err)
		assert.NotEqual(t, to.ID.String(), "00000000-0000-0000-0000-000000000000")
		assert.Equal(t, "renovation", to.Reason)
	})

	t.Run("end must follow start", func(t *testing.T) {
		_, err := schedule.NewTimeOff(start, start, "zero length")
		assert.ErrorIs(t, err, schedule.ErrTimeOffOrder)

		_, err = schedule.NewTimeOff(end, start, "reversed")
		assert.ErrorIs(t, err, schedule.ErrTimeOffOrder)
	})

	t.Run("intersects uses half-open intervals", func(t *testing.T) {
		to, err := schedule.NewTimeOff(start, end, "")
		require.NoError(t, err)

		assert.True(t, to.Intersects(start.Add(-time.Hour), start.Add(time.Hour)))
		assert.True(t, to.Intersects(end.Add(-time.Hour), end.Add(time.Hour)))
		assert.False(t, to.Intersects(end, end.Add(time.Hour)))
		assert.False(t, to.Intersects(start.Add(-time.Hour), start))
	})
}

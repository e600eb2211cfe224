//go:build unit

package availability_test

import (
	"testing"
	"time"

	"github.com/notfound999/reservations/internal/domain/availability"
	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func TestClosedBlocks(t *testing.T) {
	t.Run("single open day yields closed margins", func(t *testing.T) {
		s := builder.NewScheduleBuilder().BuildSettings()

		// 2026-09-14 is a Monday. Any sub-day window expands to the full day.
		got := availability.ClosedBlocks(s, day(14).Add(10*time.Hour), day(14).Add(11*time.Hour))

		want := []availability.BusyBlock{
			{Start: day(14), End: day(14).Add(9 * time.Hour), Kind: availability.KindClosed},
			{Start: day(14).Add(17 * time.Hour), End: day(15), Kind: availability.KindClosed},
		}
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("day off covers the whole day", func(t *testing.T) {
		s := builder.NewScheduleBuilder().WithDayOff(time.Sunday).BuildSettings()

		// 2026-09-20 is a Sunday.
		got := availability.ClosedBlocks(s, day(20), day(20))

		want := []availability.BusyBlock{
			{Start: day(20), End: day(21), Kind: availability.KindClosed},
		}
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("unconfigured weekday counts as closed", func(t *testing.T) {
		s := builder.NewScheduleBuilder().WithoutDay(time.Tuesday).BuildSettings()

		got := availability.ClosedBlocks(s, day(15), day(15))

		want := []availability.BusyBlock{
			{Start: day(15), End: day(16), Kind: availability.KindClosed},
		}
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("break emits its own block", func(t *testing.T) {
		s := builder.NewScheduleBuilder().
			WithBreak(time.Monday, schedule.NewTimeOfDay(12, 0), schedule.NewTimeOfDay(13, 0)).
			BuildSettings()

		got := availability.ClosedBlocks(s, day(14), day(14))

		want := []availability.BusyBlock{
			{Start: day(14), End: day(14).Add(9 * time.Hour), Kind: availability.KindClosed},
			{Start: day(14).Add(12 * time.Hour), End: day(14).Add(13 * time.Hour), Kind: availability.KindBreak},
			{Start: day(14).Add(17 * time.Hour), End: day(15), Kind: availability.KindClosed},
		}
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("window spanning days is inclusive of both ends", func(t *testing.T) {
		s := builder.NewScheduleBuilder().WithDayOff(time.Sunday).BuildSettings()

		// Saturday 19th through Monday 21st: three calendar days.
		got := availability.ClosedBlocks(s, day(19).Add(23*time.Hour), day(21).Add(time.Minute))

		want := []availability.BusyBlock{
			{Start: day(19), End: day(19).Add(9 * time.Hour), Kind: availability.KindClosed},
			{Start: day(19).Add(17 * time.Hour), End: day(20), Kind: availability.KindClosed},
			{Start: day(20), End: day(21), Kind: availability.KindClosed},
			{Start: day(21), End: day(21).Add(9 * time.Hour), Kind: availability.KindClosed},
			{Start: day(21).Add(17 * time.Hour), End: day(22), Kind: availability.KindClosed},
		}
		assert.Empty(t, cmp.Diff(want, got))
	})
}

//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

// ScheduleBuilder assembles booking settings for tests. The default is a
// business open every day 09:00-17:00 with no breaks, auto-confirm on and
// no advance-booking limits, so individual tests only state what they vary.
type ScheduleBuilder struct {
	ID                         uuid.UUID
	BusinessID                 uuid.UUID
	MinAdvanceBookingHours     *int
	MaxAdvanceBookingDays      *int
	DefaultSlotDurationMinutes int
	AutoConfirmAppointments    bool
	WorkingDays                []schedule.WorkingDay
}

func NewScheduleBuilder() *ScheduleBuilder {
	days := make([]schedule.WorkingDay, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days = append(days, schedule.WorkingDay{
			Day:   d,
			Open:  schedule.NewTimeOfDay(9, 0),
			Close: schedule.NewTimeOfDay(17, 0),
		})
	}
	return &ScheduleBuilder{
		ID:                         uuid.New(),
		BusinessID:                 uuid.New(),
		DefaultSlotDurationMinutes: 30,
		AutoConfirmAppointments:    true,
		WorkingDays:                days,
	}
}

func (b *ScheduleBuilder) WithMinAdvanceHours(h int) *ScheduleBuilder {
	b.MinAdvanceBookingHours = &h
	return b
}

func (b *ScheduleBuilder) WithMaxAdvanceDays(d int) *ScheduleBuilder {
	b.MaxAdvanceBookingDays = &d
	return b
}

func (b *ScheduleBuilder) WithAutoConfirm(on bool) *ScheduleBuilder {
	b.AutoConfirmAppointments = on
	return b
}

func (b *ScheduleBuilder) WithDayOff(day time.Weekday) *ScheduleBuilder {
	for i := range b.WorkingDays {
		if b.WorkingDays[i].Day == day {
			b.WorkingDays[i].DayOff = true
		}
	}
	return b
}

func (b *ScheduleBuilder) WithHours(day time.Weekday, open, close schedule.TimeOfDay) *ScheduleBuilder {
	for i := range b.WorkingDays {
		if b.WorkingDays[i].Day == day {
			b.WorkingDays[i].Open = open
			b.WorkingDays[i].Close = close
		}
	}
	return b
}

func (b *ScheduleBuilder) WithBreak(day time.Weekday, start, end schedule.TimeOfDay) *ScheduleBuilder {
	for i := range b.WorkingDays {
		if b.WorkingDays[i].Day == day {
			b.WorkingDays[i].BreakStart = &start
			b.WorkingDays[i].BreakEnd = &end
		}
	}
	return b
}

// WithoutDay removes a weekday row entirely, leaving the week incomplete.
func (b *ScheduleBuilder) WithoutDay(day time.Weekday) *ScheduleBuilder {
	kept := b.WorkingDays[:0]
	for _, wd := range b.WorkingDays {
		if wd.Day != day {
			kept = append(kept, wd)
		}
	}
	b.WorkingDays = kept
	return b
}

func (b *ScheduleBuilder) BuildSettings() schedule.Settings {
	return schedule.Settings{
		MinAdvanceBookingHours:     b.MinAdvanceBookingHours,
		MaxAdvanceBookingDays:      b.MaxAdvanceBookingDays,
		DefaultSlotDurationMinutes: b.DefaultSlotDurationMinutes,
		AutoConfirmAppointments:    b.AutoConfirmAppointments,
		WorkingDays:                b.WorkingDays,
	}
}

func (b *ScheduleBuilder) BuildView() *queries.ScheduleView {
	return &queries.ScheduleView{
		ID:                         b.ID,
		BusinessID:                 b.BusinessID,
		MinAdvanceBookingHours:     b.MinAdvanceBookingHours,
		MaxAdvanceBookingDays:      b.MaxAdvanceBookingDays,
		DefaultSlotDurationMinutes: b.DefaultSlotDurationMinutes,
		AutoConfirmAppointments:    b.AutoConfirmAppointments,
		WorkingDays:                b.WorkingDays,
	}
}

package request

import (
	"fmt"
	"strings"
	"time"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/usecase/commands"
)

type WorkingDayRequest struct {
	DayOfWeek  string  `json:"day_of_week" binding:"required"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	DayOff     bool    `json:"day_off"`
}

type UpdateScheduleRequest struct {
	MinAdvanceBookingHours     *int                `json:"min_advance_booking_hours,omitempty"`
	MaxAdvanceBookingDays      *int                `json:"max_advance_booking_days,omitempty"`
	DefaultSlotDurationMinutes *int                `json:"default_slot_duration_minutes,omitempty"`
	AutoConfirmAppointments    *bool               `json:"auto_confirm_appointments,omitempty"`
	WorkingDays                []WorkingDayRequest `json:"working_days,omitempty"`
}

var weekdayNames = map[string]time.Weekday{
	"SUNDAY":    time.Sunday,
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
}

func (r UpdateScheduleRequest) ToInput() (commands.UpdateScheduleInput, error) {
	in := commands.UpdateScheduleInput{
		MinAdvanceBookingHours:     r.MinAdvanceBookingHours,
		MaxAdvanceBookingDays:      r.MaxAdvanceBookingDays,
		DefaultSlotDurationMinutes: r.DefaultSlotDurationMinutes,
		AutoConfirmAppointments:    r.AutoConfirmAppointments,
	}
	if r.WorkingDays == nil {
		return in, nil
	}

	days := make([]schedule.WorkingDay, 0, len(r.WorkingDays))
	for _, dayReq := range r.WorkingDays {
		wd, err := dayReq.toDomain()
		if err != nil {
			return commands.UpdateScheduleInput{}, err
		}
		days = append(days, wd)
	}
	in.WorkingDays = days
	return in, nil
}

func (r WorkingDayRequest) toDomain() (schedule.WorkingDay, error) {
	day, ok := weekdayNames[strings.ToUpper(r.DayOfWeek)]
	if !ok {
		return schedule.WorkingDay{}, fmt.Errorf("unknown weekday %q", r.DayOfWeek)
	}

	wd := schedule.WorkingDay{Day: day, DayOff: r.DayOff}
	if r.DayOff {
		return wd, nil
	}

	var err error
	if wd.Open, err = schedule.ParseTimeOfDay(r.StartTime); err != nil {
		return schedule.WorkingDay{}, err
	}
	if wd.Close, err = schedule.ParseTimeOfDay(r.EndTime); err != nil {
		return schedule.WorkingDay{}, err
	}
	if r.BreakStart != nil {
		t, err := schedule.ParseTimeOfDay(*r.BreakStart)
		if err != nil {
			return schedule.WorkingDay{}, err
		}
		wd.BreakStart = &t
	}
	if r.BreakEnd != nil {
		t, err := schedule.ParseTimeOfDay(*r.BreakEnd)
		if err != nil {
			return schedule.WorkingDay{}, err
		}
		wd.BreakEnd = &t
	}
	return wd, nil
}

type AddTimeOffRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Reason    string    `json:"reason"`
}

func (r AddTimeOffRequest) ToInput() commands.AddTimeOffInput {
	return commands.AddTimeOffInput{
		StartAt: r.StartTime,
		EndAt:   r.EndTime,
		Reason:  r.Reason,
	}
}

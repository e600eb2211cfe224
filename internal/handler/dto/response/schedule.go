package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

type WorkingDayResponse struct {
	DayOfWeek  string  `json:"dayOfWeek"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
	DayOff     bool    `json:"dayOff"`
}

type ScheduleResponse struct {
	ID                         uuid.UUID            `json:"id"`
	BusinessID                 uuid.UUID            `json:"businessId"`
	MinAdvanceBookingHours     *int                 `json:"minAdvanceBookingHours,omitempty"`
	MaxAdvanceBookingDays      *int                 `json:"maxAdvanceBookingDays,omitempty"`
	DefaultSlotDurationMinutes int                  `json:"defaultSlotDurationMinutes"`
	AutoConfirmAppointments    bool                 `json:"autoConfirmAppointments"`
	WorkingDays                []WorkingDayResponse `json:"workingDays"`
}

type TimeOffResponse struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    string    `json:"reason"`
}

func FromScheduleView(sv *queries.ScheduleView) *ScheduleResponse {
	days := make([]WorkingDayResponse, len(sv.WorkingDays))
	for i, wd := range sv.WorkingDays {
		days[i] = fromWorkingDay(wd)
	}
	return &ScheduleResponse{
		ID:                         sv.ID,
		BusinessID:                 sv.BusinessID,
		MinAdvanceBookingHours:     sv.MinAdvanceBookingHours,
		MaxAdvanceBookingDays:      sv.MaxAdvanceBookingDays,
		DefaultSlotDurationMinutes: sv.DefaultSlotDurationMinutes,
		AutoConfirmAppointments:    sv.AutoConfirmAppointments,
		WorkingDays:                days,
	}
}

func fromWorkingDay(wd schedule.WorkingDay) WorkingDayResponse {
	out := WorkingDayResponse{
		DayOfWeek: toWeekdayName(wd.Day),
		StartTime: wd.Open.String(),
		EndTime:   wd.Close.String(),
		DayOff:    wd.DayOff,
	}
	if wd.BreakStart != nil {
		s := wd.BreakStart.String()
		out.BreakStart = &s
	}
	if wd.BreakEnd != nil {
		s := wd.BreakEnd.String()
		out.BreakEnd = &s
	}
	return out
}

func toWeekdayName(d time.Weekday) string {
	switch d {
	case time.Sunday:
		return "SUNDAY"
	case time.Monday:
		return "MONDAY"
	case time.Tuesday:
		return "TUESDAY"
	case time.Wednesday:
		return "WEDNESDAY"
	case time.Thursday:
		return "THURSDAY"
	case time.Friday:
		return "FRIDAY"
	default:
		return "SATURDAY"
	}
}

func FromTimeOffView(tv *queries.TimeOffView) *TimeOffResponse {
	return &TimeOffResponse{
		ID:        tv.ID,
		StartTime: tv.StartAt,
		EndTime:   tv.EndAt,
		Reason:    tv.Reason,
	}
}

func FromTimeOffViews(tvs []*queries.TimeOffView) []*TimeOffResponse {
	out := make([]*TimeOffResponse, len(tvs))
	for i, tv := range tvs {
		out[i] = FromTimeOffView(tv)
	}
	return out
}

package schedule

import (
	"errors"
	"fmt"
	"time"
)

type ViolationCode string

const (
	ViolationClosedDay    ViolationCode = "CLOSED_DAY"
	ViolationOutsideHours ViolationCode = "OUTSIDE_HOURS"
	ViolationBreak        ViolationCode = "BREAK_CONFLICT"
	ViolationTooSoon      ViolationCode = "TOO_SOON"
	ViolationTooFarAhead  ViolationCode = "TOO_FAR_AHEAD"
	ViolationInPast       ViolationCode = "IN_PAST"
)

// PolicyViolation is a terminal rejection of a booking candidate. The caller
// has to pick a different time; nothing is retried.
type PolicyViolation struct {
	Code   ViolationCode
	Reason string
}

func (e *PolicyViolation) Error() string {
	return fmt.Sprintf("policy violation %s: %s", e.Code, e.Reason)
}

func violation(code ViolationCode, format string, args ...any) error {
	return &PolicyViolation{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// AsPolicyViolation unwraps err to a PolicyViolation if there is one.
func AsPolicyViolation(err error) (*PolicyViolation, bool) {
	var pv *PolicyViolation
	if errors.As(err, &pv) {
		return pv, true
	}
	return nil, false
}

// ValidateCandidate checks a booking interval against working hours and the
// advance-booking window. Pure; all clock input comes in as now.
//
// Working-hours comparisons use time-of-day components only, so a candidate
// spanning midnight fails OutsideHours. Check order is fixed: day, hours,
// break, min advance, max advance, past. The advance-window checks run
// before the past check so the more specific error wins when both apply.
func ValidateCandidate(now, start, end time.Time, s Settings) error {
	day, ok := s.Day(start.Weekday())
	if !ok {
		return violation(ViolationClosedDay, "business is not open on %s", start.Weekday())
	}
	if day.DayOff {
		return violation(ViolationClosedDay, "the business is closed on %s", start.Weekday())
	}

	// A slot crossing midnight wraps reqEnd below reqStart, so the ordered
	// comparison catches it as outside hours.
	reqStart := TimeOfDayFromTime(start)
	reqEnd := TimeOfDayFromTime(end)
	if reqStart.Before(day.Open) || reqEnd.After(day.Close) || !reqStart.Before(reqEnd) {
		return violation(ViolationOutsideHours,
			"selected time is outside of business working hours (%s-%s)", day.Open, day.Close)
	}

	if day.HasBreak() && reqStart.Before(*day.BreakEnd) && reqEnd.After(*day.BreakStart) {
		return violation(ViolationBreak,
			"selected time overlaps with a business break (%s-%s)", day.BreakStart, day.BreakEnd)
	}

	if s.MinAdvanceBookingHours != nil {
		earliest := now.Add(time.Duration(*s.MinAdvanceBookingHours) * time.Hour)
		if start.Before(earliest) {
			return violation(ViolationTooSoon,
				"booking is too short-notice, minimum lead time is %d hours", *s.MinAdvanceBookingHours)
		}
	}

	if s.MaxAdvanceBookingDays != nil {
		latest := now.AddDate(0, 0, *s.MaxAdvanceBookingDays)
		if start.After(latest) {
			return violation(ViolationTooFarAhead,
				"date is too far in the future, bookings open %d days in advance", *s.MaxAdvanceBookingDays)
		}
	}

	if start.Before(now) {
		return violation(ViolationInPast, "cannot create a reservation for a past date")
	}

	return nil
}

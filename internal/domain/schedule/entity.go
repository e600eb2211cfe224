package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrOpenNotBeforeClose = errors.New("opening time must be before closing time")
	ErrIncompleteBreak    = errors.New("break start and break end must be set together")
	ErrBreakOrder         = errors.New("break start must be before break end")
	ErrBreakOutsideHours  = errors.New("break must be within working hours")
	ErrMissingWorkingDays = errors.New("schedule must configure all seven weekdays")
)

// WorkingDay is the recurring weekly configuration for one weekday.
// Times are ignored when DayOff is set.
type WorkingDay struct {
	Day        time.Weekday
	Open       TimeOfDay
	Close      TimeOfDay
	BreakStart *TimeOfDay
	BreakEnd   *TimeOfDay
	DayOff     bool
}

func (wd WorkingDay) HasBreak() bool {
	return wd.BreakStart != nil && wd.BreakEnd != nil
}

func (wd WorkingDay) Validate() error {
	if wd.DayOff {
		return nil
	}
	if !wd.Open.Before(wd.Close) {
		return fmt.Errorf("%w for %s", ErrOpenNotBeforeClose, wd.Day)
	}
	if (wd.BreakStart == nil) != (wd.BreakEnd == nil) {
		return fmt.Errorf("%w for %s", ErrIncompleteBreak, wd.Day)
	}
	if wd.HasBreak() {
		if !wd.BreakStart.Before(*wd.BreakEnd) {
			return fmt.Errorf("%w for %s", ErrBreakOrder, wd.Day)
		}
		if wd.BreakStart.Before(wd.Open) || wd.BreakEnd.After(wd.Close) {
			return fmt.Errorf("%w for %s", ErrBreakOutsideHours, wd.Day)
		}
	}
	return nil
}

// Settings is one business's booking configuration together with its seven
// working-day rows. Nil advance-booking limits mean "no limit".
type Settings struct {
	MinAdvanceBookingHours     *int
	MaxAdvanceBookingDays      *int
	DefaultSlotDurationMinutes int
	AutoConfirmAppointments    bool
	WorkingDays                []WorkingDay
}

// Default configuration applied when a business is provisioned:
// Mon-Fri 09:00-17:00, weekends off, auto-confirm, 2h/30d advance window.
func DefaultSettings() Settings {
	minAdvance := 2
	maxAdvance := 30

	days := make([]WorkingDay, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days = append(days, WorkingDay{
			Day:    d,
			Open:   NewTimeOfDay(9, 0),
			Close:  NewTimeOfDay(17, 0),
			DayOff: d == time.Saturday || d == time.Sunday,
		})
	}

	return Settings{
		MinAdvanceBookingHours:     &minAdvance,
		MaxAdvanceBookingDays:      &maxAdvance,
		DefaultSlotDurationMinutes: 30,
		AutoConfirmAppointments:    true,
		WorkingDays:                days,
	}
}

// Day returns the configuration for a weekday, reporting whether one exists.
func (s Settings) Day(d time.Weekday) (WorkingDay, bool) {
	for _, wd := range s.WorkingDays {
		if wd.Day == d {
			return wd, true
		}
	}
	return WorkingDay{}, false
}

// Validate checks every working day and requires the full week to be present,
// one row per weekday.
func (s Settings) Validate() error {
	seen := make(map[time.Weekday]bool, 7)
	for _, wd := range s.WorkingDays {
		if err := wd.Validate(); err != nil {
			return err
		}
		if seen[wd.Day] {
			return fmt.Errorf("duplicate working day %s", wd.Day)
		}
		seen[wd.Day] = true
	}
	if len(seen) != 7 {
		return ErrMissingWorkingDays
	}
	return nil
}

package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrTimeOffOrder = errors.New("time off end must be after start")

// TimeOff is an ad-hoc block during which the business takes no reservations.
// It never auto-expires; stale rows simply stop intersecting view windows.
type TimeOff struct {
	ID      uuid.UUID
	StartAt time.Time
	EndAt   time.Time
	Reason  string
}

func NewTimeOff(startAt, endAt time.Time, reason string) (TimeOff, error) {
	if !endAt.After(startAt) {
		return TimeOff{}, ErrTimeOffOrder
	}
	return TimeOff{
		ID:      uuid.New(),
		StartAt: startAt,
		EndAt:   endAt,
		Reason:  reason,
	}, nil
}

// Intersects reports strict [a,b) overlap with the given interval.
func (t TimeOff) Intersects(start, end time.Time) bool {
	return start.Before(t.EndAt) && end.After(t.StartAt)
}

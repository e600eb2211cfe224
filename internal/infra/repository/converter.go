package repository

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/pkg/pgconv"
)

func intPtrFromPg(pi pgtype.Int4) *int {
	if !pi.Valid {
		return nil
	}
	v := int(pi.Int32)
	return &v
}

func intPtrToPg(i *int) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*i), Valid: true}
}

// day_of_week is stored with 0 = Sunday, matching time.Weekday.
func timeWeekday(dayOfWeek int) time.Weekday {
	return time.Weekday(dayOfWeek)
}

func timeOfDayFromPg(pt pgtype.Time) schedule.TimeOfDay {
	if v := pgconv.TimeOfDayPtrFromPgtype(pt); v != nil {
		return schedule.TimeOfDay(*v)
	}
	return 0
}

func timeOfDayPtrFromPg(pt pgtype.Time) *schedule.TimeOfDay {
	v := pgconv.TimeOfDayPtrFromPgtype(pt)
	if v == nil {
		return nil
	}
	t := schedule.TimeOfDay(*v)
	return &t
}

func timeOfDayPtrToPg(t *schedule.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgconv.TimeOfDayToPgtype(t.Minutes())
}

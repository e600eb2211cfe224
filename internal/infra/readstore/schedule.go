package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/pkg/pgconv"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

type ScheduleReadStore struct {
	pool *pgxpool.Pool
}

func NewScheduleReadStore(pool *pgxpool.Pool) *ScheduleReadStore {
	return &ScheduleReadStore{pool: pool}
}

func (r *ScheduleReadStore) FindByBusiness(ctx context.Context, businessID uuid.UUID) (*queries.ScheduleView, error) {
	var (
		view       queries.ScheduleView
		minAdvance pgtype.Int4
		maxAdvance pgtype.Int4
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, business_id, min_advance_booking_hours, max_advance_booking_days,
			default_slot_duration_minutes, auto_confirm_appointments
		FROM schedule_settings
		WHERE business_id = $1
	`, businessID).Scan(
		&view.ID,
		&view.BusinessID,
		&minAdvance,
		&maxAdvance,
		&view.DefaultSlotDurationMinutes,
		&view.AutoConfirmAppointments,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule", err)
	}
	view.MinAdvanceBookingHours = intPtrFromPg(minAdvance)
	view.MaxAdvanceBookingDays = intPtrFromPg(maxAdvance)

	rows, err := r.pool.Query(ctx, `
		SELECT day_of_week, open_time, close_time, break_start_time, break_end_time, day_off
		FROM working_days
		WHERE schedule_id = $1
		ORDER BY day_of_week
	`, view.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list working days", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			wd         schedule.WorkingDay
			dayOfWeek  int
			openTime   pgtype.Time
			closeTime  pgtype.Time
			breakStart pgtype.Time
			breakEnd   pgtype.Time
		)
		if err := rows.Scan(&dayOfWeek, &openTime, &closeTime, &breakStart, &breakEnd, &wd.DayOff); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working day", err)
		}
		wd.Day = time.Weekday(dayOfWeek)
		wd.Open = timeOfDayFromPg(openTime)
		wd.Close = timeOfDayFromPg(closeTime)
		wd.BreakStart = timeOfDayPtrFromPg(breakStart)
		wd.BreakEnd = timeOfDayPtrFromPg(breakEnd)
		view.WorkingDays = append(view.WorkingDays, wd)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate working days", err)
	}
	return &view, nil
}

func intPtrFromPg(pi pgtype.Int4) *int {
	if !pi.Valid {
		return nil
	}
	v := int(pi.Int32)
	return &v
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

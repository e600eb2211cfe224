package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/infra/db"
	"github.com/notfound999/reservations/internal/pkg/pgconv"
	"github.com/notfound999/reservations/internal/usecase/commands"
)

type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func (r *ScheduleRepository) SettingsByBusiness(ctx context.Context, businessID uuid.UUID) (*commands.ScheduleSnapshot, error) {
	var (
		snap       commands.ScheduleSnapshot
		minAdvance pgtype.Int4
		maxAdvance pgtype.Int4
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, business_id, min_advance_booking_hours, max_advance_booking_days,
			default_slot_duration_minutes, auto_confirm_appointments
		FROM schedule_settings
		WHERE business_id = $1
	`, businessID).Scan(
		&snap.ID,
		&snap.BusinessID,
		&minAdvance,
		&maxAdvance,
		&snap.Settings.DefaultSlotDurationMinutes,
		&snap.Settings.AutoConfirmAppointments,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule settings", err)
	}
	snap.Settings.MinAdvanceBookingHours = intPtrFromPg(minAdvance)
	snap.Settings.MaxAdvanceBookingDays = intPtrFromPg(maxAdvance)

	days, err := r.workingDays(ctx, snap.ID)
	if err != nil {
		return nil, err
	}
	snap.Settings.WorkingDays = days
	return &snap, nil
}

func (r *ScheduleRepository) workingDays(ctx context.Context, scheduleID uuid.UUID) ([]schedule.WorkingDay, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT day_of_week, open_time, close_time, break_start_time, break_end_time, day_off
		FROM working_days
		WHERE schedule_id = $1
		ORDER BY day_of_week
	`, scheduleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list working days", err)
	}
	defer rows.Close()

	days := make([]schedule.WorkingDay, 0, 7)
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
		wd.Day = timeWeekday(dayOfWeek)
		wd.Open = timeOfDayFromPg(openTime)
		wd.Close = timeOfDayFromPg(closeTime)
		wd.BreakStart = timeOfDayPtrFromPg(breakStart)
		wd.BreakEnd = timeOfDayPtrFromPg(breakEnd)
		days = append(days, wd)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate working days", err)
	}
	return days, nil
}

func (r *ScheduleRepository) CreateDefault(ctx context.Context, tx db.DBTX, businessID uuid.UUID, s schedule.Settings) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO schedule_settings
			(business_id, min_advance_booking_hours, max_advance_booking_days,
			 default_slot_duration_minutes, auto_confirm_appointments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		businessID,
		intPtrToPg(s.MinAdvanceBookingHours),
		intPtrToPg(s.MaxAdvanceBookingDays),
		s.DefaultSlotDurationMinutes,
		s.AutoConfirmAppointments,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create schedule settings", err)
	}

	if err := r.insertWorkingDays(ctx, tx, id, s.WorkingDays); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ReplaceSettings updates the settings row and swaps all seven working-day
// rows wholesale instead of diffing them.
func (r *ScheduleRepository) ReplaceSettings(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID, s schedule.Settings) error {
	tag, err := tx.Exec(ctx, `
		UPDATE schedule_settings
		SET min_advance_booking_hours = $2,
			max_advance_booking_days = $3,
			default_slot_duration_minutes = $4,
			auto_confirm_appointments = $5,
			updated_at = now()
		WHERE id = $1
	`,
		scheduleID,
		intPtrToPg(s.MinAdvanceBookingHours),
		intPtrToPg(s.MaxAdvanceBookingDays),
		s.DefaultSlotDurationMinutes,
		s.AutoConfirmAppointments,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update schedule settings", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("schedule not found", nil, infra.KindNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM working_days WHERE schedule_id = $1`, scheduleID); err != nil {
		return infra.WrapRepoErr("failed to clear working days", err)
	}
	return r.insertWorkingDays(ctx, tx, scheduleID, s.WorkingDays)
}

func (r *ScheduleRepository) insertWorkingDays(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID, days []schedule.WorkingDay) error {
	for _, wd := range days {
		_, err := tx.Exec(ctx, `
			INSERT INTO working_days
				(schedule_id, day_of_week, open_time, close_time, break_start_time, break_end_time, day_off)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			scheduleID,
			int(wd.Day),
			pgconv.TimeOfDayToPgtype(wd.Open.Minutes()),
			pgconv.TimeOfDayToPgtype(wd.Close.Minutes()),
			timeOfDayPtrToPg(wd.BreakStart),
			timeOfDayPtrToPg(wd.BreakEnd),
			wd.DayOff,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert working day", err)
		}
	}
	return nil
}

package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/infra/db"
	"github.com/notfound999/reservations/internal/pkg/errs"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

// UpdateScheduleInput carries a partial settings update. Nil scalar fields
// keep the stored value; a non-nil WorkingDays slice replaces all seven
// weekday rows wholesale.
type UpdateScheduleInput struct {
	MinAdvanceBookingHours     *int
	MaxAdvanceBookingDays      *int
	DefaultSlotDurationMinutes *int
	AutoConfirmAppointments    *bool
	WorkingDays                []schedule.WorkingDay
}

type ScheduleCommands interface {
	UpdateSchedule(ctx context.Context, businessID uuid.UUID, in UpdateScheduleInput) (*queries.ScheduleView, error)
	// CreateDefaultSchedule provisions the standard configuration for a
	// business that has none yet.
	CreateDefaultSchedule(ctx context.Context, businessID uuid.UUID) (uuid.UUID, error)
}

type scheduleCommandsImpl struct {
	scheduleRepo    ScheduleRepository
	scheduleQueries queries.ScheduleQueries
	pool            *pgxpool.Pool
}

func NewScheduleCommands(
	scheduleRepo ScheduleRepository,
	scheduleQueries queries.ScheduleQueries,
	pool *pgxpool.Pool,
) ScheduleCommands {
	return &scheduleCommandsImpl{
		scheduleRepo:    scheduleRepo,
		scheduleQueries: scheduleQueries,
		pool:            pool,
	}
}

func (c *scheduleCommandsImpl) UpdateSchedule(
	ctx context.Context,
	businessID uuid.UUID,
	in UpdateScheduleInput,
) (*queries.ScheduleView, error) {
	snap, err := c.scheduleRepo.SettingsByBusiness(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrScheduleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	next := snap.Settings
	if in.MinAdvanceBookingHours != nil {
		next.MinAdvanceBookingHours = in.MinAdvanceBookingHours
	}
	if in.MaxAdvanceBookingDays != nil {
		next.MaxAdvanceBookingDays = in.MaxAdvanceBookingDays
	}
	if in.DefaultSlotDurationMinutes != nil {
		next.DefaultSlotDurationMinutes = *in.DefaultSlotDurationMinutes
	}
	if in.AutoConfirmAppointments != nil {
		next.AutoConfirmAppointments = *in.AutoConfirmAppointments
	}
	if in.WorkingDays != nil {
		next.WorkingDays = in.WorkingDays
	}

	if err := next.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidWorkingDay)
	}

	_, err = db.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if err := c.scheduleRepo.ReplaceSettings(ctx, tx, snap.ID, next); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.scheduleQueries.GetByBusiness(ctx, businessID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *scheduleCommandsImpl) CreateDefaultSchedule(ctx context.Context, businessID uuid.UUID) (uuid.UUID, error) {
	return db.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		id, err := c.scheduleRepo.CreateDefault(ctx, tx, businessID, schedule.DefaultSettings())
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return uuid.Nil, errs.ErrScheduleExists
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return uuid.Nil, errs.ErrBusinessNotFound
			}
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return id, nil
	})
}

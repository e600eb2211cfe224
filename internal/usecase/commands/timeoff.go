package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/infra/db"
	"github.com/notfound999/reservations/internal/pkg/errs"
)

type AddTimeOffInput struct {
	StartAt time.Time
	EndAt   time.Time
	Reason  string
}

type TimeOffCommands interface {
	AddTimeOff(ctx context.Context, businessID uuid.UUID, in AddTimeOffInput) (uuid.UUID, error)
	DeleteTimeOff(ctx context.Context, id uuid.UUID) error
}

type timeOffCommandsImpl struct {
	timeOffRepo  TimeOffRepository
	scheduleRepo ScheduleRepository
	pool         *pgxpool.Pool
}

func NewTimeOffCommands(
	timeOffRepo TimeOffRepository,
	scheduleRepo ScheduleRepository,
	pool *pgxpool.Pool,
) TimeOffCommands {
	return &timeOffCommandsImpl{
		timeOffRepo:  timeOffRepo,
		scheduleRepo: scheduleRepo,
		pool:         pool,
	}
}

// AddTimeOff blocks an interval without touching reservations that already
// fall inside it; only future admissions are rejected.
func (c *timeOffCommandsImpl) AddTimeOff(
	ctx context.Context,
	businessID uuid.UUID,
	in AddTimeOffInput,
) (uuid.UUID, error) {
	snap, err := c.scheduleRepo.SettingsByBusiness(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrScheduleNotFound
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	timeOff, err := schedule.NewTimeOff(in.StartAt, in.EndAt, in.Reason)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidTimeOff)
	}

	return db.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		id, err := c.timeOffRepo.Create(ctx, tx, snap.ID, timeOff)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return id, nil
	})
}

func (c *timeOffCommandsImpl) DeleteTimeOff(ctx context.Context, id uuid.UUID) error {
	if _, err := c.timeOffRepo.FindScheduleID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrTimeOffNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	_, err := db.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if err := c.timeOffRepo.Delete(ctx, tx, id); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/infra/db"
	"github.com/notfound999/reservations/internal/pkg/pgconv"
)

type TimeOffRepository struct {
	pool *pgxpool.Pool
}

func NewTimeOffRepository(pool *pgxpool.Pool) *TimeOffRepository {
	return &TimeOffRepository{pool: pool}
}

func (r *TimeOffRepository) Create(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID, t schedule.TimeOff) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO time_off (id, schedule_id, start_at, end_at, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, t.ID, scheduleID, t.StartAt, t.EndAt, t.Reason).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create time off", err)
	}
	return id, nil
}

func (r *TimeOffRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM time_off WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete time off", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time off not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TimeOffRepository) FindScheduleID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var scheduleID uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT schedule_id FROM time_off WHERE id = $1`, id).Scan(&scheduleID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("time off not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find time off", err)
	}
	return scheduleID, nil
}

// HasConflict reports whether any time-off interval of the business strictly
// overlaps [start, end).
func (r *TimeOffRepository) HasConflict(ctx context.Context, tx db.DBTX, businessID uuid.UUID, start, end time.Time) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM time_off t
			JOIN schedule_settings s ON s.id = t.schedule_id
			WHERE s.business_id = $1
			  AND t.start_at < $3
			  AND t.end_at > $2
		)
	`, businessID, start, end).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check time off conflict", err)
	}
	return exists, nil
}

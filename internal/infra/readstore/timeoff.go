package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

type TimeOffReadStore struct {
	pool *pgxpool.Pool
}

func NewTimeOffReadStore(pool *pgxpool.Pool) *TimeOffReadStore {
	return &TimeOffReadStore{pool: pool}
}

func (r *TimeOffReadStore) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*queries.TimeOffView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.start_at, t.end_at, t.reason
		FROM time_off t
		JOIN schedule_settings s ON s.id = t.schedule_id
		WHERE s.business_id = $1
		ORDER BY t.start_at
	`, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time off", err)
	}
	defer rows.Close()

	var views []*queries.TimeOffView
	for rows.Next() {
		var view queries.TimeOffView
		if err := rows.Scan(&view.ID, &view.StartAt, &view.EndAt, &view.Reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time off", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate time off", err)
	}
	return views, nil
}

func (r *TimeOffReadStore) InRange(ctx context.Context, businessID uuid.UUID, viewStart, viewEnd time.Time) ([]queries.OccupiedInterval, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.start_at, t.end_at
		FROM time_off t
		JOIN schedule_settings s ON s.id = t.schedule_id
		WHERE s.business_id = $1
		  AND t.start_at < $3
		  AND t.end_at > $2
		ORDER BY t.start_at
	`, businessID, viewStart, viewEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time off in range", err)
	}
	defer rows.Close()

	var intervals []queries.OccupiedInterval
	for rows.Next() {
		var iv queries.OccupiedInterval
		if err := rows.Scan(&iv.StartAt, &iv.EndAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time off interval", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate time off intervals", err)
	}
	return intervals, nil
}

package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/pkg/pgconv"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

const reservationViewSelect = `
	SELECT r.id, r.business_id, b.name, r.offering_id, o.name, r.user_id, u.name,
		r.start_at, r.end_at, r.status, r.note, r.created_at
	FROM reservations r
	JOIN businesses b ON b.id = r.business_id
	JOIN offerings o ON o.id = r.offering_id
	JOIN users u ON u.id = r.user_id
`

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.pool.QueryRow(ctx, reservationViewSelect+` WHERE r.id = $1`, id)
	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.pool.Query(ctx, reservationViewSelect+` WHERE r.user_id = $1 ORDER BY r.start_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	return collectReservationViews(rows)
}

func (r *ReservationReadStore) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.pool.Query(ctx, reservationViewSelect+` WHERE r.business_id = $1 ORDER BY r.start_at DESC`, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by business", err)
	}
	return collectReservationViews(rows)
}

// ActiveInRange returns the intervals of non-cancelled reservations that
// strictly intersect [viewStart, viewEnd).
func (r *ReservationReadStore) ActiveInRange(ctx context.Context, businessID uuid.UUID, viewStart, viewEnd time.Time) ([]queries.OccupiedInterval, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_at, end_at
		FROM reservations
		WHERE business_id = $1
		  AND status <> 'cancelled'
		  AND start_at < $3
		  AND end_at > $2
		ORDER BY start_at
	`, businessID, viewStart, viewEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}
	defer rows.Close()

	var intervals []queries.OccupiedInterval
	for rows.Next() {
		var iv queries.OccupiedInterval
		if err := rows.Scan(&iv.StartAt, &iv.EndAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation interval", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation intervals", err)
	}
	return intervals, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := row.Scan(
		&view.ID,
		&view.BusinessID,
		&view.BusinessName,
		&view.OfferingID,
		&view.OfferingName,
		&view.UserID,
		&view.UserName,
		&view.StartAt,
		&view.EndAt,
		&view.Status,
		&view.Note,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation views", err)
	}
	return views, nil
}

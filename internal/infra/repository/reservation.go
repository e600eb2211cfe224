package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/domain/reservation"
	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/infra/db"
	"github.com/notfound999/reservations/internal/pkg/pgconv"
	"github.com/notfound999/reservations/internal/usecase/commands"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO reservations (id, business_id, offering_id, user_id, start_at, end_at, status, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`,
		res.ID(),
		res.BusinessID(),
		res.OfferingID(),
		res.UserID(),
		res.Slot().Start(),
		res.Slot().End(),
		res.Status().String(),
		pgconv.StringPtrToPgtype(res.Note()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error {
	tag, err := tx.Exec(ctx, `
		UPDATE reservations
		SET status = $2, updated_at = now()
		WHERE id = $1
	`, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	var (
		snap   commands.ReservationSnapshot
		status string
		note   *string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, business_id, offering_id, user_id, start_at, end_at, status, note, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`, id).Scan(
		&snap.ID,
		&snap.BusinessID,
		&snap.OfferingID,
		&snap.UserID,
		&snap.StartAt,
		&snap.EndAt,
		&status,
		&note,
		&snap.CreatedAt,
		&snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	snap.Status = reservation.Status(status)
	snap.Note = note
	return &snap, nil
}

// ExistsOverlap is the strict half-open interval test against every
// non-cancelled reservation of the business. Adjacent slots sharing a
// boundary instant do not count.
func (r *ReservationRepository) ExistsOverlap(ctx context.Context, tx db.DBTX, businessID uuid.UUID, start, end time.Time) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE business_id = $1
			  AND status <> 'cancelled'
			  AND start_at < $3
			  AND end_at > $2
		)
	`, businessID, start, end).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

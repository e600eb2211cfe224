package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/pkg/pgconv"
	"github.com/notfound999/reservations/internal/usecase/commands"
)

// UserRepository and BusinessRepository back the narrow directory interfaces
// the command layer reads business and user facts through.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) UserByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	var snap commands.UserSnapshot
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM users WHERE id = $1`, id).Scan(&snap.ID, &snap.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &snap, nil
}

type BusinessRepository struct {
	pool *pgxpool.Pool
}

func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

func (r *BusinessRepository) BusinessByID(ctx context.Context, id uuid.UUID) (*commands.BusinessSnapshot, error) {
	var snap commands.BusinessSnapshot
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, owner_id
		FROM businesses
		WHERE id = $1
	`, id).Scan(&snap.ID, &snap.Name, &snap.OwnerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find business", err)
	}
	return &snap, nil
}

func (r *BusinessRepository) OfferingByID(ctx context.Context, id uuid.UUID) (*commands.OfferingSnapshot, error) {
	var (
		snap   commands.OfferingSnapshot
		buffer *int32
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, business_id, name, price, duration_minutes, buffer_time_minutes
		FROM offerings
		WHERE id = $1
	`, id).Scan(&snap.ID, &snap.BusinessID, &snap.Name, &snap.Price, &snap.DurationMinutes, &buffer)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offering not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offering", err)
	}
	if buffer != nil {
		v := int(*buffer)
		snap.BufferTimeMinutes = &v
	}
	return &snap, nil
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/infra/db"
	"github.com/notfound999/reservations/internal/pkg/pgconv"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) MarkRead(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE
	`, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}

func (r *NotificationRepository) FindOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT user_id FROM notifications WHERE id = $1`, id).Scan(&ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("notification not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find notification", err)
	}
	return ownerID, nil
}

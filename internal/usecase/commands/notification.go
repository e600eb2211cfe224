package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/infra/db"
	"github.com/notfound999/reservations/internal/pkg/errs"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, actorID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, actorID uuid.UUID) (int64, error)
}

type notificationCommandsImpl struct {
	notificationRepo NotificationRepository
	pool             *pgxpool.Pool
}

func NewNotificationCommands(notificationRepo NotificationRepository, pool *pgxpool.Pool) NotificationCommands {
	return &notificationCommandsImpl{
		notificationRepo: notificationRepo,
		pool:             pool,
	}
}

func (c *notificationCommandsImpl) MarkRead(ctx context.Context, actorID, notificationID uuid.UUID) error {
	ownerID, err := c.notificationRepo.FindOwner(ctx, notificationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrNotificationNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if ownerID != actorID {
		return errs.ErrForbidden
	}

	_, err = db.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if err := c.notificationRepo.MarkRead(ctx, tx, notificationID, actorID); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *notificationCommandsImpl) MarkAllRead(ctx context.Context, actorID uuid.UUID) (int64, error) {
	return db.RunInTx(ctx, c.pool, func(tx db.DBTX) (int64, error) {
		count, err := c.notificationRepo.MarkAllRead(ctx, tx, actorID)
		if err != nil {
			return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return count, nil
	})
}

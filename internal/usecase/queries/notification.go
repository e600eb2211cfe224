package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/pkg/errs"
)

const notificationFeedLimit = 10

type NotificationQueries interface {
	Latest(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	reads NotificationReadStore
}

func NewNotificationQueries(reads NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{reads: reads}
}

func (q *notificationQueriesImpl) Latest(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error) {
	views, err := q.reads.Latest(ctx, userID, notificationFeedLimit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := q.reads.UnreadCount(ctx, userID)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return count, nil
}

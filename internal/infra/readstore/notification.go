package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/notify"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

// NotificationReadStore serves the notification feed and doubles as the sink
// the dispatcher persists through.
type NotificationReadStore struct {
	pool *pgxpool.Pool
}

func NewNotificationReadStore(pool *pgxpool.Pool) *NotificationReadStore {
	return &NotificationReadStore{pool: pool}
}

func (r *NotificationReadStore) Latest(ctx context.Context, userID uuid.UUID, limit int) ([]*queries.NotificationView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, message, kind, target_url, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var views []*queries.NotificationView
	for rows.Next() {
		var (
			view queries.NotificationView
			kind string
		)
		if err := rows.Scan(&view.ID, &view.Title, &view.Message, &kind, &view.TargetURL, &view.IsRead, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification", err)
		}
		view.Kind = notify.Kind(kind)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notifications", err)
	}
	return views, nil
}

func (r *NotificationReadStore) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1 AND is_read = FALSE
	`, userID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}

func (r *NotificationReadStore) Insert(ctx context.Context, n notify.Notification) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notifications (user_id, title, message, kind, target_url)
		VALUES ($1, $2, $3, $4, $5)
	`, n.UserID, n.Title, n.Message, string(n.Kind), n.TargetURL)
	if err != nil {
		return infra.WrapRepoErr("failed to insert notification", err)
	}
	return nil
}

package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/usecase/queries"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	TargetURL string    `json:"targetUrl"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromNotificationView(nv *queries.NotificationView) *NotificationResponse {
	return &NotificationResponse{
		ID:        nv.ID,
		Title:     nv.Title,
		Message:   nv.Message,
		Kind:      string(nv.Kind),
		TargetURL: nv.TargetURL,
		IsRead:    nv.IsRead,
		CreatedAt: nv.CreatedAt,
	}
}

func FromNotificationViews(nvs []*queries.NotificationView) []*NotificationResponse {
	out := make([]*NotificationResponse, len(nvs))
	for i, nv := range nvs {
		out[i] = FromNotificationView(nv)
	}
	return out
}

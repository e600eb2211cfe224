package notify

import (
	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "SUCCESS"
	KindInfo    Kind = "INFO"
	KindWarning Kind = "WARNING"
	KindAlert   Kind = "ALERT"
)

// Notification is one outbound message for a user. Delivery is best-effort;
// the booking write path never waits on it.
type Notification struct {
	UserID    uuid.UUID
	Title     string
	Message   string
	Kind      Kind
	TargetURL string
}

// Notifier is the sink the engine emits to after a successful state change.
type Notifier interface {
	Notify(n Notification)
}

package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/notify"
)

// Read models returned to the HTTP surface. Names are denormalized in SQL so
// a list render needs no extra lookups.

type ReservationView struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	BusinessName string
	OfferingID   uuid.UUID
	OfferingName string
	UserID       uuid.UUID
	UserName     string
	StartAt      time.Time
	EndAt        time.Time
	Status       string
	Note         *string
	CreatedAt    time.Time
}

type ScheduleView struct {
	ID                         uuid.UUID
	BusinessID                 uuid.UUID
	MinAdvanceBookingHours     *int
	MaxAdvanceBookingDays      *int
	DefaultSlotDurationMinutes int
	AutoConfirmAppointments    bool
	WorkingDays                []schedule.WorkingDay
}

type TimeOffView struct {
	ID      uuid.UUID
	StartAt time.Time
	EndAt   time.Time
	Reason  string
}

type NotificationView struct {
	ID        uuid.UUID
	Title     string
	Message   string
	Kind      notify.Kind
	TargetURL string
	IsRead    bool
	CreatedAt time.Time
}

// OccupiedInterval is a raw busy interval fetched from storage before it is
// folded into the busy-block list.
type OccupiedInterval struct {
	StartAt time.Time
	EndAt   time.Time
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*ReservationView, error)
	// ActiveInRange returns intervals of non-cancelled reservations
	// intersecting [viewStart, viewEnd).
	ActiveInRange(ctx context.Context, businessID uuid.UUID, viewStart, viewEnd time.Time) ([]OccupiedInterval, error)
}

type ScheduleReadStore interface {
	FindByBusiness(ctx context.Context, businessID uuid.UUID) (*ScheduleView, error)
}

type TimeOffReadStore interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*TimeOffView, error)
	InRange(ctx context.Context, businessID uuid.UUID, viewStart, viewEnd time.Time) ([]OccupiedInterval, error)
}

type NotificationReadStore interface {
	Latest(ctx context.Context, userID uuid.UUID, limit int) ([]*NotificationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

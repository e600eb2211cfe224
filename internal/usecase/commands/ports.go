package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/domain/reservation"
	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/infra/db"
)

// Write-side snapshots keep the command layer off the read-side view types.
type BusinessSnapshot struct {
	ID      uuid.UUID
	Name    string
	OwnerID uuid.UUID
}

type OfferingSnapshot struct {
	ID                uuid.UUID
	BusinessID        uuid.UUID
	Name              string
	Price             float64
	DurationMinutes   int
	BufferTimeMinutes *int
}

type UserSnapshot struct {
	ID   uuid.UUID
	Name string
}

type ScheduleSnapshot struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Settings   schedule.Settings
}

type ReservationSnapshot struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	OfferingID uuid.UUID
	UserID     uuid.UUID
	StartAt    time.Time
	EndAt      time.Time
	Status     reservation.Status
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UserDirectory and BusinessDirectory are the narrow views onto data this
// service does not own.
type UserDirectory interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type BusinessDirectory interface {
	BusinessByID(ctx context.Context, id uuid.UUID) (*BusinessSnapshot, error)
	OfferingByID(ctx context.Context, id uuid.UUID) (*OfferingSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// ExistsOverlap runs the strict [a,b) conflict test against non-cancelled
	// reservations of the business.
	ExistsOverlap(ctx context.Context, tx db.DBTX, businessID uuid.UUID, start, end time.Time) (bool, error)
}

type ScheduleRepository interface {
	SettingsByBusiness(ctx context.Context, businessID uuid.UUID) (*ScheduleSnapshot, error)
	CreateDefault(ctx context.Context, tx db.DBTX, businessID uuid.UUID, s schedule.Settings) (uuid.UUID, error)
	// ReplaceSettings updates the settings row and swaps all seven
	// working-day rows wholesale.
	ReplaceSettings(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID, s schedule.Settings) error
}

type TimeOffRepository interface {
	Create(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID, t schedule.TimeOff) (uuid.UUID, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	FindScheduleID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	HasConflict(ctx context.Context, tx db.DBTX, businessID uuid.UUID, start, end time.Time) (bool, error)
}

type NotificationRepository interface {
	MarkRead(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int64, error)
	FindOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

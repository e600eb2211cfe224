//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/domain/reservation"
	reqdto "github.com/notfound999/reservations/internal/handler/dto/request"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	BusinessName string
	OfferingID   uuid.UUID
	OfferingName string
	UserID       uuid.UUID
	UserName     string
	StartAt      time.Time
	EndAt        time.Time
	Status       reservation.Status
	Note         *string
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:           uuid.New(),
		BusinessID:   uuid.New(),
		BusinessName: "Fade Factory",
		OfferingID:   uuid.New(),
		OfferingName: "Haircut",
		UserID:       uuid.New(),
		UserName:     "Alex Carter",
		StartAt:      start,
		EndAt:        start.Add(30 * time.Minute),
		Status:       reservation.StatusConfirmed,
		CreatedAt:    start.Add(-48 * time.Hour),
	}
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	b.StartAt = start
	b.EndAt = end
	return b
}

func (b *ReservationBuilder) WithNote(note string) *ReservationBuilder {
	b.Note = &note
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(b.StartAt, b.EndAt)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		b.ID, b.BusinessID, b.OfferingID, b.UserID,
		slot, b.Status, b.Note, b.CreatedAt, b.CreatedAt,
	), nil
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           b.ID,
		BusinessID:   b.BusinessID,
		BusinessName: b.BusinessName,
		OfferingID:   b.OfferingID,
		OfferingName: b.OfferingName,
		UserID:       b.UserID,
		UserName:     b.UserName,
		StartAt:      b.StartAt,
		EndAt:        b.EndAt,
		Status:       b.Status.String(),
		Note:         b.Note,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		BusinessID: b.BusinessID,
		OfferingID: b.OfferingID,
		StartTime:  b.StartAt,
		Note:       b.Note,
	}
}

package request

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/usecase/commands"
)

type CreateReservationRequest struct {
	BusinessID uuid.UUID `json:"business_id" binding:"required"`
	OfferingID uuid.UUID `json:"offering_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	Note       *string   `json:"note,omitempty"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	note := r.Note
	if note != nil {
		trimmed := strings.TrimSpace(*note)
		if trimmed == "" {
			note = nil
		} else {
			note = &trimmed
		}
	}
	return commands.CreateReservationInput{
		BusinessID: r.BusinessID,
		OfferingID: r.OfferingID,
		StartAt:    r.StartTime,
		Note:       note,
	}
}

type RejectReservationRequest struct {
	Reason string `json:"reason,omitempty"`
}

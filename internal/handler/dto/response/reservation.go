package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/usecase/queries"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	BusinessID   uuid.UUID `json:"businessId"`
	BusinessName string    `json:"businessName"`
	OfferingID   uuid.UUID `json:"offeringId"`
	OfferingName string    `json:"offeringName"`
	UserID       uuid.UUID `json:"userId"`
	UserName     string    `json:"userName"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           rm.ID,
		BusinessID:   rm.BusinessID,
		BusinessName: rm.BusinessName,
		OfferingID:   rm.OfferingID,
		OfferingName: rm.OfferingName,
		UserID:       rm.UserID,
		UserName:     rm.UserName,
		StartTime:    rm.StartAt,
		EndTime:      rm.EndAt,
		Status:       rm.Status,
		Note:         rm.Note,
		CreatedAt:    rm.CreatedAt,
	}
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromReservationView(rm)
	}
	return out
}

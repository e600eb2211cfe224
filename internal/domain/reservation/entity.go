package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrNotPending       = errors.New("reservation is not pending")
)

// Reservation is one admitted booking. Status is the only mutable field;
// rows are never deleted, cancellation is soft state.
type Reservation struct {
	id         uuid.UUID
	businessID uuid.UUID
	offeringID uuid.UUID
	userID     uuid.UUID
	slot       TimeSlot
	status     Status
	note       *string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReservation admits a validated candidate. autoConfirm picks the initial
// status; all policy and conflict checks happen before this constructor.
func NewReservation(
	businessID, offeringID, userID uuid.UUID,
	slot TimeSlot,
	autoConfirm bool,
	note *string,
) *Reservation {
	status := StatusPending
	if autoConfirm {
		status = StatusConfirmed
	}
	return &Reservation{
		id:         uuid.New(),
		businessID: businessID,
		offeringID: offeringID,
		userID:     userID,
		slot:       slot,
		status:     status,
		note:       note,
	}
}

func ReconstructReservation(
	id, businessID, offeringID, userID uuid.UUID,
	slot TimeSlot,
	status Status,
	note *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		businessID: businessID,
		offeringID: offeringID,
		userID:     userID,
		slot:       slot,
		status:     status,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Confirm applies PENDING -> CONFIRMED.
func (r *Reservation) Confirm() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusConfirmed
	return nil
}

// Reject applies PENDING -> CANCELLED.
func (r *Reservation) Reject() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusCancelled
	return nil
}

// Cancel applies PENDING/CONFIRMED -> CANCELLED. CANCELLED is terminal.
func (r *Reservation) Cancel() error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status != StatusCancelled
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) BusinessID() uuid.UUID { return r.businessID }
func (r *Reservation) OfferingID() uuid.UUID { return r.offeringID }
func (r *Reservation) UserID() uuid.UUID     { return r.userID }
func (r *Reservation) Slot() TimeSlot        { return r.slot }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Note() *string         { return r.note }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }

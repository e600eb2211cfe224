package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notfound999/reservations/internal/domain/reservation"
	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/infra/db"
	"github.com/notfound999/reservations/internal/notify"
	"github.com/notfound999/reservations/internal/pkg/clock"
	"github.com/notfound999/reservations/internal/pkg/errs"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

// notificationDateLayout renders slot starts inside notification copy.
const notificationDateLayout = "Jan 02, 2006 at 15:04"

type CreateReservationInput struct {
	BusinessID uuid.UUID
	OfferingID uuid.UUID
	StartAt    time.Time
	Note       *string
}

type ReservationCommands interface {
	// CreateReservation runs the full admission pipeline: offering lookup,
	// policy validation, then a transactional conflict check and insert.
	CreateReservation(ctx context.Context, actorID uuid.UUID, in CreateReservationInput) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, actorID, reservationID uuid.UUID) error
	ConfirmReservation(ctx context.Context, actorID, reservationID uuid.UUID) (*queries.ReservationView, error)
	RejectReservation(ctx context.Context, actorID, reservationID uuid.UUID, reason string) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	reservationRepo    ReservationRepository
	scheduleRepo       ScheduleRepository
	timeOffRepo        TimeOffRepository
	users              UserDirectory
	businesses         BusinessDirectory
	reservationQueries queries.ReservationQueries
	notifier           notify.Notifier
	pool               *pgxpool.Pool
	clock              clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	timeOffRepo TimeOffRepository,
	users UserDirectory,
	businesses BusinessDirectory,
	reservationQueries queries.ReservationQueries,
	notifier notify.Notifier,
	pool *pgxpool.Pool,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo:    reservationRepo,
		scheduleRepo:       scheduleRepo,
		timeOffRepo:        timeOffRepo,
		users:              users,
		businesses:         businesses,
		reservationQueries: reservationQueries,
		notifier:           notifier,
		pool:               pool,
		clock:              clock,
	}
}

func (c *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	actorID uuid.UUID,
	in CreateReservationInput,
) (*queries.ReservationView, error) {
	offering, err := c.businesses.OfferingByID(ctx, in.OfferingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOfferingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// The caller picks only the start; the offering determines the length.
	endAt := in.StartAt.Add(time.Duration(offering.DurationMinutes) * time.Minute)
	slot, err := reservation.NewTimeSlot(in.StartAt, endAt)
	if err != nil {
		return nil, errs.Wrap(err, "invalid reservation interval")
	}

	scheduleSnap, err := c.scheduleRepo.SettingsByBusiness(ctx, in.BusinessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrScheduleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := schedule.ValidateCandidate(c.clock.Now(), slot.Start(), slot.End(), scheduleSnap.Settings); err != nil {
		return nil, err
	}

	business, err := c.businesses.BusinessByID(ctx, in.BusinessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBusinessNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	user, err := c.users.UserByID(ctx, actorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	autoConfirm := scheduleSnap.Settings.AutoConfirmAppointments
	entity := reservation.NewReservation(business.ID, offering.ID, user.ID, slot, autoConfirm, in.Note)

	reservationID, err := db.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		taken, err := c.reservationRepo.ExistsOverlap(ctx, tx, business.ID, slot.Start(), slot.End())
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if taken {
			return uuid.Nil, errs.ErrSlotTaken
		}

		blocked, err := c.timeOffRepo.HasConflict(ctx, tx, business.ID, slot.Start(), slot.End())
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if blocked {
			return uuid.Nil, errs.ErrBusinessUnavailable
		}

		id, err := c.reservationRepo.Create(ctx, tx, entity)
		if err != nil {
			// The exclusion constraint catches admissions racing past the
			// ExistsOverlap check above.
			if infra.IsKind(err, infra.KindConflict) {
				return uuid.Nil, errs.ErrSlotTaken
			}
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return id, nil
	})
	if err != nil {
		return nil, err
	}

	c.notifyCreated(business, offering, user, slot.Start(), autoConfirm)

	view, err := c.reservationQueries.GetByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) notifyCreated(
	business *BusinessSnapshot,
	offering *OfferingSnapshot,
	user *UserSnapshot,
	startAt time.Time,
	autoConfirm bool,
) {
	formattedDate := startAt.Format(notificationDateLayout)

	ownerTitle := "New Reservation Request"
	ownerSuffix := " Please review and confirm."
	ownerKind := notify.KindInfo
	if autoConfirm {
		ownerTitle = "New Reservation Confirmed"
		ownerSuffix = ""
		ownerKind = notify.KindSuccess
	}
	c.notifier.Notify(notify.Notification{
		UserID:    business.OwnerID,
		Title:     ownerTitle,
		Message:   fmt.Sprintf("%s booked '%s' for %s.%s", user.Name, offering.Name, formattedDate, ownerSuffix),
		Kind:      ownerKind,
		TargetURL: "/dashboard",
	})

	if autoConfirm {
		c.notifier.Notify(notify.Notification{
			UserID: user.ID,
			Title:  "Reservation Confirmed",
			Message: fmt.Sprintf("Your reservation at %s for '%s' on %s has been confirmed.",
				business.Name, offering.Name, formattedDate),
			Kind:      notify.KindSuccess,
			TargetURL: "/reservations",
		})
	} else {
		c.notifier.Notify(notify.Notification{
			UserID: user.ID,
			Title:  "Reservation Received",
			Message: fmt.Sprintf("Your reservation request at %s for '%s' on %s has been received. The business will review and confirm shortly.",
				business.Name, offering.Name, formattedDate),
			Kind:      notify.KindInfo,
			TargetURL: "/reservations",
		})
	}
}

func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, actorID, reservationID uuid.UUID) error {
	snap, business, err := c.loadReservationWithBusiness(ctx, reservationID)
	if err != nil {
		return err
	}

	isCustomer := snap.UserID == actorID
	isOwner := business.OwnerID == actorID
	if !isCustomer && !isOwner {
		return errs.ErrForbidden
	}

	entity, err := reservationFromSnapshot(snap)
	if err != nil {
		return err
	}
	if err := entity.Cancel(); err != nil {
		if errors.Is(err, reservation.ErrAlreadyCancelled) {
			return errs.ErrAlreadyCancelled
		}
		return err
	}

	if err := c.persistStatus(ctx, snap.ID, entity.Status()); err != nil {
		return err
	}

	offering, err := c.businesses.OfferingByID(ctx, snap.OfferingID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	formattedDate := snap.StartAt.Format(notificationDateLayout)

	if isCustomer {
		user, err := c.users.UserByID(ctx, snap.UserID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		c.notifier.Notify(notify.Notification{
			UserID: business.OwnerID,
			Title:  "Reservation Cancelled",
			Message: fmt.Sprintf("%s cancelled their reservation for '%s' on %s.",
				user.Name, offering.Name, formattedDate),
			Kind:      notify.KindWarning,
			TargetURL: "/dashboard",
		})
	} else {
		c.notifier.Notify(notify.Notification{
			UserID: snap.UserID,
			Title:  "Reservation Cancelled",
			Message: fmt.Sprintf("Your reservation at %s for '%s' on %s has been cancelled by the business.",
				business.Name, offering.Name, formattedDate),
			Kind:      notify.KindAlert,
			TargetURL: "/reservations",
		})
	}
	return nil
}

func (c *reservationCommandsImpl) ConfirmReservation(
	ctx context.Context,
	actorID, reservationID uuid.UUID,
) (*queries.ReservationView, error) {
	snap, business, err := c.loadReservationWithBusiness(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if business.OwnerID != actorID {
		return nil, errs.ErrForbidden
	}

	entity, err := reservationFromSnapshot(snap)
	if err != nil {
		return nil, err
	}
	if err := entity.Confirm(); err != nil {
		if errors.Is(err, reservation.ErrNotPending) {
			return nil, errs.ErrNotPending
		}
		return nil, err
	}

	if err := c.persistStatus(ctx, snap.ID, entity.Status()); err != nil {
		return nil, err
	}

	offering, err := c.businesses.OfferingByID(ctx, snap.OfferingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	c.notifier.Notify(notify.Notification{
		UserID: snap.UserID,
		Title:  "Reservation Confirmed",
		Message: fmt.Sprintf("Your reservation at %s for '%s' on %s has been confirmed!",
			business.Name, offering.Name, snap.StartAt.Format(notificationDateLayout)),
		Kind:      notify.KindSuccess,
		TargetURL: "/reservations",
	})

	view, err := c.reservationQueries.GetByID(ctx, snap.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) RejectReservation(
	ctx context.Context,
	actorID, reservationID uuid.UUID,
	reason string,
) (*queries.ReservationView, error) {
	snap, business, err := c.loadReservationWithBusiness(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if business.OwnerID != actorID {
		return nil, errs.ErrForbidden
	}

	entity, err := reservationFromSnapshot(snap)
	if err != nil {
		return nil, err
	}
	if err := entity.Reject(); err != nil {
		if errors.Is(err, reservation.ErrNotPending) {
			return nil, errs.ErrNotPending
		}
		return nil, err
	}

	if err := c.persistStatus(ctx, snap.ID, entity.Status()); err != nil {
		return nil, err
	}

	offering, err := c.businesses.OfferingByID(ctx, snap.OfferingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	reasonText := ""
	if reason != "" {
		reasonText = " Reason: " + reason
	}
	c.notifier.Notify(notify.Notification{
		UserID: snap.UserID,
		Title:  "Reservation Rejected",
		Message: fmt.Sprintf("Your reservation at %s for '%s' on %s was not approved.%s",
			business.Name, offering.Name, snap.StartAt.Format(notificationDateLayout), reasonText),
		Kind:      notify.KindAlert,
		TargetURL: "/reservations",
	})

	view, err := c.reservationQueries.GetByID(ctx, snap.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) loadReservationWithBusiness(
	ctx context.Context,
	reservationID uuid.UUID,
) (*ReservationSnapshot, *BusinessSnapshot, error) {
	snap, err := c.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrReservationNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	business, err := c.businesses.BusinessByID(ctx, snap.BusinessID)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, business, nil
}

func (c *reservationCommandsImpl) persistStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	_, err := db.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if err := c.reservationRepo.UpdateStatus(ctx, tx, id, status); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func reservationFromSnapshot(snap *ReservationSnapshot) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(snap.StartAt, snap.EndAt)
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation has an invalid interval")
	}
	return reservation.ReconstructReservation(
		snap.ID,
		snap.BusinessID,
		snap.OfferingID,
		snap.UserID,
		slot,
		snap.Status,
		snap.Note,
		snap.CreatedAt,
		snap.UpdatedAt,
	), nil
}

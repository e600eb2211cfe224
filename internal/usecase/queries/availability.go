package queries

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/domain/availability"
	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/pkg/errs"
)

type AvailabilityQueries interface {
	// BusyBlocks recomputes the busy intervals for the window on every call.
	// The result is a union of possibly-overlapping blocks sorted by start;
	// it is never cached and never merged.
	BusyBlocks(ctx context.Context, businessID uuid.UUID, viewStart, viewEnd time.Time) ([]availability.BusyBlock, error)
}

type availabilityQueriesImpl struct {
	scheduleReads    ScheduleReadStore
	reservationReads ReservationReadStore
	timeOffReads     TimeOffReadStore
}

func NewAvailabilityQueries(
	scheduleReads ScheduleReadStore,
	reservationReads ReservationReadStore,
	timeOffReads TimeOffReadStore,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		scheduleReads:    scheduleReads,
		reservationReads: reservationReads,
		timeOffReads:     timeOffReads,
	}
}

func (q *availabilityQueriesImpl) BusyBlocks(
	ctx context.Context,
	businessID uuid.UUID,
	viewStart, viewEnd time.Time,
) ([]availability.BusyBlock, error) {
	if !viewEnd.After(viewStart) {
		return nil, errs.ErrInvalidWindow
	}

	view, err := q.scheduleReads.FindByBusiness(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrScheduleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	settings := schedule.Settings{
		MinAdvanceBookingHours:     view.MinAdvanceBookingHours,
		MaxAdvanceBookingDays:      view.MaxAdvanceBookingDays,
		DefaultSlotDurationMinutes: view.DefaultSlotDurationMinutes,
		AutoConfirmAppointments:    view.AutoConfirmAppointments,
		WorkingDays:                view.WorkingDays,
	}

	blocks := availability.ClosedBlocks(settings, viewStart, viewEnd)

	reserved, err := q.reservationReads.ActiveInRange(ctx, businessID, viewStart, viewEnd)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	for _, iv := range reserved {
		blocks = append(blocks, availability.BusyBlock{Start: iv.StartAt, End: iv.EndAt, Kind: availability.KindOccupied})
	}

	timeOff, err := q.timeOffReads.InRange(ctx, businessID, viewStart, viewEnd)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	for _, iv := range timeOff {
		blocks = append(blocks, availability.BusyBlock{Start: iv.StartAt, End: iv.EndAt, Kind: availability.KindOccupied})
	}

	// Stable: ties keep insertion order (closed before occupied).
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start.Before(blocks[j].Start)
	})

	return blocks, nil
}

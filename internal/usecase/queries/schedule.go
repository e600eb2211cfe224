package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/pkg/errs"
)

type ScheduleQueries interface {
	GetByBusiness(ctx context.Context, businessID uuid.UUID) (*ScheduleView, error)
	ListTimeOff(ctx context.Context, businessID uuid.UUID) ([]*TimeOffView, error)
}

type scheduleQueriesImpl struct {
	scheduleReads ScheduleReadStore
	timeOffReads  TimeOffReadStore
}

func NewScheduleQueries(scheduleReads ScheduleReadStore, timeOffReads TimeOffReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{
		scheduleReads: scheduleReads,
		timeOffReads:  timeOffReads,
	}
}

func (q *scheduleQueriesImpl) GetByBusiness(ctx context.Context, businessID uuid.UUID) (*ScheduleView, error) {
	view, err := q.scheduleReads.FindByBusiness(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrScheduleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *scheduleQueriesImpl) ListTimeOff(ctx context.Context, businessID uuid.UUID) ([]*TimeOffView, error) {
	views, err := q.timeOffReads.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/infra"
	"github.com/notfound999/reservations/internal/pkg/errs"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reads ReservationReadStore
}

func NewReservationQueries(reads ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{reads: reads}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.reads.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.reads.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

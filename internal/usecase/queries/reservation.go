package queries

import (
	"context"
	"time"

	"sarmiento-f5/internal/domain/reservation"
	"sarmiento-f5/internal/infra/receipt"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

var ErrNoConfirmedReservation = errs.New("no confirmed reservation")

type ReservationView struct {
	Nombre        string
	Telefono      string
	Email         string
	Fecha         string
	Hora          string
	Cancha        int
	Precio        int
	Sena          int
	Restante      int
	Pagado        bool
	FechaCreacion time.Time
	ArrivalNote   string
}

type ReservationReadStore interface {
	History(ctx context.Context) ([]*reservation.Reservation, error)
}

type ReceiptRenderer interface {
	Render(res *reservation.Reservation) (*receipt.Document, error)
}

type ReservationQueries interface {
	Confirmation(ctx context.Context) (*ReservationView, error)
	Receipt(ctx context.Context) (*receipt.Document, error)
	History(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store    ReservationReadStore
	receipts ReceiptRenderer
}

func NewReservationQueries(store ReservationReadStore, receipts ReceiptRenderer) ReservationQueries {
	return &reservationQueriesImpl{store: store, receipts: receipts}
}

// Confirmation shows the most recently confirmed reservation.
func (q *reservationQueriesImpl) Confirmation(ctx context.Context) (*ReservationView, error) {
	res, err := q.last(ctx)
	if err != nil {
		return nil, err
	}
	return ToReservationView(res), nil
}

func (q *reservationQueriesImpl) Receipt(ctx context.Context) (*receipt.Document, error) {
	res, err := q.last(ctx)
	if err != nil {
		return nil, err
	}
	return q.receipts.Render(res)
}

func (q *reservationQueriesImpl) History(ctx context.Context) ([]*ReservationView, error) {
	list, err := q.store.History(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	out := make([]*ReservationView, 0, len(list))
	for _, res := range list {
		out = append(out, ToReservationView(res))
	}
	return out, nil
}

func (q *reservationQueriesImpl) last(ctx context.Context) (*reservation.Reservation, error) {
	list, err := q.store.History(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	if len(list) == 0 {
		return nil, ErrNoConfirmedReservation
	}
	return list[len(list)-1], nil
}

// ToReservationView flattens a reservation with its seña split.
func ToReservationView(res *reservation.Reservation) *ReservationView {
	return &ReservationView{
		Nombre:        res.Contact().Name(),
		Telefono:      res.Contact().Phone(),
		Email:         res.Contact().Email(),
		Fecha:         res.Fecha(),
		Hora:          res.Hora(),
		Cancha:        res.Court().Int(),
		Precio:        res.Price().Amount(),
		Sena:          res.DownPayment().Amount(),
		Restante:      res.Remaining().Amount(),
		Pagado:        res.IsPaid(),
		FechaCreacion: res.CreatedAt(),
		ArrivalNote:   reservation.ArrivalNote,
	}
}

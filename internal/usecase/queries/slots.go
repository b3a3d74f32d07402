package queries

import (
	"context"

	"sarmiento-f5/internal/domain/reservation"
	"sarmiento-f5/internal/domain/slot"
	"sarmiento-f5/internal/pkg/fecha"
	"sarmiento-f5/internal/usecase/shared"
)

//go:generate mockgen -source=slots.go -destination=../../../tests/mock/queries/slots_mock.go -package=queriesmock

type CourtView struct {
	Court     int
	Available bool
}

type SlotView struct {
	ID          string
	Time        string
	Available   bool
	Courts      []CourtView
	Price       int
	DownPayment int
}

type DayScheduleView struct {
	Date  string
	Fecha string
	Slots []SlotView
}

type BoardCellView struct {
	Court    int
	Status   string
	Bookable bool
}

type BoardRowView struct {
	Range string
	Cells []BoardCellView
}

type SlotQueries interface {
	ForDate(ctx context.Context, date string) (*DayScheduleView, error)
	TodayBoard(ctx context.Context) ([]*BoardRowView, error)
}

type slotQueriesImpl struct {
	pricing  reservation.PriceCalculator
	calendar shared.Calendar
}

func NewSlotQueries(pricing reservation.PriceCalculator, calendar shared.Calendar) SlotQueries {
	return &slotQueriesImpl{pricing: pricing, calendar: calendar}
}

// ForDate lists the day's slots priced for that date. The availability
// pattern does not depend on the date.
func (q *slotQueriesImpl) ForDate(_ context.Context, date string) (*DayScheduleView, error) {
	day, err := q.calendar.ResolveDay(date)
	if err != nil {
		return nil, err
	}

	slots := slot.Generate()
	view := &DayScheduleView{
		Date:  fecha.ISODay(day),
		Fecha: fecha.Long(day),
		Slots: make([]SlotView, 0, len(slots)),
	}
	for _, ts := range slots {
		price, err := q.pricing.Price(day, ts.Time())
		if err != nil {
			return nil, err
		}
		courts := make([]CourtView, 0, slot.CourtCount)
		for i, free := range ts.Courts() {
			courts = append(courts, CourtView{Court: i + 1, Available: free})
		}
		view.Slots = append(view.Slots, SlotView{
			ID:          ts.ID(),
			Time:        ts.Time(),
			Available:   ts.Available(),
			Courts:      courts,
			Price:       price.Amount(),
			DownPayment: price.DownPayment().Amount(),
		})
	}
	return view, nil
}

func (q *slotQueriesImpl) TodayBoard(_ context.Context) ([]*BoardRowView, error) {
	board := slot.TodayBoard()
	rows := make([]*BoardRowView, 0, len(board))
	for _, r := range board {
		row := &BoardRowView{Range: r.Range, Cells: make([]BoardCellView, 0, len(r.Cells))}
		for _, c := range r.Cells {
			row.Cells = append(row.Cells, BoardCellView{
				Court:    c.Court.Int(),
				Status:   string(c.Status),
				Bookable: c.Bookable(),
			})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

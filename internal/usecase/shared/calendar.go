package shared

import (
	"strings"
	"time"

	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/errs"
	"sarmiento-f5/internal/pkg/fecha"
)

var ErrInvalidDate = errs.New("fecha must be YYYY-MM-DD")

// Calendar resolves the calendar days requests talk about in the venue's
// time zone.
type Calendar struct {
	Clock    clock.Clock
	Location *time.Location
}

func NewCalendar(clk clock.Clock, loc *time.Location) Calendar {
	return Calendar{Clock: clk, Location: loc}
}

func (c Calendar) Today() time.Time {
	return fecha.Day(c.Clock.Now(), c.Location)
}

// ResolveDay parses s, or returns today when s is blank.
func (c Calendar) ResolveDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return c.Today(), nil
	}
	day, err := fecha.ParseDay(s, c.Location)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidDate)
	}
	return day, nil
}

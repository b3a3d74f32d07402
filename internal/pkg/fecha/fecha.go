// Package fecha formats dates the way the booking pages display them (es-ES).
package fecha

import (
	"time"

	"github.com/goodsign/monday"
)

const (
	longLayout  = "2 de January"
	stampLayout = "02/01/2006 15:04"
	isoDay      = "2006-01-02"
)

// Long renders a day as "5 de octubre".
func Long(t time.Time) string {
	return monday.Format(t, longLayout, monday.LocaleEsES)
}

// Stamp renders an instant as "05/10/2025 14:30" in loc, or "-" when the
// instant is unknown.
func Stamp(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(loc).Format(stampLayout)
}

// ParseDay parses a YYYY-MM-DD calendar day at midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(isoDay, s, loc)
}

// Day returns the calendar day of t in loc at midnight.
func Day(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func ISODay(t time.Time) string {
	return t.Format(isoDay)
}

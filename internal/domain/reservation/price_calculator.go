package reservation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type PriceCalculator interface {
	Price(date time.Time, hourLabel string) (Money, error)
}

// DefaultPriceCalculator is the facility tariff: weekend or weekday, day or
// night. Night is NightFrom:00 onwards and before NightUntil:00.
type DefaultPriceCalculator struct {
	WeekendNight int
	WeekendDay   int
	WeekdayNight int
	WeekdayDay   int
	NightFrom    int
	NightUntil   int
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		WeekendNight: 18000,
		WeekendDay:   16000,
		WeekdayNight: 22000,
		WeekdayDay:   18000,
		NightFrom:    19,
		NightUntil:   8,
	}
}

func (pc *DefaultPriceCalculator) Price(date time.Time, hourLabel string) (Money, error) {
	hour, err := ParseHour(hourLabel)
	if err != nil {
		return Money{}, err
	}

	weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
	night := hour >= pc.NightFrom || hour < pc.NightUntil

	var amount int
	switch {
	case weekend && night:
		amount = pc.WeekendNight
	case weekend:
		amount = pc.WeekendDay
	case night:
		amount = pc.WeekdayNight
	default:
		amount = pc.WeekdayDay
	}
	return NewMoney(amount)
}

// ParseHour reads the integer before ':' in labels like "20:00" or "0:00".
func ParseHour(label string) (int, error) {
	head, _, _ := strings.Cut(label, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, label)
	}
	return hour, nil
}

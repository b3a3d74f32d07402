package slot

import (
	"errors"
	"fmt"
)

const CourtCount = 4

var ErrInvalidCourt = errors.New("court must be between 1 and 4")

// Court is a court number, 1 to CourtCount.
type Court int

func NewCourt(n int) (Court, error) {
	if n < 1 || n > CourtCount {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidCourt, n)
	}
	return Court(n), nil
}

func (c Court) Int() int {
	return int(c)
}

func (c Court) index() int {
	return int(c) - 1
}

func (c Court) String() string {
	return fmt.Sprintf("Cancha %d", int(c))
}

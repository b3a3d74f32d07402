package waitlist

import (
	"fmt"
	"strings"
	"time"

	"sarmiento-f5/internal/domain/slot"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/fecha"
	"sarmiento-f5/internal/pkg/outlink"
)

// Entry is a request to be called back if a taken slot frees up. Entries have
// no identity of their own; they are addressed by list position.
type Entry struct {
	name         string
	phone        string
	fecha        string
	hora         string
	court        slot.Court
	registeredAt time.Time
}

// NewEntry registers interest in a court that is taken in the slot pattern.
func NewEntry(c clock.Clock, name, phone string, date time.Time, ts slot.TimeSlot, court slot.Court) (*Entry, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, ErrNameRequired
	}
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	if ts.CourtAvailable(court) {
		return nil, fmt.Errorf("%w: %s %s", ErrCourtAvailable, court, ts.Time())
	}

	return &Entry{
		name:         name,
		phone:        phone,
		fecha:        fecha.Long(date),
		hora:         ts.Time(),
		court:        court,
		registeredAt: c.Now(),
	}, nil
}

func ReconstructEntry(name, phone, fechaLabel, hora string, court slot.Court, registeredAt time.Time) *Entry {
	return &Entry{
		name:         name,
		phone:        phone,
		fecha:        fechaLabel,
		hora:         hora,
		court:        court,
		registeredAt: registeredAt,
	}
}

// CallLink dials the phone exactly as the person typed it.
func (e *Entry) CallLink() string {
	return outlink.Tel(e.phone)
}

func (e *Entry) Name() string            { return e.name }
func (e *Entry) Phone() string           { return e.phone }
func (e *Entry) Fecha() string           { return e.fecha }
func (e *Entry) Hora() string            { return e.hora }
func (e *Entry) Court() slot.Court       { return e.court }
func (e *Entry) RegisteredAt() time.Time { return e.registeredAt }

// Append never rejects duplicates.
func Append(entries []*Entry, e *Entry) []*Entry {
	out := make([]*Entry, 0, len(entries)+1)
	out = append(out, entries...)
	return append(out, e)
}

// RemoveAt splices out the entry at index and returns the new sequence and
// the removed entry. The input slice is left untouched.
func RemoveAt(entries []*Entry, index int) ([]*Entry, *Entry, error) {
	if index < 0 || index >= len(entries) {
		return nil, nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(entries))
	}
	out := make([]*Entry, 0, len(entries)-1)
	out = append(out, entries[:index]...)
	out = append(out, entries[index+1:]...)
	return out, entries[index], nil
}

// At returns the entry shown at index.
func At(entries []*Entry, index int) (*Entry, error) {
	if index < 0 || index >= len(entries) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(entries))
	}
	return entries[index], nil
}

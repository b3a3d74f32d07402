package converter

import (
	"bytes"
	"encoding/json"
	"time"
)

// Stamp is a stored instant that older records may carry as "" or null.
// Both read as the zero time, and the zero time is written back as "".
type Stamp struct {
	Time time.Time
}

func NewStamp(t time.Time) Stamp {
	if t.IsZero() {
		return Stamp{}
	}
	return Stamp{Time: t.UTC()}
}

func (s Stamp) MarshalJSON() ([]byte, error) {
	if s.Time.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(s.Time)
}

func (s *Stamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		s.Time = time.Time{}
		return nil
	}
	return json.Unmarshal(b, &s.Time)
}

package repository

// Persisted keys. They are shared with data written by earlier versions of
// the site and must not change.
const (
	KeyPendingReservation = "reservaTemp"
	KeyReservationHistory = "reservasHistorial"
	KeyWaitlist           = "waitlist"
)

package waitlist

import "errors"

var (
	ErrNameRequired    = errors.New("nombre is required")
	ErrPhoneRequired   = errors.New("telefono is required")
	ErrCourtAvailable  = errors.New("court is available in that time slot, book it instead")
	ErrIndexOutOfRange = errors.New("waitlist position out of range")
)

package reservation

import "errors"

var (
	ErrNameRequired     = errors.New("nombre is required")
	ErrPhoneRequired    = errors.New("telefono is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrCourtUnavailable = errors.New("court is not available in that time slot")
	ErrAlreadyPaid      = errors.New("reservation is already paid")
	ErrInvalidHour      = errors.New("invalid hour label")
	ErrNegativePrice    = errors.New("price cannot be negative")

	ErrPaymentParamsMissing = errors.New("monto, concepto and email are required")
	ErrInvalidAmount        = errors.New("monto must be a non-negative integer")
)

// ArrivalNote is printed on every confirmation.
const ArrivalNote = "Por favor, llegue 15 minutos antes de su turno para completar el pago restante."

package response

// Notice is the toast the pages show after an action. Redirect tells the
// client where to navigate next.
type Notice struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
	Redirect    string `json:"redirect,omitempty"`
}

const (
	RedirectBooking   = "/reservar"
	RedirectConfirmed = "/reserva-confirmada"
)

const (
	MsgIncompleteFields = "Campos incompletos"
	MsgWaitlistJoined   = "¡Inscripción exitosa!"
	MsgPaymentOK        = "¡Pago exitoso!"
	MsgReservationError = "Error en la reserva"
	MsgPaymentCancelled = "Pago cancelado"
	MsgNoConfirmation   = "No se encontraron detalles de la reserva"
	MsgWaitlistRemoved  = "Eliminado de la lista"
	MsgListingPublished = "¡Publicación exitosa!"
)

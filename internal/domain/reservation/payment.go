package reservation

import (
	"net/url"
	"strconv"
	"strings"
)

// PaymentPath is where checkout sends the client to simulate the payment.
const PaymentPath = "/procesar-pago"

// PaymentRequest is the navigation contract between checkout and the payment
// simulation: the amount of the seña, a free-text concept and the payer email.
type PaymentRequest struct {
	Amount  int
	Concept string
	Email   string
}

// URL renders the payment destination. Words in the concept are joined with
// "+" by the query encoding.
func (p PaymentRequest) URL() string {
	var b strings.Builder
	b.WriteString(PaymentPath)
	b.WriteString("?monto=")
	b.WriteString(strconv.Itoa(p.Amount))
	b.WriteString("&concepto=")
	b.WriteString(url.QueryEscape(p.Concept))
	b.WriteString("&email=")
	b.WriteString(url.QueryEscape(p.Email))
	return b.String()
}

// ParsePaymentRequest validates the query parameters received by the payment
// simulation. Any missing parameter sends the client back to booking.
func ParsePaymentRequest(monto, concepto, email string) (PaymentRequest, error) {
	if monto == "" || concepto == "" || email == "" {
		return PaymentRequest{}, ErrPaymentParamsMissing
	}
	amount, err := strconv.Atoi(monto)
	if err != nil || amount < 0 {
		return PaymentRequest{}, ErrInvalidAmount
	}
	return PaymentRequest{Amount: amount, Concept: concepto, Email: email}, nil
}

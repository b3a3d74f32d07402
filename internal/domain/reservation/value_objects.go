package reservation

import (
	"strings"
)

// Contact holds the three required contact fields of a booking. No format
// validation is applied beyond being non-blank.
type Contact struct {
	name  string
	phone string
	email string
}

func NewContact(name, phone, email string) (Contact, error) {
	c := Contact{
		name:  strings.TrimSpace(name),
		phone: strings.TrimSpace(phone),
		email: strings.TrimSpace(email),
	}
	switch {
	case c.name == "":
		return Contact{}, ErrNameRequired
	case c.phone == "":
		return Contact{}, ErrPhoneRequired
	case c.email == "":
		return Contact{}, ErrEmailRequired
	}
	return c, nil
}

// ReconstructContact restores a stored contact as it was saved.
func ReconstructContact(name, phone, email string) Contact {
	return Contact{name: name, phone: phone, email: email}
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Phone() string { return c.phone }
func (c Contact) Email() string { return c.email }

// Money is a whole amount in pesos. The tariff has no minor units.
type Money struct {
	amount int
}

func NewMoney(amount int) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int {
	return m.amount
}

// DownPayment is the seña: exactly half of the total.
func (m Money) DownPayment() Money {
	return Money{amount: m.amount / 2}
}

// Remaining is what is paid at the venue.
func (m Money) Remaining() Money {
	return Money{amount: m.amount - m.DownPayment().amount}
}

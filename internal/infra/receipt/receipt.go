// Package receipt prints the confirmation of a paid reservation as a PDF
// with a signed QR code the venue can scan on arrival.
package receipt

import (
	"bytes"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"

	"sarmiento-f5/internal/domain/reservation"
	"sarmiento-f5/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"golang.org/x/crypto/blake2b"
)

var (
	ErrMalformedPayload = errors.New("receipt payload is malformed")
	ErrBadSignature     = errors.New("receipt signature does not match")
)

var (
	escapeField   = strings.NewReplacer("%", "%25", "|", "%7C")
	unescapeField = strings.NewReplacer("%7C", "|", "%25", "%")
)

const (
	payloadFields = 6
	qrSize        = 256
)

// Fields are what a scanned QR code asserts about the booking.
type Fields struct {
	Court     int
	Fecha     string
	Hora      string
	Phone     string
	CreatedAt time.Time
}

type Document struct {
	ID       uuid.UUID
	Filename string
	PDF      []byte
}

type Printer struct {
	key []byte
	loc *time.Location
}

// NewPrinter keys the QR signature with secret. Secrets longer than a
// BLAKE2b key are hashed down first.
func NewPrinter(secret string, loc *time.Location) *Printer {
	key := []byte(secret)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	return &Printer{key: key, loc: loc}
}

// Payload is cancha|fecha|hora|telefono|fechaCreacion|signature. Text
// fields have "%" and "|" percent-escaped so a separator typed into the
// phone cannot shift the other fields.
func (p *Printer) Payload(r *reservation.Reservation) (string, error) {
	data := strings.Join([]string{
		strconv.Itoa(r.Court().Int()),
		escapeField.Replace(r.Fecha()),
		escapeField.Replace(r.Hora()),
		escapeField.Replace(r.Contact().Phone()),
		r.CreatedAt().UTC().Format(time.RFC3339),
	}, "|")
	sig, err := p.sign(data)
	if err != nil {
		return "", err
	}
	return data + "|" + sig, nil
}

func (p *Printer) Verify(payload string) (Fields, error) {
	parts := strings.Split(payload, "|")
	if len(parts) != payloadFields {
		return Fields{}, errs.Wrapf(ErrMalformedPayload, "want %d fields, got %d", payloadFields, len(parts))
	}

	want, err := p.sign(strings.Join(parts[:payloadFields-1], "|"))
	if err != nil {
		return Fields{}, err
	}
	if subtle.ConstantTimeCompare([]byte(want), []byte(parts[payloadFields-1])) != 1 {
		return Fields{}, ErrBadSignature
	}

	court, err := strconv.Atoi(parts[0])
	if err != nil {
		return Fields{}, errs.Wrapf(ErrMalformedPayload, "court %q", parts[0])
	}
	createdAt, err := time.Parse(time.RFC3339, parts[4])
	if err != nil {
		return Fields{}, errs.Wrapf(ErrMalformedPayload, "created %q", parts[4])
	}
	return Fields{
		Court:     court,
		Fecha:     unescapeField.Replace(parts[1]),
		Hora:      unescapeField.Replace(parts[2]),
		Phone:     unescapeField.Replace(parts[3]),
		CreatedAt: createdAt,
	}, nil
}

func (p *Printer) sign(data string) (string, error) {
	h, err := blake2b.New256(p.key)
	if err != nil {
		return "", errs.Wrap(err, "failed to key receipt signature")
	}
	h.Write([]byte(data))
	return base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}

// Render lays out one A5 page with the booking details and the QR code.
func (p *Printer) Render(r *reservation.Reservation) (*Document, error) {
	payload, err := p.Payload(r)
	if err != nil {
		return nil, err
	}
	qrPNG, err := qrcode.Encode(payload, qrcode.Medium, qrSize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate QR code")
	}

	id := uuid.New()
	pdf := gofpdf.New("P", "mm", "A5", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Reserva confirmada", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Complejo Sarmiento F5"))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, tr("Reserva confirmada"))
	pdf.Ln(12)

	lines := []struct{ label, value string }{
		{"Nombre", r.Contact().Name()},
		{"Fecha", r.Fecha()},
		{"Horario", r.Hora()},
		{"Cancha", r.Court().String()},
		{"Precio total", peso(r.Price().Amount())},
		{"Seña pagada", peso(r.DownPayment().Amount())},
		{"Resta pagar", peso(r.Remaining().Amount())},
		{"Emitido", r.CreatedAt().In(p.loc).Format("02/01/2006 15:04")},
	}
	for _, l := range lines {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(35, 7, tr(l.label+":"))
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 7, tr(l.value))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, tr(reservation.ArrivalNote), "", "L", false)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 44, pdf.GetY()+6, 60, 60, false, imageOpts, 0, "")

	pdf.SetFont("Arial", "", 7)
	pdf.SetY(-15)
	pdf.Cell(0, 5, "ID "+id.String())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to generate PDF")
	}

	return &Document{
		ID:       id,
		Filename: "reserva-" + id.String() + ".pdf",
		PDF:      buf.Bytes(),
	}, nil
}

func peso(amount int) string {
	s := strconv.Itoa(amount)
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return "$" + b.String()
}

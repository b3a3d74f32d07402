package queries

import (
	"context"

	"sarmiento-f5/internal/pkg/config"
)

//go:generate mockgen -source=contact.go -destination=../../../tests/mock/queries/contact_mock.go -package=queriesmock

type ContactView struct {
	WhatsApp  string
	Maps      string
	Facebook  string
	Instagram string
}

type ContactQueries interface {
	Links(ctx context.Context) *ContactView
}

type contactQueriesImpl struct {
	cfg config.ContactConfig
}

func NewContactQueries(cfg config.ContactConfig) ContactQueries {
	return &contactQueriesImpl{cfg: cfg}
}

func (q *contactQueriesImpl) Links(_ context.Context) *ContactView {
	return &ContactView{
		WhatsApp:  q.cfg.WhatsAppURL,
		Maps:      q.cfg.MapsURL,
		Facebook:  q.cfg.FacebookURL,
		Instagram: q.cfg.InstagramURL,
	}
}

package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/frebomedia/freboapi/models"
)

// Contacts persists contact-form submissions.
type Contacts struct {
	db *bun.DB
}

// NewContacts creates a Contacts repo over the given connection.
func NewContacts(db *bun.DB) *Contacts {
	return &Contacts{db: db}
}

// Create inserts a contact request.
func (r *Contacts) Create(ctx context.Context, req *models.ContactRequest) error {
	_, err := r.db.NewInsert().Model(req).
		Returning("id, created_at").
		Exec(ctx)
	return wrap(KindInsert, "create contact request", err)
}

package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/frebomedia/freboapi/config"
	"github.com/frebomedia/freboapi/models"
	"github.com/frebomedia/freboapi/repo"
	"github.com/frebomedia/freboapi/storage"
)

// photoRepo is the slice of the photos repo the handlers use.
type photoRepo interface {
	List(ctx context.Context, f repo.ListFilter) ([]models.Photo, error)
	ByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Photo, error)
	ByStartNumber(ctx context.Context, eventID uuid.UUID, startNumber string) ([]models.Photo, error)
	ByCategory(ctx context.Context, category string) ([]models.Photo, error)
	ByID(ctx context.Context, id uuid.UUID) (*models.Photo, error)
	Create(ctx context.Context, photo *models.Photo) error
	UpdateMeta(ctx context.Context, id uuid.UUID, startNumber string, eventID *uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db       *bun.DB
	events   *repo.Events
	photos   photoRepo
	contacts *repo.Contacts
	store    storage.Store
	cfg      *config.Config
	JWTKey   []byte
}

// New creates a Handler wired to the database, the object store and the
// application config.
func New(db *bun.DB, store storage.Store, cfg *config.Config) *Handler {
	return &Handler{
		db:       db,
		events:   repo.NewEvents(db),
		photos:   repo.NewPhotos(db),
		contacts: repo.NewContacts(db),
		store:    store,
		cfg:      cfg,
		JWTKey:   cfg.JWTKey(),
	}
}

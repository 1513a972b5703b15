package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/frebomedia/freboapi/models"
)

// PortfolioLimit caps the number of photos shown per portfolio category.
const PortfolioLimit = 6

// Photos is the data-access layer for the photos table.
type Photos struct {
	db *bun.DB
}

// NewPhotos creates a Photos repo over the given connection.
func NewPhotos(db *bun.DB) *Photos {
	return &Photos{db: db}
}

// ListFilter narrows the admin photo listing. Zero values mean "no filter".
type ListFilter struct {
	Category      string
	EventID       uuid.UUID
	StartNumber   string
	PortfolioOnly bool
}

// List returns photos newest-first, narrowed by the filter. PortfolioOnly
// caps the result at PortfolioLimit rows.
func (r *Photos) List(ctx context.Context, f ListFilter) ([]models.Photo, error) {
	var photos []models.Photo
	q := r.db.NewSelect().Model(&photos).
		OrderExpr("p.created_at DESC")

	if f.Category != "" {
		q = q.Where("p.category = ?", f.Category)
	}
	if f.EventID != uuid.Nil {
		q = q.Where("p.event_id = ?", f.EventID)
	}
	if f.StartNumber != "" {
		q = q.Where("p.start_number = ?", f.StartNumber)
	}
	if f.PortfolioOnly {
		q = q.Limit(PortfolioLimit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, wrap(KindQuery, "list photos", err)
	}
	return photos, nil
}

// ByEvent returns all photos assigned to the event.
func (r *Photos) ByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.NewSelect().Model(&photos).
		Where("p.event_id = ?", eventID).
		Scan(ctx)
	if err != nil {
		return nil, wrap(KindQuery, "photos by event", err)
	}
	return photos, nil
}

// ByStartNumber returns photos matching both the event and the exact
// start number. String equality is case-sensitive; an empty result is
// a valid answer, not an error.
func (r *Photos) ByStartNumber(ctx context.Context, eventID uuid.UUID, startNumber string) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.NewSelect().Model(&photos).
		Where("p.event_id = ?", eventID).
		Where("p.start_number = ?", startNumber).
		Scan(ctx)
	if err != nil {
		return nil, wrap(KindQuery, "photos by start number", err)
	}
	return photos, nil
}

// ByCategory returns the portfolio selection for a category: at most
// PortfolioLimit rows, newest first.
func (r *Photos) ByCategory(ctx context.Context, category string) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.NewSelect().Model(&photos).
		Where("p.category = ?", category).
		OrderExpr("p.created_at DESC").
		Limit(PortfolioLimit).
		Scan(ctx)
	if err != nil {
		return nil, wrap(KindQuery, "photos by category", err)
	}
	return photos, nil
}

// Create inserts a photo row and fills in the backend-assigned fields.
func (r *Photos) Create(ctx context.Context, photo *models.Photo) error {
	_, err := r.db.NewInsert().Model(photo).
		Returning("id, created_at").
		Exec(ctx)
	return wrap(KindInsert, "create photo", err)
}

// UpdateMeta sets the mutable metadata of a photo: start number and
// event assignment. A nil eventID clears the assignment.
func (r *Photos) UpdateMeta(ctx context.Context, id uuid.UUID, startNumber string, eventID *uuid.UUID) error {
	res, err := r.db.NewUpdate().Model((*models.Photo)(nil)).
		Set("start_number = ?", startNumber).
		Set("event_id = ?", eventID).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return wrap(KindUpdate, "update photo", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return wrap(KindUpdate, "update photo", ErrNotFound)
	}
	return nil
}

// ByID returns a single photo row.
func (r *Photos) ByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	photo := &models.Photo{}
	err := r.db.NewSelect().Model(photo).
		Where("p.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, wrap(KindQuery, "photo by id", err)
	}
	return photo, nil
}

// Delete removes the photo row. Deleting a missing row yields a
// not-found delete error.
func (r *Photos) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().Model((*models.Photo)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return wrap(KindDelete, "delete photo", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return wrap(KindDelete, "delete photo", ErrNotFound)
	}
	return nil
}

// Keys returns every stored url value. Used by the orphan sweep to diff
// the photos table against the storage bucket.
func (r *Photos) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.db.NewSelect().
		TableExpr("photos").
		ColumnExpr("url").
		Scan(ctx, &keys)
	if err != nil {
		return nil, wrap(KindQuery, "photo keys", err)
	}
	return keys, nil
}

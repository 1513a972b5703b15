package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/frebomedia/freboapi/models"
)

// Events is the data-access layer for the events table.
type Events struct {
	db *bun.DB
}

// NewEvents creates an Events repo over the given connection.
func NewEvents(db *bun.DB) *Events {
	return &Events{db: db}
}

// List returns all events ordered by date, newest first.
func (r *Events) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.NewSelect().Model(&events).
		OrderExpr("e.date DESC").
		Scan(ctx)
	if err != nil {
		return nil, wrap(KindQuery, "list events", err)
	}
	return events, nil
}

// ByID returns the single event matching id, or a not-found query error.
func (r *Events) ByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event := &models.Event{}
	err := r.db.NewSelect().Model(event).
		Where("e.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, wrap(KindQuery, "event by id", err)
	}
	return event, nil
}

// Create inserts an event and fills in the backend-assigned id and created_at.
func (r *Events) Create(ctx context.Context, event *models.Event) error {
	_, err := r.db.NewInsert().Model(event).
		Returning("id, created_at").
		Exec(ctx)
	return wrap(KindInsert, "create event", err)
}

// Delete removes the event row. Photos referencing the event keep their
// event_id; there is no cascade.
func (r *Events) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().Model((*models.Event)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return wrap(KindDelete, "delete event", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return wrap(KindDelete, "delete event", ErrNotFound)
	}
	return nil
}

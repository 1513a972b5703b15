package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Event is a named occurrence (typically a race weekend) that groups photos.
// Date is stored and compared as a plain calendar date; no timezone handling.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	Name        string    `bun:"name,notnull" json:"name"`
	Date        string    `bun:"date,notnull,type:date" json:"date"`
	Location    string    `bun:"location,notnull" json:"location"`
	Description *string   `bun:"description" json:"description,omitempty"`
	CoverImage  *string   `bun:"cover_image" json:"cover_image,omitempty"`
}

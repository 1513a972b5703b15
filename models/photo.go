package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Photo categories. The set is closed and enforced by a CHECK constraint.
const (
	CategoryMotocross = "motocross"
	CategoryPortrait  = "portrait"
	CategoryProduct   = "product"
)

// Categories lists every valid photo category.
var Categories = []string{CategoryMotocross, CategoryPortrait, CategoryProduct}

// ValidCategory reports whether c is one of the known photo categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Photo is a stored image record. URL holds the object-storage key
// (relative path) for uploads made through this API, but absolute URLs
// from earlier imports still exist in the table; read paths normalize
// the two forms with storage.PublicURL.
type Photo struct {
	bun.BaseModel `bun:"table:photos,alias:p"`

	ID           uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CreatedAt    time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	URL          string     `bun:"url,notnull" json:"url"`
	Category     string     `bun:"category,notnull" json:"category"`
	StartNumber  string     `bun:"start_number,notnull,default:''" json:"start_number"`
	EventID      *uuid.UUID `bun:"event_id,type:uuid" json:"event_id,omitempty"`
	ThumbnailURL *string    `bun:"thumbnail_url" json:"thumbnail_url,omitempty"`

	Event *Event `bun:"rel:belongs-to,join:event_id=id" json:"-"`
}

package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ContactRequest is a submitted contact-form message.
type ContactRequest struct {
	bun.BaseModel `bun:"table:contact_requests,alias:cr"`

	ID        int       `bun:"id,pk,autoincrement" json:"id"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email,notnull" json:"email"`
	Phone     *string   `bun:"phone" json:"phone,omitempty"`
	Category  *string   `bun:"category" json:"category,omitempty"`
	Subject   string    `bun:"subject,notnull" json:"subject"`
	Message   string    `bun:"message,notnull" json:"message"`
}

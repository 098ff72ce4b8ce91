package common

import (
	"time"

	"github.com/google/uuid"
)

type SiteResult struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Domain    string    `json:"domain,omitempty"`
	IsPublic  bool      `json:"is_public"`
	UserId    uuid.UUID `json:"user_id"`
}

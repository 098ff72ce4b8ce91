package postgres

import (
	"time"

	"github.com/google/uuid"
)

type SiteModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string    `gorm:"not null"`
	Slug      string    `gorm:"uniqueIndex:idx_sites_owner_slug;not null"`
	Domain    string
	IsPublic  bool      `gorm:"default:false"`
	UserId    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_sites_owner_slug;index;not null"`
}

func (SiteModel) TableName() string {
	return "sites"
}

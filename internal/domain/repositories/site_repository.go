package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/MounTainVSCO/oceans-api/internal/domain/entities"
)

type SiteRepository interface {
	Create(ctx context.Context, site *entities.ValidatedSite) (*entities.Site, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.Site, error)
	FindByOwnerAndSlug(ctx context.Context, ownerId uuid.UUID, slug string) (*entities.Site, error)
	ListByOwner(ctx context.Context, ownerId uuid.UUID) ([]*entities.Site, error)
	CountByOwner(ctx context.Context, ownerId uuid.UUID) (int64, error)
	Update(ctx context.Context, site *entities.ValidatedSite) (*entities.Site, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/MounTainVSCO/oceans-api/internal/application/command"
	"github.com/MounTainVSCO/oceans-api/internal/application/query"
)

type SiteService interface {
	CreateSite(ctx context.Context, ownerId uuid.UUID, createCommand *command.CreateSiteCommand) (*command.CreateSiteCommandResult, error)
	GetSite(ctx context.Context, actorId, siteId uuid.UUID) (*query.SiteQueryResult, error)
	GetSiteBySlug(ctx context.Context, actorId, ownerId uuid.UUID, slug string) (*query.SiteQueryResult, error)
	ListSites(ctx context.Context, ownerId uuid.UUID) (*query.SiteQueryListResult, error)
	UpdateSite(ctx context.Context, actorId, siteId uuid.UUID, updateCommand *command.UpdateSiteCommand) (*command.UpdateSiteCommandResult, error)
	DeleteSite(ctx context.Context, actorId, siteId uuid.UUID) error
}

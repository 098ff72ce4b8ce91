package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/MounTainVSCO/oceans-api/internal/application/command"
	"github.com/MounTainVSCO/oceans-api/internal/application/interfaces"
	"github.com/MounTainVSCO/oceans-api/internal/application/mapper"
	"github.com/MounTainVSCO/oceans-api/internal/application/query"
	"github.com/MounTainVSCO/oceans-api/internal/application/validation"
	"github.com/MounTainVSCO/oceans-api/internal/domain"
	"github.com/MounTainVSCO/oceans-api/internal/domain/entities"
	"github.com/MounTainVSCO/oceans-api/internal/domain/repositories"
	"github.com/MounTainVSCO/oceans-api/internal/messaging"
)

type SiteService struct {
	siteRepo repositories.SiteRepository
	userRepo repositories.UserRepository
	events   *messaging.Publisher
}

func NewSiteService(
	siteRepo repositories.SiteRepository,
	userRepo repositories.UserRepository,
	events *messaging.Publisher,
) interfaces.SiteService {
	return &SiteService{
		siteRepo: siteRepo,
		userRepo: userRepo,
		events:   events,
	}
}

func (s *SiteService) CreateSite(ctx context.Context, ownerId uuid.UUID, createCommand *command.CreateSiteCommand) (*command.CreateSiteCommandResult, error) {
	if err := validation.Check(createCommand); err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindById(ctx, ownerId)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUnauthorized
	}

	if limit := SiteLimit(owner.IsPro); limit >= 0 {
		count, err := s.siteRepo.CountByOwner(ctx, ownerId)
		if err != nil {
			return nil, err
		}
		if count >= int64(limit) {
			return nil, domain.ErrForbidden
		}
	}

	existing, err := s.siteRepo.FindByOwnerAndSlug(ctx, ownerId, createCommand.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{Field: "slug"}
	}

	newSite := entities.NewSite(createCommand.Name, createCommand.Slug, createCommand.Domain, createCommand.IsPublic, ownerId)
	validatedSite, err := entities.NewValidatedSite(newSite)
	if err != nil {
		return nil, err
	}

	createdSite, err := s.siteRepo.Create(ctx, validatedSite)
	if err != nil {
		return nil, err
	}

	result := mapper.NewSiteResultFromEntity(createdSite)
	s.events.Publish(messaging.SubjectSiteCreated, result)

	return &command.CreateSiteCommandResult{Site: result}, nil
}

func (s *SiteService) GetSite(ctx context.Context, actorId, siteId uuid.UUID) (*query.SiteQueryResult, error) {
	site, err := s.siteRepo.FindById(ctx, siteId)
	if err != nil {
		return nil, err
	}

	return s.readableResult(site, actorId)
}

func (s *SiteService) GetSiteBySlug(ctx context.Context, actorId, ownerId uuid.UUID, slug string) (*query.SiteQueryResult, error) {
	site, err := s.siteRepo.FindByOwnerAndSlug(ctx, ownerId, slug)
	if err != nil {
		return nil, err
	}

	return s.readableResult(site, actorId)
}

// readableResult hides private sites from non-owners. An existing private
// site and a missing one are indistinguishable to outsiders.
func (s *SiteService) readableResult(site *entities.Site, actorId uuid.UUID) (*query.SiteQueryResult, error) {
	if site == nil {
		return nil, domain.ErrNotFound
	}
	if !site.IsPublic && site.UserId != actorId {
		return nil, domain.ErrNotFound
	}

	return &query.SiteQueryResult{
		Result: mapper.NewSiteResultFromEntity(site),
	}, nil
}

func (s *SiteService) ListSites(ctx context.Context, ownerId uuid.UUID) (*query.SiteQueryListResult, error) {
	sites, err := s.siteRepo.ListByOwner(ctx, ownerId)
	if err != nil {
		return nil, err
	}

	return &query.SiteQueryListResult{
		Result: mapper.NewSiteResultListFromEntities(sites),
	}, nil
}

func (s *SiteService) UpdateSite(ctx context.Context, actorId, siteId uuid.UUID, updateCommand *command.UpdateSiteCommand) (*command.UpdateSiteCommandResult, error) {
	if err := validation.Check(updateCommand); err != nil {
		return nil, err
	}

	site, err := s.ownedSite(ctx, actorId, siteId)
	if err != nil {
		return nil, err
	}

	if updateCommand.Slug != nil && *updateCommand.Slug != site.Slug {
		other, err := s.siteRepo.FindByOwnerAndSlug(ctx, actorId, *updateCommand.Slug)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, &domain.ConflictError{Field: "slug"}
		}
	}

	if err := site.Update(updateCommand.Name, updateCommand.Slug, updateCommand.Domain, updateCommand.IsPublic); err != nil {
		return nil, err
	}

	validatedSite, err := entities.NewValidatedSite(site)
	if err != nil {
		return nil, err
	}

	updatedSite, err := s.siteRepo.Update(ctx, validatedSite)
	if err != nil {
		return nil, err
	}

	result := mapper.NewSiteResultFromEntity(updatedSite)
	s.events.Publish(messaging.SubjectSiteUpdated, result)

	return &command.UpdateSiteCommandResult{Site: result}, nil
}

func (s *SiteService) DeleteSite(ctx context.Context, actorId, siteId uuid.UUID) error {
	site, err := s.ownedSite(ctx, actorId, siteId)
	if err != nil {
		return err
	}

	if err := s.siteRepo.Delete(ctx, site.Id); err != nil {
		return err
	}

	s.events.Publish(messaging.SubjectSiteDeleted, mapper.NewSiteResultFromEntity(site))
	return nil
}

// ownedSite loads a site for a mutating operation: missing -> ErrNotFound,
// someone else's -> ErrForbidden.
func (s *SiteService) ownedSite(ctx context.Context, actorId, siteId uuid.UUID) (*entities.Site, error) {
	site, err := s.siteRepo.FindById(ctx, siteId)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	if site.UserId != actorId {
		return nil, domain.ErrForbidden
	}
	return site, nil
}

package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MounTainVSCO/oceans-api/internal/domain"
	"github.com/MounTainVSCO/oceans-api/internal/domain/entities"
	"github.com/MounTainVSCO/oceans-api/internal/domain/repositories"
)

type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) repositories.SiteRepository {
	return &SiteRepository{db: db}
}

func (r *SiteRepository) Create(ctx context.Context, site *entities.ValidatedSite) (*entities.Site, error) {
	siteModel := mapSiteToModel(site.GetSite())

	if err := r.db.WithContext(ctx).Create(&siteModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &domain.ConflictError{Field: "slug"}
		}
		return nil, err
	}

	return r.FindById(ctx, siteModel.Id)
}

func (r *SiteRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.Site, error) {
	var siteModel SiteModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&siteModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapSiteToEntity(&siteModel), nil
}

func (r *SiteRepository) FindByOwnerAndSlug(ctx context.Context, ownerId uuid.UUID, slug string) (*entities.Site, error) {
	var siteModel SiteModel
	if err := r.db.WithContext(ctx).Where("user_id = ? AND slug = ?", ownerId, slug).First(&siteModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapSiteToEntity(&siteModel), nil
}

func (r *SiteRepository) ListByOwner(ctx context.Context, ownerId uuid.UUID) ([]*entities.Site, error) {
	var siteModels []SiteModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerId).Order("created_at DESC").Find(&siteModels).Error; err != nil {
		return nil, err
	}

	sites := make([]*entities.Site, 0, len(siteModels))
	for i := range siteModels {
		sites = append(sites, mapSiteToEntity(&siteModels[i]))
	}
	return sites, nil
}

func (r *SiteRepository) CountByOwner(ctx context.Context, ownerId uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&SiteModel{}).Where("user_id = ?", ownerId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SiteRepository) Update(ctx context.Context, site *entities.ValidatedSite) (*entities.Site, error) {
	siteModel := mapSiteToModel(site.GetSite())

	if err := r.db.WithContext(ctx).Save(&siteModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &domain.ConflictError{Field: "slug"}
		}
		return nil, err
	}

	return r.FindById(ctx, siteModel.Id)
}

func (r *SiteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&SiteModel{}, "id = ?", id).Error
}

func mapSiteToModel(site *entities.Site) SiteModel {
	return SiteModel{
		Id:        site.Id,
		CreatedAt: site.CreatedAt,
		UpdatedAt: site.UpdatedAt,
		Name:      site.Name,
		Slug:      site.Slug,
		Domain:    site.Domain,
		IsPublic:  site.IsPublic,
		UserId:    site.UserId,
	}
}

func mapSiteToEntity(siteModel *SiteModel) *entities.Site {
	return &entities.Site{
		Id:        siteModel.Id,
		CreatedAt: siteModel.CreatedAt,
		UpdatedAt: siteModel.UpdatedAt,
		Name:      siteModel.Name,
		Slug:      siteModel.Slug,
		Domain:    siteModel.Domain,
		IsPublic:  siteModel.IsPublic,
		UserId:    siteModel.UserId,
	}
}

package mapper

import (
	"github.com/MounTainVSCO/oceans-api/internal/application/common"
	"github.com/MounTainVSCO/oceans-api/internal/domain/entities"
)

func NewSiteResultFromEntity(site *entities.Site) *common.SiteResult {
	return &common.SiteResult{
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

func NewSiteResultListFromEntities(sites []*entities.Site) []*common.SiteResult {
	results := make([]*common.SiteResult, 0, len(sites))
	for _, site := range sites {
		results = append(results, NewSiteResultFromEntity(site))
	}
	return results
}

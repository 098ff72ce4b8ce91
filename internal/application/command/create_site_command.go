package command

import "github.com/MounTainVSCO/oceans-api/internal/application/common"

type CreateSiteCommand struct {
	Name     string `json:"name" validate:"required"`
	Slug     string `json:"slug" validate:"required,slug"`
	Domain   string `json:"domain,omitempty" validate:"omitempty,sitedomain"`
	IsPublic bool   `json:"is_public"`
}

type CreateSiteCommandResult struct {
	Site *common.SiteResult `json:"site"`
}

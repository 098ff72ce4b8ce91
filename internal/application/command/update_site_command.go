package command

import "github.com/MounTainVSCO/oceans-api/internal/application/common"

// Pointer fields distinguish "omitted" from "set to zero value".
type UpdateSiteCommand struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Slug     *string `json:"slug,omitempty" validate:"omitempty,slug"`
	Domain   *string `json:"domain,omitempty" validate:"omitempty,sitedomain"`
	IsPublic *bool   `json:"is_public,omitempty"`
}

type UpdateSiteCommandResult struct {
	Site *common.SiteResult `json:"site"`
}

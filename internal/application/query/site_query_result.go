package query

import "github.com/MounTainVSCO/oceans-api/internal/application/common"

type SiteQueryResult struct {
	Result *common.SiteResult `json:"result"`
}

type SiteQueryListResult struct {
	Result []*common.SiteResult `json:"result"`
}

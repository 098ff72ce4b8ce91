package query

import "github.com/MounTainVSCO/oceans-api/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}

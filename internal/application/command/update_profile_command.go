package command

import "github.com/MounTainVSCO/oceans-api/internal/application/common"

// Empty fields are treated as omitted; only provided fields are applied.
type UpdateProfileCommand struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=2"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

type UpdateProfileCommandResult struct {
	User *common.UserResult `json:"user"`
}

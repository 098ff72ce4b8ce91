package command

import "github.com/MounTainVSCO/oceans-api/internal/application/common"

type LoginUserCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUserCommandResult struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	User         *common.UserResult `json:"user"`
}

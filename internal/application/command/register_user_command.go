package command

import "github.com/MounTainVSCO/oceans-api/internal/application/common"

type RegisterUserCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterUserCommandResult struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	User         *common.UserResult `json:"user"`
}

package command

type RefreshSessionCommand struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshSessionCommandResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

package command

type ChangePasswordCommand struct {
	CurrentPassword string `json:"current_password" validate:"required,min=8"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type ChangePasswordCommandResult struct {
	Message string `json:"message"`
}

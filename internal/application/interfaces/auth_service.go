package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/MounTainVSCO/oceans-api/internal/application/command"
	"github.com/MounTainVSCO/oceans-api/internal/application/query"
)

type AuthService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	RefreshSession(ctx context.Context, refreshCommand *command.RefreshSessionCommand) (*command.RefreshSessionCommandResult, error)
	ChangePassword(ctx context.Context, userId uuid.UUID, changeCommand *command.ChangePasswordCommand) (*command.ChangePasswordCommandResult, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, updateCommand *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error)
	GetProfile(ctx context.Context, userId uuid.UUID) (*query.UserQueryResult, error)
}

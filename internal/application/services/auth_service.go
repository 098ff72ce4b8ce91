package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/MounTainVSCO/oceans-api/internal/application/command"
	"github.com/MounTainVSCO/oceans-api/internal/application/interfaces"
	"github.com/MounTainVSCO/oceans-api/internal/application/mapper"
	"github.com/MounTainVSCO/oceans-api/internal/application/query"
	"github.com/MounTainVSCO/oceans-api/internal/application/validation"
	"github.com/MounTainVSCO/oceans-api/internal/domain"
	"github.com/MounTainVSCO/oceans-api/internal/domain/entities"
	"github.com/MounTainVSCO/oceans-api/internal/domain/repositories"
	"github.com/MounTainVSCO/oceans-api/internal/infrastructure"
	"github.com/MounTainVSCO/oceans-api/internal/messaging"
)

type AuthService struct {
	userRepo    repositories.UserRepository
	jwtService  *infrastructure.JWTService
	mailService *infrastructure.MailService
	rateLimiter *infrastructure.RateLimiter
	events      *messaging.Publisher
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	mailService *infrastructure.MailService,
	rateLimiter *infrastructure.RateLimiter,
	events *messaging.Publisher,
) interfaces.AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		mailService: mailService,
		rateLimiter: rateLimiter,
		events:      events,
	}
}

func (s *AuthService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	if err := validation.Check(registerCommand); err != nil {
		return nil, err
	}

	email := entities.NormalizeEmail(registerCommand.Email)
	if !s.rateLimiter.Allow("register:" + email) {
		return nil, domain.ErrForbidden
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, &domain.ConflictError{Field: "email"}
	}

	newUser := entities.NewUser(registerCommand.Name, email)
	if err := newUser.SetPassword(registerCommand.Password); err != nil {
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	// The unique index still decides races: two concurrent registrations
	// with the same email yield exactly one ConflictError here.
	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	pair, err := s.jwtService.IssuePair(ctx, createdUser.Id)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.mailService.SendWelcome(createdUser.Name, createdUser.Email); err != nil {
			log.Printf("failed to send welcome email: %v", err)
		}
	}()
	s.events.Publish(messaging.SubjectUserRegistered, mapper.NewUserResultFromEntity(createdUser))

	return &command.RegisterUserCommandResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if err := validation.Check(loginCommand); err != nil {
		return nil, err
	}

	email := entities.NormalizeEmail(loginCommand.Email)
	if !s.rateLimiter.Allow("login:" + email) {
		return nil, domain.ErrForbidden
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// Absent user and wrong password are indistinguishable to the caller.
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}

	pair, err := s.jwtService.IssuePair(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *AuthService) RefreshSession(ctx context.Context, refreshCommand *command.RefreshSessionCommand) (*command.RefreshSessionCommandResult, error) {
	if err := validation.Check(refreshCommand); err != nil {
		return nil, err
	}

	pair, err := s.jwtService.Refresh(ctx, refreshCommand.RefreshToken)
	if err != nil {
		return nil, err
	}

	return &command.RefreshSessionCommandResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userId uuid.UUID, changeCommand *command.ChangePasswordCommand) (*command.ChangePasswordCommandResult, error) {
	if err := validation.Check(changeCommand); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	if err := user.CheckPassword(changeCommand.CurrentPassword); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if err := user.SetPassword(changeCommand.NewPassword); err != nil {
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.Update(ctx, validatedUser); err != nil {
		return nil, err
	}

	go func() {
		if err := s.mailService.SendPasswordChanged(user.Name, user.Email); err != nil {
			log.Printf("failed to send password change notice: %v", err)
		}
	}()

	return &command.ChangePasswordCommandResult{Message: "password updated"}, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userId uuid.UUID, updateCommand *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error) {
	if err := validation.Check(updateCommand); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if updateCommand.Email != "" {
		email := entities.NormalizeEmail(updateCommand.Email)
		if email != user.Email {
			other, err := s.userRepo.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, &domain.ConflictError{Field: "email"}
			}
		}
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}
	if err := validatedUser.UpdateProfile(updateCommand.Name, updateCommand.Email); err != nil {
		return nil, err
	}

	updatedUser, err := s.userRepo.Update(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	return &command.UpdateProfileCommandResult{
		User: mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userId uuid.UUID) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}

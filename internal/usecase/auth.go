package usecase

import (
	"context"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUsernameTaken        = errs.New("username already taken")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrUserValidation       = errs.New("user validation error")
)

type LoginResult struct {
	UserID      uuid.UUID
	Username    string
	AccessToken string
}

type AuthUseCase interface {
	Register(ctx context.Context, username, rawPassword string) (*UserView, error)
	Login(ctx context.Context, username, rawPassword string) (*LoginResult, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*UserView, error)
	// FindByUsername returns the user view together with the stored
	// password hash for credential verification.
	FindByUsername(ctx context.Context, username string) (*UserView, string, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, username, rawPassword string) (*UserView, error) {
	name, err := user.NewUsername(username)
	if err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}
	pass, err := user.NewPassword(rawPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.userRepo.Create(ctx, user.NewUser(name, hash))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, username, rawPassword string) (*LoginResult, error) {
	view, hash, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, view.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      view.ID,
		Username:    view.Username,
		AccessToken: token,
	}, nil
}

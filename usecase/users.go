package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"go.uber.org/zap"
)

// UsersRepository is the credential store the identity service runs against.
type UsersRepository interface {
	AddUser(ctx context.Context, user *model.User) error
	FindByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
}

type UserService struct {
	UsersRepo  UsersRepository
	Tokens     *services.TokenService
	BcryptCost int
	Logger     *zap.Logger
}

// Register creates a new account. Usernames and emails are each globally
// unique; a collision on either rejects the registration.
func (s *UserService) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return ErrMissingField
	}

	existing, err := s.UsersRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		s.Logger.Error("User lookup failed during registration", zap.Error(err))
		return ErrStorageFailure
	}
	if existing != nil {
		return ErrDuplicateIdentity
	}

	hash, err := services.HashPassword(password, s.BcryptCost)
	if err != nil {
		s.Logger.Error("Password hashing failed", zap.Error(err))
		return ErrStorageFailure
	}

	user := &model.User{
		UserID:    utils.GenerateUserID(),
		Username:  username,
		Email:     email,
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.UsersRepo.AddUser(ctx, user); err != nil {
		// Unique indexes catch registrations racing past the lookup above.
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrDuplicateIdentity
		}
		s.Logger.Error("User creation failed", zap.Error(err))
		return ErrStorageFailure
	}

	utils.TrackRegistration()
	return nil
}

// Login verifies the credential pair and mints a bearer token. The
// identifier matches against username or email in a single disjunctive
// lookup. Unknown identity and wrong password both yield
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *UserService) Login(ctx context.Context, identifier, password string) (string, error) {
	if identifier == "" || password == "" {
		return "", ErrMissingField
	}

	user, err := s.UsersRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		s.Logger.Error("User lookup failed during login", zap.Error(err))
		return "", ErrStorageFailure
	}
	if user == nil || !services.ComparePasswords(user.Password, password) {
		utils.TrackAuthAttempt("failure", "login")
		return "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Generate(user.UserID)
	if err != nil {
		s.Logger.Error("Token generation failed", zap.Error(err))
		return "", err
	}

	utils.TrackAuthAttempt("success", "login")
	return token, nil
}

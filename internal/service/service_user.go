package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelkin/courses-api/internal/config"
	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/internal/store"
	"github.com/avelkin/courses-api/internal/utils"
	"github.com/avelkin/courses-api/internal/validators"
	"github.com/avelkin/courses-api/models"
)

// userService is the concrete implementation of UserService.
// It owns the single point where plaintext passwords become bcrypt hashes:
// nothing below this layer ever hashes, nothing above it ever stores.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	bcryptCost     int
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository
// and validator. The bcrypt work factor comes from cfg.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The input is validated first; the password is hashed exactly once, after
// validation and before persistence. A duplicate email surfaces as a
// validation error carrying the uniqueness message, so callers render it
// the same way as any other field failure.
func (s *userService) Register(ctx context.Context, input models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(*input.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("password hashing ended with error")
		return models.User{}, fmt.Errorf("password hashing ended with error: %w", err)
	}

	user := models.User{
		FirstName:    *input.FirstName,
		LastName:     *input.LastName,
		EmailAddress: *input.EmailAddress,
		Password:     hash,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, &validators.ValidationError{Messages: []string{validators.MsgEmailTaken}}
		}

		log.Err(err).Str("func", "*userService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// GetByID re-loads a user record by primary key. The current-user endpoint
// uses it to serve fresh account data rather than whatever snapshot the
// auth gate attached to the context.
func (s *userService) GetByID(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.GetUserByID(ctx, userID)
}

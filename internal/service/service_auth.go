package service

import (
	"context"
	"errors"

	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/internal/store"
	"github.com/avelkin/courses-api/internal/utils"
	"github.com/avelkin/courses-api/models"
)

// authService is the concrete implementation of AuthService.
// It verifies Basic credentials against the stored bcrypt hashes using a
// UserRepository for lookups.
type authService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Authenticate looks up the account by email and compares the supplied
// plaintext password against the stored bcrypt hash.
//
// Every failure mode collapses into ErrInvalidCredentials so callers cannot
// tell an unknown email from a wrong password; the distinct reason is only
// visible in the logs.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Debug().Str("func", "*authService.Authenticate").Msg("empty credentials supplied")
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("func", "*authService.Authenticate").Str("email", email).Msg("no account for email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("func", "*authService.Authenticate").Msg("user lookup ended with error")
		return models.User{}, err
	}

	if !utils.CheckPassword(password, user.Password) {
		log.Debug().Str("func", "*authService.Authenticate").Str("email", email).Msg("password mismatch")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

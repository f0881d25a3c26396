package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger          *logger.Logger
	db              *DB
	caseInsensitive bool
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger. When caseInsensitive is set, email
// lookups fold case on both sides of the comparison; the default is the
// exact match the API has always done.
func NewUserRepository(db *DB, caseInsensitive bool, logger *logger.Logger) UserRepository {
	logger.Debug().Bool("case_insensitive_email", caseInsensitive).Msg("creating user repository")
	return &userRepository{
		db:              db,
		caseInsensitive: caseInsensitive,
		logger:          logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, timestamps).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. The Password field must
// already carry the bcrypt hash; this layer never hashes.
//
// Error handling:
//   - uniqueness violation on email_address → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.FirstName, user.LastName, user.EmailAddress, user.Password)

	var created models.User
	if err := row.Scan(&created.UserID, &created.FirstName, &created.LastName, &created.EmailAddress, &created.Password, &created.CreatedAt, &created.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("email", user.EmailAddress).Msg("email already taken")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves a user record by email address, using the exact
// or case-folded query depending on repository configuration.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error",
//     tagged retryable in the log when the classifier says so.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query := findUserByEmail
	if r.caseInsensitive {
		query = findUserByEmailFold
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, email)
	if err := row.Scan(&foundUser.UserID, &foundUser.FirstName, &foundUser.LastName, &foundUser.EmailAddress, &foundUser.Password, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "*userRepository.FindUserByEmail").
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// GetUserByID retrieves a user record by primary key.
//
// Error handling matches [FindUserByEmail].
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, getUserByID, userID)
	if err := row.Scan(&foundUser.UserID, &foundUser.FirstName, &foundUser.LastName, &foundUser.EmailAddress, &foundUser.Password, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "*userRepository.GetUserByID").
			Int64("user_id", userID).
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

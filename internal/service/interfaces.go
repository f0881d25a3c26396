package service

import (
	"context"

	"github.com/avelkin/courses-api/models"
)

type AuthService interface {
	// Authenticate verifies an email/password credential pair and returns
	// the matching user with its stored hash intact.
	Authenticate(ctx context.Context, email, password string) (models.User, error)
}

type UserService interface {
	// Register validates the input, hashes the password and persists a
	// new user account.
	Register(ctx context.Context, input models.UserInput) (models.User, error)

	// GetByID re-loads a user by primary key.
	GetByID(ctx context.Context, userID int64) (models.User, error)
}

type CourseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, courseID int64) (models.Course, error)

	// Create persists a new course owned by owner, regardless of any user
	// id present in the input.
	Create(ctx context.Context, owner models.User, input models.CourseInput) (models.Course, error)

	// Update applies the supplied fields to the course when owner owns it.
	Update(ctx context.Context, owner models.User, courseID int64, input models.CourseInput) error

	// Delete removes the course when owner owns it.
	Delete(ctx context.Context, owner models.User, courseID int64) error
}

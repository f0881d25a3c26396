package store

import (
	"context"

	"github.com/avelkin/courses-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields populated. The Password field must already
	// carry the bcrypt hash.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the user whose email address matches email.
	// Matching is exact unless the repository was configured for
	// case-insensitive lookup. Returns ErrNoUserWasFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// GetUserByID retrieves a user by primary key.
	// Returns ErrNoUserWasFound when no row matches.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// CourseRepository provides persistence for courses, including the
// ownership-conditional mutations used by update and delete.
type CourseRepository interface {
	// ListCourses returns all courses with their owners embedded.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// GetCourse returns a single course with its owner embedded.
	// Returns ErrCourseNotFound when no row matches.
	GetCourse(ctx context.Context, courseID int64) (models.Course, error)

	// CreateCourse persists a new course and returns the record with
	// server-assigned fields populated. Returns ErrOwnerNotFound when the
	// owner reference fails the foreign-key check.
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)

	// UpdateOwnedCourse applies the non-nil fields of update to the course,
	// but only when it is owned by ownerID. The ownership check and the
	// mutation are a single conditional UPDATE, so no window exists between
	// them. Returns ErrCourseNotFound when the course does not exist and
	// ErrNotCourseOwner when it belongs to someone else.
	UpdateOwnedCourse(ctx context.Context, courseID, ownerID int64, update models.CourseInput) error

	// DeleteOwnedCourse removes the course, but only when it is owned by
	// ownerID, using a single conditional DELETE. Error contract matches
	// UpdateOwnedCourse.
	DeleteOwnedCourse(ctx context.Context, courseID, ownerID int64) error
}

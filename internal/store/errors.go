package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email address already exists.
	ErrEmailAlreadyExists = errors.New("email address already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCourseNotFound is returned when a query or mutation targets a course
	// that does not exist in the database.
	ErrCourseNotFound = errors.New("course was not found")

	// ErrNotCourseOwner is returned when a conditional mutation affects zero
	// rows because the course exists but belongs to a different user.
	// The mutation is guaranteed not to have been applied.
	ErrNotCourseOwner = errors.New("course belongs to a different user")

	// ErrOwnerNotFound is returned when a course INSERT fails the foreign-key
	// check because the referenced owner does not exist.
	ErrOwnerNotFound = errors.New("course owner does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/models"
)

// courseRepository is the SQL-backed implementation of [CourseRepository].
// It executes all course CRUD operations against the "courses" table using
// the embedded [*DB] connection.
//
// The ownership-gated mutations (update, delete) are single conditional
// statements keyed on both course_id and user_id: the database decides
// ownership and mutation in one step, leaving no window between the check
// and the write.
type courseRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCourseRepository constructs a [CourseRepository] backed by the provided
// database connection and logger.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// ListCourses returns all courses with their owners embedded, ordered by id.
func (r *courseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCoursesQuery()
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*courseRepository.ListCourses").
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("failed to execute course listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0, 20)

	for rows.Next() {
		course, scanErr := scanCourseWithOwner(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*courseRepository.ListCourses").Msg("failed to scan course row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("row iteration ended with error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

// GetCourse returns a single course with its owner embedded.
//
// Error handling:
//   - empty result set → [ErrCourseNotFound] (never a nil dereference).
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (r *courseRepository) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCourseQuery(courseID)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.GetCourse").Msg("failed to create query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	course, err := scanCourseWithOwner(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, ErrCourseNotFound
		}

		log.Err(err).
			Str("func", "*courseRepository.GetCourse").
			Int64("course_id", courseID).
			Msg("failed to load course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return course, nil
}

// CreateCourse persists a new course record and returns the fully populated
// [models.Course] with server-assigned fields (CourseID, timestamps).
//
// Error handling:
//   - foreign-key violation on user_id → [ErrOwnerNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCourse,
		course.Title,
		course.Description,
		nullableString(course.EstimatedTime),
		nullableString(course.MaterialsNeeded),
		course.UserID,
	)

	var created models.Course
	var estimatedTime, materialsNeeded sql.NullString
	err := row.Scan(
		&created.CourseID,
		&created.Title,
		&created.Description,
		&estimatedTime,
		&materialsNeeded,
		&created.UserID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Debug().Str("func", "*courseRepository.CreateCourse").Int64("user_id", course.UserID).Msg("owner does not exist")
			return models.Course{}, ErrOwnerNotFound
		}

		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error: creating course failed")
		return models.Course{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	created.EstimatedTime = estimatedTime.String
	created.MaterialsNeeded = materialsNeeded.String

	return created, nil
}

// UpdateOwnedCourse applies the non-nil fields of update to the course in a
// single conditional UPDATE guarded by owner identity.
//
// When the statement affects zero rows a follow-up existence check decides
// which of the two possible reasons applies:
//   - the course does not exist → [ErrCourseNotFound];
//   - the course belongs to someone else → [ErrNotCourseOwner].
func (r *courseRepository) UpdateOwnedCourse(ctx context.Context, courseID, ownerID int64, update models.CourseInput) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateOwnedCourseQuery(courseID, ownerID, update)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateOwnedCourse").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*courseRepository.UpdateOwnedCourse").
			Int64("course_id", courseID).
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("failed to execute conditional update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return r.resolveZeroRows(ctx, courseID)
	}

	return nil
}

// DeleteOwnedCourse removes the course in a single conditional DELETE
// guarded by owner identity. Zero-row resolution matches
// [UpdateOwnedCourse].
func (r *courseRepository) DeleteOwnedCourse(ctx context.Context, courseID, ownerID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteOwnedCourse, courseID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*courseRepository.DeleteOwnedCourse").
			Int64("course_id", courseID).
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("failed to execute conditional delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return r.resolveZeroRows(ctx, courseID)
	}

	return nil
}

// resolveZeroRows distinguishes "course missing" from "course owned by
// someone else" after a conditional mutation matched nothing.
func (r *courseRepository) resolveZeroRows(ctx context.Context, courseID int64) error {
	var ownerID int64
	err := r.db.QueryRowContext(ctx, getCourseOwner, courseID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCourseNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ErrNotCourseOwner
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCourseWithOwner scans the columns produced by the course read queries
// ([courseWithOwnerColumns]) into a Course with its owner embedded. The
// owner's password and timestamps never leave the database.
func scanCourseWithOwner(row rowScanner) (models.Course, error) {
	var course models.Course
	var owner models.User
	var estimatedTime, materialsNeeded sql.NullString

	err := row.Scan(
		&course.CourseID,
		&course.Title,
		&course.Description,
		&estimatedTime,
		&materialsNeeded,
		&course.UserID,
		&owner.FirstName,
		&owner.LastName,
		&owner.EmailAddress,
	)
	if err != nil {
		return models.Course{}, err
	}

	course.EstimatedTime = estimatedTime.String
	course.MaterialsNeeded = materialsNeeded.String
	owner.UserID = course.UserID
	course.Owner = &owner

	return course, nil
}

// nullableString maps an empty string to SQL NULL for the optional
// free-text columns.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

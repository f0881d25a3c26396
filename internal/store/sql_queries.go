// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velkin

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/avelkin/courses-api/models"
	"github.com/jackc/pgerrcode"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, email_address, password)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, first_name, last_name, email_address, password, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, first_name, last_name, email_address, password, created_at, updated_at
    FROM users
    WHERE email_address = $1;`

	findUserByEmailFold = `SELECT user_id, first_name, last_name, email_address, password, created_at, updated_at
    FROM users
    WHERE LOWER(email_address) = LOWER($1);`

	getUserByID = `SELECT user_id, first_name, last_name, email_address, password, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	createCourse = `INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING course_id, title, description, estimated_time, materials_needed, user_id, created_at, updated_at;`

	getCourseOwner = `SELECT user_id FROM courses WHERE course_id = $1;`

	deleteOwnedCourse = `DELETE FROM courses WHERE course_id = $1 AND user_id = $2;`
)

// psql builds queries with PostgreSQL-style numbered placeholders. SQLite
// accepts the same $N form, binding arguments by order of first occurrence.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// courseWithOwnerColumns lists every column scanned by the course read
// queries: course fields first, then the owner's public fields.
var courseWithOwnerColumns = []string{
	"c.course_id",
	"c.title",
	"c.description",
	"c.estimated_time",
	"c.materials_needed",
	"c.user_id",
	"u.first_name",
	"u.last_name",
	"u.email_address",
}

// buildListCoursesQuery builds the SELECT returning all courses joined with
// their owners, ordered by course id for stable listings.
func buildListCoursesQuery() (string, []any, error) {
	return psql.
		Select(courseWithOwnerColumns...).
		From("courses c").
		Join("users u ON u.user_id = c.user_id").
		OrderBy("c.course_id").
		ToSql()
}

// buildGetCourseQuery builds the single-course SELECT with the owner joined.
func buildGetCourseQuery(courseID int64) (string, []any, error) {
	return psql.
		Select(courseWithOwnerColumns...).
		From("courses c").
		Join("users u ON u.user_id = c.user_id").
		Where(sq.Eq{"c.course_id": courseID}).
		ToSql()
}

// buildUpdateOwnedCourseQuery builds the conditional UPDATE that applies the
// non-nil fields of update and bumps updated_at, guarded by both the course
// id and the owner id. The ownership comparison lives inside the statement
// itself, so the check and the mutation are atomic.
func buildUpdateOwnedCourseQuery(courseID, ownerID int64, update models.CourseInput) (string, []any, error) {
	builder := psql.Update("courses")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	// optional free-text columns clear to NULL, matching createCourse
	if update.EstimatedTime != nil {
		builder = builder.Set("estimated_time", nullableString(*update.EstimatedTime))
	}
	if update.MaterialsNeeded != nil {
		builder = builder.Set("materials_needed", nullableString(*update.MaterialsNeeded))
	}

	return builder.
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"course_id": courseID, "user_id": ownerID}).
		ToSql()
}

// isUniqueViolation reports whether err is a uniqueness-constraint failure.
// PostgreSQL reports code 23505; SQLite only exposes the violation through
// its error text.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation reports whether err is a foreign-key failure,
// covering both drivers the same way as [isUniqueViolation].
func isForeignKeyViolation(err error) bool {
	if postgresError(err) == pgerrcode.ForeignKeyViolation {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velkin

package store

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/avelkin/courses-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func Test_buildListCoursesQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListCoursesQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from courses c")
	require.Contains(t, q, "join users u on u.user_id = c.user_id")
	require.Contains(t, q, "order by c.course_id")

	// owner columns ride along with every course
	require.Contains(t, q, "u.first_name")
	require.Contains(t, q, "u.last_name")
	require.Contains(t, q, "u.email_address")

	// the owner's password must never be selected
	require.NotContains(t, q, "password")
}

func Test_buildGetCourseQuery_SQLContainsParts(t *testing.T) {
	courseID := int64(42)

	query, args, err := buildGetCourseQuery(courseID)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, courseID, args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "from courses c")
	require.Contains(t, q, "join users u")
	require.Contains(t, q, "where")
	require.Contains(t, q, "c.course_id")
	require.Contains(t, query, "$1")
}

func Test_buildUpdateOwnedCourseQuery_PartialUpdate(t *testing.T) {
	title := "New Title"

	query, args, err := buildUpdateOwnedCourseQuery(1, 2, models.CourseInput{Title: &title})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "update courses")
	require.Contains(t, q, "title")
	require.Contains(t, q, "updated_at")
	require.NotContains(t, q, "description")

	// ownership lives inside the WHERE clause: Eq keys sort
	// alphabetically, so course_id binds before user_id
	require.Contains(t, q, "course_id")
	require.Contains(t, q, "user_id")
	require.Equal(t, []any{title, int64(1), int64(2)}, args)
}

func Test_buildUpdateOwnedCourseQuery_AllFields(t *testing.T) {
	title := "t"
	description := "d"
	estimatedTime := "12 hours"
	materialsNeeded := "a hammer"

	query, args, err := buildUpdateOwnedCourseQuery(1, 2, models.CourseInput{
		Title:           &title,
		Description:     &description,
		EstimatedTime:   &estimatedTime,
		MaterialsNeeded: &materialsNeeded,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "title")
	require.Contains(t, q, "description")
	require.Contains(t, q, "estimated_time")
	require.Contains(t, q, "materials_needed")

	// 4 SET values + 2 WHERE values; CURRENT_TIMESTAMP binds no argument
	require.Equal(t, []any{
		title,
		description,
		sql.NullString{String: estimatedTime, Valid: true},
		sql.NullString{String: materialsNeeded, Valid: true},
		int64(1),
		int64(2),
	}, args)
}

func Test_buildUpdateOwnedCourseQuery_EmptyOptionalFieldsBecomeNull(t *testing.T) {
	empty := ""

	_, args, err := buildUpdateOwnedCourseQuery(1, 2, models.CourseInput{
		EstimatedTime:   &empty,
		MaterialsNeeded: &empty,
	})
	require.NoError(t, err)

	// clearing an optional column round-trips as NULL, same as on insert
	require.Equal(t, []any{
		sql.NullString{},
		sql.NullString{},
		int64(1),
		int64(2),
	}, args)
}

func Test_isUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "postgres unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: true},
		{name: "sqlite unique violation", err: errors.New("UNIQUE constraint failed: users.email_address"), want: true},
		{name: "postgres foreign key violation", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: false},
		{name: "plain error", err: errors.New("db network error"), want: false},
		{name: "nil error", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func Test_isForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "postgres foreign key violation", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: true},
		{name: "sqlite foreign key violation", err: errors.New("FOREIGN KEY constraint failed"), want: true},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: false},
		{name: "nil error", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, isForeignKeyViolation(tt.err))
		})
	}
}

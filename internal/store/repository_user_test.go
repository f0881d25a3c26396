package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var userColumns = []string{"user_id", "first_name", "last_name", "email_address", "password", "created_at", "updated_at"}

func newTestUserRepo(t *testing.T, caseInsensitive bool) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:              &DB{DB: db, logger: l},
		caseInsensitive: caseInsensitive,
		logger:          l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, false)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "$2a$10$hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, user.FirstName, user.LastName, user.EmailAddress, user.Password, now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.FirstName, user.LastName, user.EmailAddress, user.Password).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.EmailAddress != user.EmailAddress {
		t.Errorf("expected email %s, got %s", user.EmailAddress, created.EmailAddress)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, false)
	defer db.Close()

	ctx := context.Background()
	user := models.User{EmailAddress: "joe@smith.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UniqueViolationSQLite(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, false)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("UNIQUE constraint failed: users.email_address"))

	_, err := repo.CreateUser(ctx, models.User{EmailAddress: "joe@smith.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, false)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{EmailAddress: "joe@smith.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, false)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(7, "Sally", "Jones", "sally@jones.com", "$2a$10$hash", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("sally@jones.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(ctx, "sally@jones.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
	if found.FirstName != "Sally" {
		t.Errorf("expected first name Sally, got %s", found.FirstName)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, false)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_CaseInsensitive(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, true)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(7, "Sally", "Jones", "sally@jones.com", "$2a$10$hash", now, now)

	mock.ExpectQuery(`WHERE LOWER\(email_address\) = LOWER`).
		WithArgs("SALLY@JONES.COM").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(ctx, "SALLY@JONES.COM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.EmailAddress != "sally@jones.com" {
		t.Errorf("expected stored email back, got %s", found.EmailAddress)
	}
}

func TestGetUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, false)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(3, "Joe", "Smith", "joe@smith.com", "$2a$10$hash", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	found, err := repo.GetUserByID(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 3 {
		t.Errorf("expected UserID=3, got %d", found.UserID)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, false)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByID(ctx, 99)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

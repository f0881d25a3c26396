package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/internal/mock"
	"github.com/avelkin/courses-api/internal/store"
	"github.com/avelkin/courses-api/internal/utils"
	"github.com/avelkin/courses-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(userRepo, logger.Nop()), userRepo
}

func hashForTest(t *testing.T, password string) string {
	t.Helper()

	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err, "failed to hash test password")
	return hash
}

func TestAuthenticate_Success(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	stored := models.User{
		UserID:       1,
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     hashForTest(t, "joepassword"),
	}

	userRepo.EXPECT().FindUserByEmail(ctx, "joe@smith.com").Return(stored, nil)

	user, err := svc.Authenticate(ctx, "joe@smith.com", "joepassword")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthenticate_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "pw"},
		{name: "empty password", email: "joe@smith.com", password: ""},
		{name: "both empty", email: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindUserByEmail(ctx, "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Authenticate(ctx, "nobody@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	stored := models.User{
		UserID:       1,
		EmailAddress: "joe@smith.com",
		Password:     hashForTest(t, "joepassword"),
	}

	userRepo.EXPECT().FindUserByEmail(ctx, "joe@smith.com").Return(stored, nil)

	_, err := svc.Authenticate(ctx, "joe@smith.com", "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_StorageError(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	dbErr := errors.New("db network error")
	userRepo.EXPECT().FindUserByEmail(ctx, "joe@smith.com").Return(models.User{}, dbErr)

	_, err := svc.Authenticate(ctx, "joe@smith.com", "pw")
	assert.NotErrorIs(t, err, ErrInvalidCredentials, "storage errors must not masquerade as bad credentials")
	assert.ErrorIs(t, err, dbErr)
}

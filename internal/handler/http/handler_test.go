package http

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avelkin/courses-api/internal/config"
	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/internal/mock"
	"github.com/avelkin/courses-api/internal/service"
	"github.com/avelkin/courses-api/internal/utils"
	"github.com/avelkin/courses-api/internal/validators"
	"github.com/avelkin/courses-api/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// testEnv bundles a running test server with the mocked repositories
// behind it. The full pipeline is real — router, middleware, services,
// validators — only the storage layer is mocked.
type testEnv struct {
	server     *httptest.Server
	userRepo   *mock.MockUserRepository
	courseRepo *mock.MockCourseRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	courseRepo := mock.NewMockCourseRepository(ctrl)

	log := logger.Nop()
	validator := validators.NewRecordValidator()
	services := &service.Services{
		AuthService:   service.NewAuthService(userRepo, log),
		UserService:   service.NewUserService(userRepo, validator, config.App{BcryptCost: bcrypt.MinCost}, log),
		CourseService: service.NewCourseService(courseRepo, validator, log),
	}

	srv := httptest.NewServer(NewHandler(services, log).Init())
	t.Cleanup(srv.Close)

	return &testEnv{
		server:     srv,
		userRepo:   userRepo,
		courseRepo: courseRepo,
	}
}

// joeHash is the stored bcrypt hash for joe's password, generated once per
// test binary at minimum cost.
var joeHash string

func storedJoe() models.User {
	if joeHash == "" {
		hash, err := utils.HashPassword("joepassword", bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		joeHash = hash
	}
	return models.User{
		UserID:       1,
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     joeHash,
	}
}

// expectJoeAuthenticated arms the user repository for one successful Basic
// auth pass with joe's credentials.
func (e *testEnv) expectJoeAuthenticated() {
	e.userRepo.EXPECT().FindUserByEmail(gomock.Any(), "joe@smith.com").Return(storedJoe(), nil)
}

func basicAuthHeader(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

// doRequest performs a request against the test server, optionally with a
// JSON body and an Authorization header.
func (e *testEnv) doRequest(t *testing.T, method, path, body, authHeader string) *http.Response {
	t.Helper()

	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, e.server.URL+path, nil)
	} else {
		req, err = http.NewRequest(method, e.server.URL+path, strings.NewReader(body))
	}
	require.NoError(t, err, "failed to create request")

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err, "request failed")
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

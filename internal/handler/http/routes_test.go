package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/avelkin/courses-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body models.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), "failed to decode body")
	return body.Message
}

func TestGreeting(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doRequest(t, http.MethodGet, "/", "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Welcome to the REST API project!", decodeMessage(t, resp))
}

func TestRouteNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doRequest(t, http.MethodGet, "/api/nowhere", "", "")

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Route Not Found", decodeMessage(t, resp))
}

// an unsupported method on a known path is indistinguishable from an
// unknown path
func TestUnsupportedMethodAnswersRouteNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doRequest(t, http.MethodDelete, "/", "", "")

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Route Not Found", decodeMessage(t, resp))
}

package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_OK(t *testing.T) {
	env := newTestEnv(t)
	env.addProject(t)
	hc := NewHealthController(env.content)

	rr := httptest.NewRecorder()
	hc.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse[healthResponse](t, rr)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Content.Projects)
	assert.Equal(t, 0, resp.Content.Skills)
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)
	rr := httptest.NewRecorder()
	NewHealthController(env.content).Health(rr, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h0m0s", formatDuration(0))
	assert.Equal(t, "1h2m3s", formatDuration(time.Hour+2*time.Minute+3*time.Second))
	assert.Equal(t, "25h0m0s", formatDuration(25*time.Hour))
}

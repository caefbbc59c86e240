package controllers

import (
	"net/http"
	"net/http/httptest"
	"portfolio/internal/models"
	"portfolio/internal/services"
	"portfolio/internal/storage"
	"portfolio/internal/testutil"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store    *storage.MemoryStore
	content  services.ContentServiceInterface
	transfer services.TransferServiceInterface
	cache    *testutil.MockCache
	logger   *testutil.MockLogger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := &testutil.MockLogger{}
	store := storage.NewMemoryStore()
	content := services.NewContentService(store, logger, testutil.NewMockMetrics())
	compressor, err := storage.NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(compressor.Close)

	cache := testutil.NewMockCache()
	content.Subscribe(func(string) { cache.Purge() })

	return &testEnv{
		store:    store,
		content:  content,
		transfer: services.NewTransferService(content, compressor, logger),
		cache:    cache,
		logger:   logger,
	}
}

func (e *testEnv) addProject(t *testing.T) models.Project {
	t.Helper()
	p, err := e.content.AddProject(models.ProjectInput{
		Title:        "Portfolio",
		Description:  "Personal site",
		Technologies: []string{"Go"},
		GithubURL:    "https://github.com/me/portfolio",
		Category:     "Web",
		StartDate:    "2024-01-01",
	})
	require.NoError(t, err)
	return p
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

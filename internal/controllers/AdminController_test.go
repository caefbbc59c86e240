package controllers

import (
	"net/http"
	"net/http/httptest"
	"portfolio/internal/models"
	"portfolio/internal/storage"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdmin(env *testEnv) *AdminController {
	return NewAdminController(env.logger, env.content, env.transfer)
}

func TestAdminController_CreateProject(t *testing.T) {
	env := newTestEnv(t)
	ac := newAdmin(env)

	body := `{"title":"CLI","description":"A tool","githubUrl":"https://github.com/me/cli","category":"Tools","startDate":"2024-02-01","technologies":["Go","Go"]}`
	rr := httptest.NewRecorder()
	ac.CreateProject(rr, jsonRequest(http.MethodPost, "/api/admin/projects", body))

	require.Equal(t, http.StatusCreated, rr.Code)
	p := decodeResponse[models.Project](t, rr)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, models.StatusPlanned, p.Status)
	assert.Equal(t, []string{"Go", "Go"}, p.Technologies)
	assert.Len(t, env.content.Projects(), 1)
}

func TestAdminController_CreateRejectsInvalid(t *testing.T) {
	env := newTestEnv(t)
	ac := newAdmin(env)

	rr := httptest.NewRecorder()
	ac.CreateExperience(rr, jsonRequest(http.MethodPost, "/api/admin/experiences", `{"title":"Dev","location":"Remote","startDate":"2020","description":"d"}`))

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	resp := decodeResponse[errorResponse](t, rr)
	assert.Equal(t, "company", resp.Field)
	assert.Empty(t, env.content.Experiences())
}

func TestAdminController_CreateRejectsMalformedBody(t *testing.T) {
	env := newTestEnv(t)
	rr := httptest.NewRecorder()
	newAdmin(env).CreateSkill(rr, jsonRequest(http.MethodPost, "/api/admin/skills", `{"name":`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminController_UpdateProject(t *testing.T) {
	env := newTestEnv(t)
	p := env.addProject(t)
	ac := newAdmin(env)

	req := jsonRequest(http.MethodPut, "/api/admin/projects/"+p.ID, `{"status":"completed"}`)
	req.SetPathValue("id", p.ID)
	rr := httptest.NewRecorder()
	ac.UpdateProject(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	updated := decodeResponse[models.Project](t, rr)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, []string{"Go"}, updated.Technologies)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
}

func TestAdminController_UpdateMissingReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ac := newAdmin(env)

	req := jsonRequest(http.MethodPut, "/api/admin/skills/missing", `{"name":"Rust"}`)
	req.SetPathValue("id", "missing")
	rr := httptest.NewRecorder()
	ac.UpdateSkill(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminController_DeleteProject(t *testing.T) {
	env := newTestEnv(t)
	p := env.addProject(t)
	ac := newAdmin(env)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/projects/"+p.ID, nil)
	req.SetPathValue("id", p.ID)
	rr := httptest.NewRecorder()
	ac.DeleteProject(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, env.content.Projects())

	rr = httptest.NewRecorder()
	ac.DeleteProject(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminController_EducationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ac := newAdmin(env)

	rr := httptest.NewRecorder()
	ac.CreateEducation(rr, jsonRequest(http.MethodPost, "/api/admin/education", `{"degree":"BSc","institution":"WGU","location":"Remote","startDate":"2019","achievements":["Honors"]}`))
	require.Equal(t, http.StatusCreated, rr.Code)
	e := decodeResponse[models.Education](t, rr)

	req := jsonRequest(http.MethodPut, "/api/admin/education/"+e.ID, `{"gpa":"3.9"}`)
	req.SetPathValue("id", e.ID)
	rr = httptest.NewRecorder()
	ac.UpdateEducation(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decodeResponse[models.Education](t, rr)
	assert.Equal(t, "3.9", updated.GPA)
	assert.Equal(t, []string{"Honors"}, updated.Achievements)

	req = httptest.NewRequest(http.MethodDelete, "/api/admin/education/"+e.ID, nil)
	req.SetPathValue("id", e.ID)
	rr = httptest.NewRecorder()
	ac.DeleteEducation(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestAdminController_ExperienceLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ac := newAdmin(env)

	rr := httptest.NewRecorder()
	ac.CreateExperience(rr, jsonRequest(http.MethodPost, "/api/admin/experiences", `{"title":"Engineer","company":"Acme","location":"Remote","startDate":"2020","description":"d"}`))
	require.Equal(t, http.StatusCreated, rr.Code)
	e := decodeResponse[models.Experience](t, rr)

	req := jsonRequest(http.MethodPut, "/api/admin/experiences/"+e.ID, `{"endDate":"2023"}`)
	req.SetPathValue("id", e.ID)
	rr = httptest.NewRecorder()
	ac.UpdateExperience(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Engineer", decodeResponse[models.Experience](t, rr).Title)

	req = httptest.NewRequest(http.MethodDelete, "/api/admin/experiences/"+e.ID, nil)
	req.SetPathValue("id", e.ID)
	rr = httptest.NewRecorder()
	ac.DeleteExperience(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestAdminController_AboutUpdateAndReset(t *testing.T) {
	env := newTestEnv(t)
	ac := newAdmin(env)

	rr := httptest.NewRecorder()
	ac.UpdateAbout(rr, jsonRequest(http.MethodPut, "/api/admin/about", `{"heading":"Hi there"}`))
	require.Equal(t, http.StatusOK, rr.Code)
	about := decodeResponse[models.AboutSection](t, rr)
	assert.Equal(t, "Hi there", about.Heading)
	assert.Equal(t, models.DefaultAbout().Stats, about.Stats)

	rr = httptest.NewRecorder()
	ac.UpdateAbout(rr, jsonRequest(http.MethodPut, "/api/admin/about", `{"heading":""}`))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = httptest.NewRecorder()
	ac.ResetAbout(rr, httptest.NewRequest(http.MethodPost, "/api/admin/about/reset", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.DefaultAbout(), env.content.About())
}

func TestAdminController_Export(t *testing.T) {
	env := newTestEnv(t)
	env.addProject(t)

	rr := httptest.NewRecorder()
	newAdmin(env).Export(rr, httptest.NewRequest(http.MethodGet, "/api/admin/export", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), `attachment; filename="portfolio-export-`)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.Len(t, raw, 5)
}

func TestAdminController_ImportPreviewThenConfirm(t *testing.T) {
	source := newTestEnv(t)
	source.addProject(t)
	doc, err := source.transfer.ExportJSON()
	require.NoError(t, err)

	env := newTestEnv(t)
	ac := newAdmin(env)

	rr := httptest.NewRecorder()
	ac.Import(rr, jsonRequest(http.MethodPost, "/api/admin/import", string(doc)))
	require.Equal(t, http.StatusOK, rr.Code)
	preview := decodeResponse[map[string]any](t, rr)
	assert.Equal(t, false, preview["applied"])
	assert.Empty(t, env.content.Projects())

	rr = httptest.NewRecorder()
	ac.Import(rr, jsonRequest(http.MethodPost, "/api/admin/import?confirm=true", string(doc)))
	require.Equal(t, http.StatusOK, rr.Code)
	applied := decodeResponse[map[string]any](t, rr)
	assert.Equal(t, true, applied["applied"])
	assert.Len(t, env.content.Projects(), 1)
}

func TestAdminController_ImportRejectsInvalidDocument(t *testing.T) {
	env := newTestEnv(t)
	env.addProject(t)
	ac := newAdmin(env)

	rr := httptest.NewRecorder()
	ac.Import(rr, jsonRequest(http.MethodPost, "/api/admin/import?confirm=true", `{"projects":[],"skills":[],"experiences":[],"education":[]}`))

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	resp := decodeResponse[errorResponse](t, rr)
	require.NotEmpty(t, resp.Issues)
	assert.Equal(t, models.CategoryAbout, resp.Issues[0].Category)
	assert.Len(t, env.content.Projects(), 1)
}

func TestAdminController_ImportRejectsEmptyBody(t *testing.T) {
	env := newTestEnv(t)
	rr := httptest.NewRecorder()
	newAdmin(env).Import(rr, httptest.NewRequest(http.MethodPost, "/api/admin/import", strings.NewReader("")))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminController_ResetRequiresConfirmation(t *testing.T) {
	env := newTestEnv(t)
	env.addProject(t)
	ac := newAdmin(env)

	rr := httptest.NewRecorder()
	ac.Reset(rr, httptest.NewRequest(http.MethodPost, "/api/admin/reset", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Len(t, env.content.Projects(), 1)

	rr = httptest.NewRecorder()
	ac.Reset(rr, httptest.NewRequest(http.MethodPost, "/api/admin/reset?confirm=true", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.Counts{}, decodeResponse[models.Counts](t, rr))
	assert.Empty(t, env.content.Projects())

	_, err := env.store.Get(storage.KeyProjects)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

package controllers

import (
	"fmt"
	"net/http"
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"portfolio/internal/services"
	"time"
)

// AdminController holds the authenticated content management endpoints.
type AdminController struct {
	logger   providers.Logger
	content  services.ContentServiceInterface
	transfer services.TransferServiceInterface
}

func NewAdminController(logger providers.Logger, content services.ContentServiceInterface, transfer services.TransferServiceInterface) *AdminController {
	return &AdminController{
		logger:   logger,
		content:  content,
		transfer: transfer,
	}
}

func createEntity[In any, Out any](ac *AdminController, w http.ResponseWriter, r *http.Request, add func(In) (Out, error)) {
	var in In
	if err := decodeBody(w, r, &in); err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	out, err := add(in)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func updateEntity[P any, Out any](ac *AdminController, w http.ResponseWriter, r *http.Request, update func(string, P) (Out, bool, error)) {
	var patch P
	if err := decodeBody(w, r, &patch); err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	out, found, err := update(r.PathValue("id"), patch)
	if !found {
		writeNotFound(w)
		return
	}
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func deleteEntity(w http.ResponseWriter, r *http.Request, remove func(string) bool) {
	if !remove(r.PathValue("id")) {
		writeNotFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AdminController) CreateProject(w http.ResponseWriter, r *http.Request) {
	createEntity(ac, w, r, ac.content.AddProject)
}

func (ac *AdminController) UpdateProject(w http.ResponseWriter, r *http.Request) {
	updateEntity(ac, w, r, ac.content.UpdateProject)
}

func (ac *AdminController) DeleteProject(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, ac.content.DeleteProject)
}

func (ac *AdminController) CreateSkill(w http.ResponseWriter, r *http.Request) {
	createEntity(ac, w, r, ac.content.AddSkill)
}

func (ac *AdminController) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	updateEntity(ac, w, r, ac.content.UpdateSkill)
}

func (ac *AdminController) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, ac.content.DeleteSkill)
}

func (ac *AdminController) CreateExperience(w http.ResponseWriter, r *http.Request) {
	createEntity(ac, w, r, ac.content.AddExperience)
}

func (ac *AdminController) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	updateEntity(ac, w, r, ac.content.UpdateExperience)
}

func (ac *AdminController) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, ac.content.DeleteExperience)
}

func (ac *AdminController) CreateEducation(w http.ResponseWriter, r *http.Request) {
	createEntity(ac, w, r, ac.content.AddEducation)
}

func (ac *AdminController) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	updateEntity(ac, w, r, ac.content.UpdateEducation)
}

func (ac *AdminController) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, ac.content.DeleteEducation)
}

func (ac *AdminController) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var patch models.AboutPatch
	if err := decodeBody(w, r, &patch); err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	about, err := ac.content.UpdateAbout(patch)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, about)
}

func (ac *AdminController) ResetAbout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.content.ResetAbout())
}

// Export sends the export document as a file download.
func (ac *AdminController) Export(w http.ResponseWriter, r *http.Request) {
	data, err := ac.transfer.ExportJSON()
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	name := fmt.Sprintf("portfolio-export-%s.json", time.Now().UTC().Format(time.DateOnly))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type importResponse struct {
	Applied bool `json:"applied"`
	*services.ImportPreview
}

// Import validates the uploaded document. Content is replaced only when the
// request carries confirm=true.
func (ac *AdminController) Import(w http.ResponseWriter, r *http.Request) {
	data, err := readRaw(w, r, maxImportBodySize)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		preview, err := ac.transfer.Preview(data)
		if err != nil {
			writeError(w, r, ac.logger, err)
			return
		}
		writeJSON(w, http.StatusOK, importResponse{Applied: false, ImportPreview: preview})
		return
	}

	result, err := ac.transfer.Apply(data)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, importResponse{Applied: true, ImportPreview: result})
}

// Reset deletes all content. It requires confirm=true.
func (ac *AdminController) Reset(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "reset requires confirm=true"})
		return
	}
	if err := ac.transfer.Reset(); err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, ac.content.Counts())
}

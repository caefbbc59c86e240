package controllers

import (
	"net/http"
	"portfolio/internal/providers"
	"portfolio/internal/services"
)

type AuthController struct {
	logger providers.Logger
	auth   services.AuthServiceInterface
}

func NewAuthController(logger providers.Logger, auth services.AuthServiceInterface) *AuthController {
	return &AuthController{logger: logger, auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	res, err := ac.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := ac.auth.Logout(); err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	if user, ok := providers.AdminFromContext(r.Context()); ok {
		writeJSON(w, http.StatusOK, user)
		return
	}
	user, err := ac.auth.CurrentUser()
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

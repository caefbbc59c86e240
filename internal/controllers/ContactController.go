package controllers

import (
	"net/http"
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"portfolio/internal/services"
)

type ContactController struct {
	logger  providers.Logger
	contact services.ContactServiceInterface
}

func NewContactController(logger providers.Logger, contact services.ContactServiceInterface) *ContactController {
	return &ContactController{logger: logger, contact: contact}
}

func (cc *ContactController) Send(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := decodeBody(w, r, &msg); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	if err := cc.contact.Send(msg); err != nil {
		writeError(w, r, cc.logger, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

package controllers

import (
	"log/slog"
	"net/http"

	h "seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/domain"
)

// ContactRequest is the request body for POST /contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Send a contact message
// @Description Forwards the message to the admin mailbox.
// @Tags contact
// @Accept json
// @Produce json
// @Param form body ContactRequest true "Contact form"
// @Success 200 {object} helpers.APIResponse "data.message: message sent"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: notification_failed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contact [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	err := c.Service.Submit(r.Context(), domain.ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, h.MessageResponse{Message: "message sent"})
}

package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	h "seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/domain"
)

// RegisterRequest is the request body for POST /seminars/{id}/register.
type RegisterRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Remarks   *string `json:"remarks" validate:"omitempty,max=2000"`
}

// RegisterSuccessResponse is the success response envelope for POST /seminars/{id}/register (201).
type RegisterSuccessResponse struct {
	Data  *domain.RegistrationResult `json:"data"`
	Error *h.APIError                `json:"error"`
}

// ParticipantListSuccessResponse is the success response envelope for GET /seminars/{id}/participants (200).
type ParticipantListSuccessResponse struct {
	Data  []*domain.Participant `json:"data"`
	Error *h.APIError           `json:"error"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register for a seminar
// @Description Registers a participant while the seminar is open, which ends one hour before it starts. A confirmation mail with the unregister link is sent to the participant and a digest to the admin. When a mail cannot be sent the registration is kept and 502 is returned.
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Seminar ID"
// @Param participant body RegisterRequest true "Participant data"
// @Success 201 {object} controllers.RegisterSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: registration_closed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: notification_failed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /seminars/{id}/register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.Register(r.Context(), id, domain.ParticipantInfo{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Remarks:   req.Remarks,
	})
	if err != nil {
		if result != nil && errors.Is(err, domain.ErrNotificationFailure) {
			c.Logger.WarnContext(r.Context(), "registration stored without notification",
				"seminar_id", result.SeminarID, "participant_id", result.ParticipantID)
		}
		h.WriteServiceError(w, r, c.Logger, err, "seminar not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, result)
}

// Unregister godoc
// @Summary Unregister from a seminar
// @Description Removes the participant identified by the token from the unregister link.
// @Tags registrations
// @Produce json
// @Param id path string true "Seminar ID"
// @Param token query string true "Unregister token"
// @Success 200 {object} helpers.APIResponse "data.message: unregistered"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /seminars/{id}/unregister [get]
func (c *RegistrationController) Unregister(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if err := c.Service.Unregister(r.Context(), token); err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "registration not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, h.MessageResponse{Message: "unregistered"})
}

// ListParticipants godoc
// @Summary List the participants of a seminar
// @Tags registrations
// @Produce json
// @Security CookieAuth
// @Param id path string true "Seminar ID"
// @Success 200 {object} controllers.ParticipantListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /seminars/{id}/participants [get]
func (c *RegistrationController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	participants, err := c.Service.ListParticipants(r.Context(), id)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "seminar not found")
		return
	}
	if participants == nil {
		participants = []*domain.Participant{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, participants)
}

// ParticipantSheet godoc
// @Summary Download the participant sheet
// @Description A4 PDF with the seminar details and a signature table of all participants.
// @Tags registrations
// @Produce application/pdf
// @Security CookieAuth
// @Param id path string true "Seminar ID"
// @Success 200 {file} file
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/seminars/{id}/participants/pdf [get]
func (c *RegistrationController) ParticipantSheet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	var buf bytes.Buffer
	if err := c.Service.WriteParticipantSheet(r.Context(), id, &buf); err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "seminar not found")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "teilnehmer-"+id+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		c.Logger.WarnContext(r.Context(), "writing participant sheet failed", "seminar_id", id, "err", err)
	}
}

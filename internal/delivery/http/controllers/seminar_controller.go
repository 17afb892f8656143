package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/domain"
)

// Date and time formats of seminar request bodies.
const (
	seminarDateLayout = "2006-01-02"
	seminarTimeLayout = "15:04"
)

// SeminarRequest is the request body for POST /seminars and PUT /seminars/{id}.
// date and time are local to the configured seminar time zone.
type SeminarRequest struct {
	Title           string   `json:"title" validate:"required,max=255"`
	Description     string   `json:"description" validate:"max=20000"`
	Date            string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string   `json:"time" validate:"required,datetime=15:04"`
	URL             *string  `json:"url" validate:"omitempty,url,max=2048"`
	MaxParticipants *int     `json:"max_participants" validate:"omitempty,gte=0"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageName       *string  `json:"image_name" validate:"omitempty,max=255"`
	LocationID      *string  `json:"location_id" validate:"omitempty,max=64"`
}

// Validate implements Validator.
func (s SeminarRequest) Validate() []string {
	var errs []string
	if s.Title != "" && strings.TrimSpace(s.Title) == "" {
		errs = append(errs, "title must not be blank")
	}
	return errs
}

// toInput combines date and time into one instant in loc.
func (s SeminarRequest) toInput(loc *time.Location) (domain.SeminarInput, error) {
	startsAt, err := time.ParseInLocation(seminarDateLayout+" "+seminarTimeLayout, s.Date+" "+s.Time, loc)
	if err != nil {
		return domain.SeminarInput{}, fmt.Errorf("%w: invalid date or time", domain.ErrValidation)
	}
	locationID := s.LocationID
	if locationID != nil && strings.TrimSpace(*locationID) == "" {
		locationID = nil
	}
	return domain.SeminarInput{
		Title:           s.Title,
		Description:     s.Description,
		StartsAt:        startsAt,
		URL:             s.URL,
		MaxParticipants: s.MaxParticipants,
		Price:           s.Price,
		ImageName:       s.ImageName,
		LocationID:      locationID,
	}, nil
}

// SeminarSuccessResponse is the success response envelope for endpoints returning one seminar.
type SeminarSuccessResponse struct {
	Data  *domain.SeminarSummary `json:"data"`
	Error *h.APIError            `json:"error"`
}

// SeminarListSuccessResponse is the success response envelope for GET /seminars (200).
type SeminarListSuccessResponse struct {
	Data  []*domain.SeminarSummary `json:"data"`
	Error *h.APIError              `json:"error"`
}

// CountResponse is the data payload of GET /seminars/count.
type CountResponse struct {
	Count int `json:"count"`
}

// DeleteResponse is the data payload of delete endpoints.
type DeleteResponse struct {
	Status string `json:"status"`
}

type SeminarController struct {
	Logger   *slog.Logger
	Service  domain.SeminarService
	Location *time.Location
}

func NewSeminarController(logger *slog.Logger, svc domain.SeminarService, loc *time.Location) *SeminarController {
	if loc == nil {
		loc = time.UTC
	}
	return &SeminarController{
		Logger:   logger,
		Service:  svc,
		Location: loc,
	}
}

// List godoc
// @Summary List seminars
// @Description Returns seminars ordered by start time, newest first, each with its current participant count and location.
// @Tags seminars
// @Produce json
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Number of seminars to skip"
// @Success 200 {object} controllers.SeminarListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /seminars [get]
func (c *SeminarController) List(w http.ResponseWriter, r *http.Request) {
	seminars, err := c.Service.List(r.Context(), h.ParsePagination(r))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "seminar not found")
		return
	}
	if seminars == nil {
		seminars = []*domain.SeminarSummary{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, seminars)
}

// Count godoc
// @Summary Count seminars
// @Tags seminars
// @Produce json
// @Success 200 {object} helpers.APIResponse "data.count: number of seminars"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /seminars/count [get]
func (c *SeminarController) Count(w http.ResponseWriter, r *http.Request) {
	n, err := c.Service.Count(r.Context())
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "seminar not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, CountResponse{Count: n})
}

// Get godoc
// @Summary Get a seminar
// @Tags seminars
// @Produce json
// @Param id path string true "Seminar ID"
// @Success 200 {object} controllers.SeminarSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /seminars/{id} [get]
func (c *SeminarController) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	seminar, err := c.Service.Get(r.Context(), id)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "seminar not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, seminar)
}

// Create godoc
// @Summary Create a seminar
// @Tags seminars
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param seminar body SeminarRequest true "Seminar data"
// @Success 201 {object} helpers.APIResponse "data contains the created seminar"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /seminars [post]
func (c *SeminarController) Create(w http.ResponseWriter, r *http.Request) {
	var req SeminarRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput(c.Location)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "seminar not found")
		return
	}
	seminar, err := c.Service.Create(r.Context(), in)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "seminar not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, seminar)
}

// Update godoc
// @Summary Update a seminar
// @Description Replaces all editable fields of the seminar.
// @Tags seminars
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Seminar ID"
// @Param seminar body SeminarRequest true "Seminar data"
// @Success 200 {object} helpers.APIResponse "data contains the updated seminar"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /seminars/{id} [put]
func (c *SeminarController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	var req SeminarRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput(c.Location)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "seminar not found")
		return
	}
	seminar, err := c.Service.Update(r.Context(), id, in)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "seminar not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, seminar)
}

// Delete godoc
// @Summary Delete a seminar
// @Description Deletes the seminar together with all of its participants.
// @Tags seminars
// @Produce json
// @Security CookieAuth
// @Param id path string true "Seminar ID"
// @Success 200 {object} helpers.APIResponse "data.status: deleted"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /seminars/{id} [delete]
func (c *SeminarController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "seminar not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}

package controllers

import (
	"log/slog"
	"net/http"

	h "seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/domain"
)

// LocationRequest is the request body for POST /locations and PUT /locations/{id}.
type LocationRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Street      string  `json:"street" validate:"required,max=255"`
	HouseNumber string  `json:"house_number" validate:"required,max=20"`
	ZipCode     string  `json:"zip_code" validate:"required,max=10"`
	City        string  `json:"city" validate:"required,max=255"`
	Remarks     *string `json:"remarks" validate:"omitempty,max=2000"`
	MapsURL     *string `json:"maps_url" validate:"omitempty,url,max=2048"`
}

func (l LocationRequest) toInput() domain.LocationInput {
	return domain.LocationInput{
		Name:        l.Name,
		Street:      l.Street,
		HouseNumber: l.HouseNumber,
		ZipCode:     l.ZipCode,
		City:        l.City,
		Remarks:     l.Remarks,
		MapsURL:     l.MapsURL,
	}
}

// LocationSuccessResponse is the success response envelope for endpoints returning one location.
type LocationSuccessResponse struct {
	Data  *domain.Location `json:"data"`
	Error *h.APIError      `json:"error"`
}

type LocationController struct {
	Logger  *slog.Logger
	Service domain.LocationService
}

func NewLocationController(logger *slog.Logger, svc domain.LocationService) *LocationController {
	return &LocationController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List locations
// @Tags locations
// @Produce json
// @Param limit query int false "Maximum number of locations (default 10, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains the locations"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations [get]
func (c *LocationController) List(w http.ResponseWriter, r *http.Request) {
	locations, err := c.Service.List(r.Context(), h.ParseLimit(r))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "location not found")
		return
	}
	if locations == nil {
		locations = []*domain.Location{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, locations)
}

// Get godoc
// @Summary Get a location
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} controllers.LocationSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations/{id} [get]
func (c *LocationController) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	loc, err := c.Service.Get(r.Context(), id)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "location not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, loc)
}

// Create godoc
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param location body LocationRequest true "Location data"
// @Success 201 {object} controllers.LocationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations [post]
func (c *LocationController) Create(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	loc, err := c.Service.Create(r.Context(), req.toInput())
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "location not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, loc)
}

// Update godoc
// @Summary Update a location
// @Tags locations
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Location ID"
// @Param location body LocationRequest true "Location data"
// @Success 200 {object} controllers.LocationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations/{id} [put]
func (c *LocationController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	var req LocationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	loc, err := c.Service.Update(r.Context(), id, req.toInput())
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "location not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, loc)
}

// Delete godoc
// @Summary Delete a location
// @Description Seminars held at the location keep existing without a location.
// @Tags locations
// @Produce json
// @Security CookieAuth
// @Param id path string true "Location ID"
// @Success 200 {object} helpers.APIResponse "data.status: deleted"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations/{id} [delete]
func (c *LocationController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		h.WriteServiceError(w, r, c.Logger, err, "location not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Status: "deleted"})
}

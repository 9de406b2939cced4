package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fitimprove/internal/delivery/http/helpers"
	"fitimprove/internal/delivery/http/middleware"
	"fitimprove/internal/domain"
)

type TrainingController struct {
	Logger  *slog.Logger
	Service domain.TrainingService
}

func NewTrainingController(logger *slog.Logger, svc domain.TrainingService) *TrainingController {
	return &TrainingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateTrainingRequest is the request body for POST /trainings.
type CreateTrainingRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	ForType         string    `json:"for_type"`
	FreeSlots       int       `json:"free_slots"`
	Time            time.Time `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Validate implements helpers.Validator.
func (r *CreateTrainingRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, "title is required")
	}
	if r.ForType == "" {
		r.ForType = string(domain.ForEveryone)
	}
	if !domain.ForType(r.ForType).Valid() {
		errs = append(errs, "for_type must be EVERYONE or LIMITED")
	}
	if r.Time.IsZero() {
		errs = append(errs, "time is required")
	}
	if r.DurationMinutes <= 0 {
		errs = append(errs, "duration_minutes must be positive")
	}
	return errs
}

// TrainingSuccessResponse is the success response envelope for training operations.
type TrainingSuccessResponse struct {
	Data  *domain.Training  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Create godoc
// @Summary Publish a new training
// @Description Creates a training owned by the authenticated coach. The start time must be at least 15 minutes in the future.
// @Tags trainings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreateTrainingRequest true "Training details"
// @Success 201 {object} controllers.TrainingSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainings [post]
func (c *TrainingController) Create(w http.ResponseWriter, r *http.Request) {
	coachID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req CreateTrainingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	training := domain.NewTraining(coachID, req.Title, req.Description, req.Type,
		domain.ForType(req.ForType), req.FreeSlots, req.Time, req.DurationMinutes)
	training, err := c.Service.CreateTraining(r.Context(), training)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, training)
}

// EditTrainingRequest is the request body for PUT /trainings/{trainingID}.
type EditTrainingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	ForType     string `json:"for_type"`
	FreeSlots   int    `json:"free_slots"`
}

// Validate implements helpers.Validator.
func (r *EditTrainingRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, "title is required")
	}
	if !domain.ForType(r.ForType).Valid() {
		errs = append(errs, "for_type must be EVERYONE or LIMITED")
	}
	return errs
}

// Edit godoc
// @Summary Edit a training
// @Description Overwrites title, description, type, for_type and free_slots. Existing bookings are not reconciled against the new capacity.
// @Tags trainings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trainingID path string true "Training ID (UUID)"
// @Param body body controllers.EditTrainingRequest true "Fields to overwrite"
// @Success 200 {object} controllers.TrainingSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (including negative free_slots)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainings/{trainingID} [put]
func (c *TrainingController) Edit(w http.ResponseWriter, r *http.Request) {
	trainingID, ok := pathUUID(w, r, "trainingID")
	if !ok {
		return
	}

	var req EditTrainingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	training, err := c.Service.Edit(r.Context(), &domain.TrainingEdit{
		ID:          trainingID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		ForType:     domain.ForType(req.ForType),
		FreeSlots:   req.FreeSlots,
	})
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, training)
}

// Cancel godoc
// @Summary Cancel a whole training
// @Description Marks the training as canceled and cancels every active participation record. A second call yields 410.
// @Tags trainings
// @Produce json
// @Security BearerAuth
// @Param trainingID path string true "Training ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 410 {object} helpers.APIResponse "error.code: gone (already canceled)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainings/{trainingID} [delete]
func (c *TrainingController) Cancel(w http.ResponseWriter, r *http.Request) {
	trainingID, ok := pathUUID(w, r, "trainingID")
	if !ok {
		return
	}

	if err := c.Service.Cancel(r.Context(), trainingID); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "canceled"})
}

// Get godoc
// @Summary Get a training by id
// @Tags trainings
// @Produce json
// @Security BearerAuth
// @Param trainingID path string true "Training ID (UUID)"
// @Success 200 {object} controllers.TrainingSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainings/{trainingID} [get]
func (c *TrainingController) Get(w http.ResponseWriter, r *http.Request) {
	trainingID, ok := pathUUID(w, r, "trainingID")
	if !ok {
		return
	}

	training, err := c.Service.GetByID(r.Context(), trainingID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, training)
}

// ListMineSuccessResponse is the success response envelope for GET /coach/trainings (200).
type ListMineSuccessResponse struct {
	Data  []*domain.Training `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListMine godoc
// @Summary List the authenticated coach's trainings
// @Tags trainings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListMineSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coach/trainings [get]
func (c *TrainingController) ListMine(w http.ResponseWriter, r *http.Request) {
	coachID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	trainings, err := c.Service.ListByCoachID(r.Context(), coachID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, trainings)
}

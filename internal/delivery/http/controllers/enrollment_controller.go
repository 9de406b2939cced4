package controllers

import (
	"log/slog"
	"net/http"

	"fitimprove/internal/delivery/http/helpers"
	"fitimprove/internal/delivery/http/middleware"
	"fitimprove/internal/domain"
)

type EnrollmentController struct {
	Logger  *slog.Logger
	Service domain.EnrollmentService
}

func NewEnrollmentController(logger *slog.Logger, svc domain.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		Logger:  logger,
		Service: svc,
	}
}

// EnrollmentSuccessResponse is the success response envelope for enrollment operations.
type EnrollmentSuccessResponse struct {
	Data  *domain.ParticipationRecord `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// Enroll godoc
// @Summary Self-enroll in a training
// @Description Enrolls the authenticated user with status AGREED, consuming one free slot.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param trainingID path string true "Training ID (UUID)"
// @Success 201 {object} controllers.EnrollmentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (no free slots, already enrolled, too close to start)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 410 {object} helpers.APIResponse "error.code: gone (training canceled)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainings/{trainingID}/enrollments [post]
func (c *EnrollmentController) Enroll(w http.ResponseWriter, r *http.Request) {
	trainingID, ok := pathUUID(w, r, "trainingID")
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	rec, err := c.Service.EnrollUserInTraining(r.Context(), trainingID, userID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, rec)
}

// InviteRequest is the request body for POST /trainings/{trainingID}/invitations.
type InviteRequest struct {
	UserID string `json:"user_id"`
}

// Validate implements helpers.Validator.
func (r *InviteRequest) Validate() []string {
	if r.UserID == "" {
		return []string{"user_id is required"}
	}
	if !uuidRegex.MatchString(r.UserID) {
		return []string{"invalid user_id"}
	}
	return nil
}

// Invite godoc
// @Summary Invite a user to a training
// @Description Creates a participation record with status INVITED, reserving one free slot.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trainingID path string true "Training ID (UUID)"
// @Param body body controllers.InviteRequest true "User to invite"
// @Success 201 {object} controllers.EnrollmentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 410 {object} helpers.APIResponse "error.code: gone (training canceled)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainings/{trainingID}/invitations [post]
func (c *EnrollmentController) Invite(w http.ResponseWriter, r *http.Request) {
	trainingID, ok := pathUUID(w, r, "trainingID")
	if !ok {
		return
	}

	var req InviteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	rec, err := c.Service.Create(r.Context(), trainingID, req.UserID, domain.StatusInvited)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, rec)
}

// Accept godoc
// @Summary Accept an invitation
// @Description Flips the authenticated user's INVITED record to AGREED. The slot was already reserved at invite time.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param trainingID path string true "Training ID (UUID)"
// @Success 200 {object} controllers.EnrollmentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no invitation)"
// @Failure 410 {object} helpers.APIResponse "error.code: gone (training canceled)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainings/{trainingID}/invitations/accept [post]
func (c *EnrollmentController) Accept(w http.ResponseWriter, r *http.Request) {
	trainingID, ok := pathUUID(w, r, "trainingID")
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	rec, err := c.Service.AcceptInvitation(r.Context(), trainingID, userID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rec)
}

// Deny godoc
// @Summary Deny an invitation
// @Description Flips the authenticated user's INVITED record to DENIED and releases the reserved slot.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param trainingID path string true "Training ID (UUID)"
// @Success 200 {object} controllers.EnrollmentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no invitation)"
// @Failure 410 {object} helpers.APIResponse "error.code: gone (training canceled)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainings/{trainingID}/invitations/deny [post]
func (c *EnrollmentController) Deny(w http.ResponseWriter, r *http.Request) {
	trainingID, ok := pathUUID(w, r, "trainingID")
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	rec, err := c.Service.DenyInvitation(r.Context(), trainingID, userID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rec)
}

// CancelOwn godoc
// @Summary Cancel own participation
// @Description Flips the authenticated user's active record to CANCELED and releases one slot.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param trainingID path string true "Training ID (UUID)"
// @Success 200 {object} controllers.EnrollmentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no reservation)"
// @Failure 410 {object} helpers.APIResponse "error.code: gone (training canceled)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trainings/{trainingID}/enrollments [delete]
func (c *EnrollmentController) CancelOwn(w http.ResponseWriter, r *http.Request) {
	trainingID, ok := pathUUID(w, r, "trainingID")
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	rec, err := c.Service.CancelParticipation(r.Context(), trainingID, userID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rec)
}

// ListMyEnrollmentsSuccessResponse is the success response envelope for GET /users/me/enrollments (200).
type ListMyEnrollmentsSuccessResponse struct {
	Data  []*domain.ParticipationRecord `json:"data"`
	Error *helpers.APIError             `json:"error"`
}

// ListMyEnrollments godoc
// @Summary List all of the authenticated user's participation records
// @Description Returns every participation record of the user, regardless of status.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListMyEnrollmentsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me/enrollments [get]
func (c *EnrollmentController) ListMyEnrollments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	recs, err := c.Service.GetAllEnrolledTrainings(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	if recs == nil {
		recs = []*domain.ParticipationRecord{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, recs)
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"fitimprove/internal/delivery/http/controllers"
	"fitimprove/internal/delivery/http/helpers"
	"fitimprove/internal/delivery/http/middleware"
	"fitimprove/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	trainingController *controllers.TrainingController,
	enrollmentController *controllers.EnrollmentController,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)
	coach := func(h http.HandlerFunc) http.HandlerFunc {
		return requireAuth(middleware.RequireCoach(h))
	}

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.LogIn)

	// Users
	mux.HandleFunc("GET /users/me", requireAuth(userController.GetMe))
	mux.HandleFunc("PUT /users/me", requireAuth(userController.UpdateMe))
	mux.HandleFunc("GET /users/me/enrollments", requireAuth(enrollmentController.ListMyEnrollments))

	// Trainings (coach)
	mux.HandleFunc("POST /trainings", coach(trainingController.Create))
	mux.HandleFunc("PUT /trainings/{trainingID}", coach(trainingController.Edit))
	mux.HandleFunc("DELETE /trainings/{trainingID}", coach(trainingController.Cancel))
	mux.HandleFunc("GET /coach/trainings", coach(trainingController.ListMine))
	mux.HandleFunc("POST /trainings/{trainingID}/invitations", coach(enrollmentController.Invite))

	// Trainings (any authenticated user)
	mux.HandleFunc("GET /trainings/{trainingID}", requireAuth(trainingController.Get))
	mux.HandleFunc("POST /trainings/{trainingID}/enrollments", requireAuth(enrollmentController.Enroll))
	mux.HandleFunc("DELETE /trainings/{trainingID}/enrollments", requireAuth(enrollmentController.CancelOwn))
	mux.HandleFunc("POST /trainings/{trainingID}/invitations/accept", requireAuth(enrollmentController.Accept))
	mux.HandleFunc("POST /trainings/{trainingID}/invitations/deny", requireAuth(enrollmentController.Deny))

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

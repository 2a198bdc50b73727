package http

import (
	"net/http"

	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	healthHandler     *handler.HealthHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	healthHandler *handler.HealthHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		healthHandler:     healthHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Directory routes (public, read only)
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/suggestions", r.doctorHandler.GetSuggestions).Methods(http.MethodGet)
	api.HandleFunc("/doctors/criteria", r.doctorHandler.ApplyCriteriaAction).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router builds the full route tree under /api/v1. Task routes sit behind
// the session-token guard; auth and gender routes are public.
func (s *HTTPServer) Router() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	authAPI := api.PathPrefix("/auth").Subrouter()
	authAPI.HandleFunc("/signup", s.handleSignup).Methods(http.MethodPost)
	authAPI.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	authAPI.HandleFunc("/verify-otp", s.handleVerifyOtp).Methods(http.MethodPost)
	// the SPA calls /auth/verify
	authAPI.HandleFunc("/verify", s.handleVerifyOtp).Methods(http.MethodPost)
	authAPI.HandleFunc("/resend-otp", s.handleResendOtp).Methods(http.MethodPost)

	genderAPI := api.PathPrefix("/genders").Subrouter()
	genderAPI.HandleFunc("/list", s.handleGenderList).Methods(http.MethodGet)
	genderAPI.HandleFunc("/{id}", s.handleGenderGet).Methods(http.MethodGet)

	taskAPI := api.PathPrefix("/tasks").Subrouter()
	taskAPI.Use(s.requireAuth)
	taskAPI.HandleFunc("", s.handleTaskCreate).Methods(http.MethodPost)
	taskAPI.HandleFunc("/list", s.handleTaskList).Methods(http.MethodGet)
	taskAPI.HandleFunc("/stats", s.handleTaskStats).Methods(http.MethodGet)
	taskAPI.HandleFunc("/change-status", s.handleTaskChangeStatus).Methods(http.MethodPatch)
	taskAPI.HandleFunc("/{id}", s.handleTaskGet).Methods(http.MethodGet)
	taskAPI.HandleFunc("/{id}", s.handleTaskUpdate).Methods(http.MethodPut)
	taskAPI.HandleFunc("/{id}", s.handleTaskDelete).Methods(http.MethodDelete)

	// wrapped outside the mux so CORS preflights are answered even though
	// no OPTIONS routes are registered
	return cors(noCache(r))
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mkrylova/task-tracker-api/internal/middleware"
	"github.com/mkrylova/task-tracker-api/internal/token"
	"github.com/mkrylova/task-tracker-api/pkg/respond"
)

// NewRouter собирает все маршруты: auth открыт, tasks за токеном
func NewRouter(auth *AuthHandler, tasks *TaskHandler, tokens *token.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok"}`)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, r, http.StatusOK, map[string]string{"message": "Welcome to the Task Management API"})
	})

	gate := middleware.Auth(tokens, logger)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", auth.Register)
		r.Post("/login", auth.Login)
		r.With(gate).Get("/me", auth.Me)
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Use(gate) // вся работа с задачами только под токеном
		r.Get("/", tasks.List)
		r.Post("/", tasks.Create)
		r.Get("/{id}", tasks.Get)
		r.Put("/{id}", tasks.Update)
		r.Delete("/{id}", tasks.Delete)
	})

	return r
}

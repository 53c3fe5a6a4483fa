package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-app/inkwell/internal/auth"
	"github.com/inkwell-app/inkwell/internal/posts"
	"github.com/inkwell-app/inkwell/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	AuthHandler    *auth.Handler
	AuthMiddleware *auth.Middleware
	UsersHandler   *users.Handler
	PostsHandler   *posts.Handler
}

// NewRouter constructs the chi.Router with Inkwell defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", params.AuthHandler.MountRoutes)
		r.Route("/users", func(r chi.Router) {
			r.Use(params.AuthMiddleware.RequireIdentity)
			params.UsersHandler.MountRoutes(r)
		})
		r.Route("/posts", func(r chi.Router) {
			r.Use(params.AuthMiddleware.RequireIdentity)
			params.PostsHandler.MountRoutes(r)
		})
	})

	return r
}

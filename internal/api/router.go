// Package api assembles the HTTP router from the domain handlers.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/creatorhub/service/internal/account"
	"github.com/creatorhub/service/internal/config"
	"github.com/creatorhub/service/internal/media"
	appMiddleware "github.com/creatorhub/service/internal/middleware"
	"github.com/creatorhub/service/internal/profile"
)

// Deps are the collaborators the router wires together.
type Deps struct {
	Config   *config.Config
	Log      *zap.SugaredLogger
	Accounts *account.Handler
	Profiles *profile.Handler
	Media    *media.Handler

	// UploadsDir, when non-empty, is served statically under /uploads/.
	// It is empty when an object-storage backend serves the files itself.
	UploadsDir string
}

// NewRouter builds the chi router with all middleware and routes.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(d.Log))
	r.Use(chiMiddleware.Recoverer)
	if d.Config.IsProduction() {
		r.Use(appMiddleware.SecurityHeaders)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{d.Config.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at /swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", d.Accounts.Register)
		r.Post("/login", d.Accounts.Login)

		r.Route("/profile/{username}", func(r chi.Router) {
			r.Get("/", d.Profiles.Get)
			r.Post("/", d.Profiles.Update)
			r.Post("/avatar", d.Profiles.UploadAvatar)
			r.Post("/cover", d.Profiles.UploadCover)
		})

		r.Post("/upload", d.Media.Upload)
		r.Get("/media", d.Media.List)
		r.Delete("/media/{filename}", d.Media.Delete)
	})

	if d.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.UploadsDir)))
		r.Handle("/uploads/*", fs)
	}

	return r
}

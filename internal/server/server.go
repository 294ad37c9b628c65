// Package server wires the chi router: middleware, authentication, and the
// two resource handler families.
package server

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/gorm"

	"userposts-api/internal/config"
	"userposts-api/internal/handlers"
	"userposts-api/internal/store"
)

// New builds the full HTTP handler. Every route sits behind HTTP Basic
// authentication; an unauthenticated request is answered with a 401
// challenge before any handler runs.
func New(cfg *config.Config, db *gorm.DB) http.Handler {
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.BasicAuth("userposts-api", cfg.BasicAuthUsers()))

	// ── Handlers ────────────────────────────────────────────
	usersH := handlers.NewUsersHandler(store.NewMemoryStore())
	jpaH := handlers.NewJpaUsersHandler(
		store.NewUserRepository(db),
		store.NewPostRepository(db),
	)

	// ── Route groups ────────────────────────────────────────
	r.Route("/users", usersH.Routes)
	r.Route("/jpa/users", jpaH.Routes)

	return r
}

// requestLogger logs each HTTP request with method, path, status code, and
// duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = 200
		}
		log.Printf("%s %s %d %s",
			r.Method,
			r.URL.Path,
			status,
			duration.Round(time.Millisecond),
		)
	})
}

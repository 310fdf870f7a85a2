// Package rest exposes the HTTP API with a chi router.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/tango-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Dictionary *DictionaryHandler
	Study      *StudyHandler
}

// NewRouter builds the HTTP routing tree. global wraps every route, api wraps
// only /api (auth and rate limiting).
func NewRouter(h Handlers, global, api middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	if global != nil {
		r.Use(global)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		if api != nil {
			r.Use(api)
		}

		r.Route("/folders", func(r chi.Router) {
			r.Post("/", h.Dictionary.CreateFolder)
			r.Get("/", h.Dictionary.ListFolders)
		})

		r.Route("/words", func(r chi.Router) {
			r.Post("/", h.Dictionary.CreateWord)
			r.Get("/", h.Dictionary.ListWords)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Dictionary.GetWord)
				r.Delete("/", h.Dictionary.DeleteWord)
				r.Post("/review", h.Study.Review)
				r.Post("/reset", h.Study.Reset)
			})
		})

		r.Route("/study", func(r chi.Router) {
			r.Get("/queue", h.Study.Queue)
			r.Get("/stats", h.Study.Stats)
			r.Route("/session", func(r chi.Router) {
				r.Post("/", h.Study.StartSession)
				r.Get("/", h.Study.CurrentCard)
				r.Delete("/", h.Study.AbandonSession)
				r.Post("/rate", h.Study.RateCurrent)
			})
		})
	})

	return r
}

package server

import (
	"net/http"

	"apitemplate/src/apperror"
	"apitemplate/src/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter assembles the request pipeline: CORS, JSON body parsing, the
// routes registered by mount, and ec as the terminal error handler.
func NewRouter(config *Config, ec *controller.ErrorController, mount func(r chi.Router)) *chi.Mux {
	r := chi.NewRouter()

	// === Global Middleware ===
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(controller.Bind(ec))
	r.Use(Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut,
			http.MethodPatch, http.MethodPost, http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-Id"},
	}))

	r.Use(JSONBody(config.JSONBodyLimit))

	if mount != nil {
		mount(r)
	}

	r.NotFound(controller.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return apperror.NotFound("Can't find " + r.URL.Path + " on this server")
	}))
	r.MethodNotAllowed(controller.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return apperror.New(http.StatusMethodNotAllowed, "Method "+r.Method+" not allowed")
	}))

	return r
}

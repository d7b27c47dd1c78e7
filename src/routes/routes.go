package routes

import (
	"apitemplate/src/controller"
	"apitemplate/src/handler"
	"apitemplate/src/repository"

	"github.com/go-chi/chi/v5"
)

type Dependencies struct {
	// nil when the database is disabled
	Exceptions *repository.ExceptionRepository
	AppName    string
	// /exceptions exposes raw messages and stacks, so it only exists in
	// development.
	Environment controller.Environment
}

// Mount registers every route of the API. Routers created with the
// scaffolding CLI are wired in here.
func Mount(deps Dependencies) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/healthcheck", handler.Healthcheck)

		if deps.Exceptions != nil && deps.Environment == controller.Development {
			r.Route("/exceptions", func(r chi.Router) {
				r.Get("/", controller.Handle(handler.SearchExceptionsHandler(deps.Exceptions)))
				r.Post("/", controller.Handle(handler.ReportExceptionHandler(deps.Exceptions, deps.AppName)))
			})
		}
	}
}

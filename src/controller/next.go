package controller

import (
	"context"
	"net/http"

	logger "github.com/sirupsen/logrus"
)

type contextKey string

const errorControllerKey contextKey = "error_controller"

// Handler is an http.HandlerFunc that may fail. A returned error is passed
// to the error controller bound to the request.
type Handler func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to net/http.
func Handle(fn Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			Next(w, r, err)
		}
	}
}

// Bind returns middleware that makes ec reachable from Next.
func Bind(ec *ErrorController) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), errorControllerKey, ec)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the controller installed by Bind.
func FromContext(ctx context.Context) (*ErrorController, bool) {
	ec, ok := ctx.Value(errorControllerKey).(*ErrorController)
	return ec, ok && ec != nil
}

// Next hands err to the bound error controller and ends the request.
func Next(w http.ResponseWriter, r *http.Request, err error) {
	ec, ok := FromContext(r.Context())
	if !ok {
		logger.WithError(err).Error("no error controller bound to request")
		http.Error(w, GenericErrorMessage, http.StatusInternalServerError)
		return
	}
	ec.ServeError(w, r, err)
}

package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"apitemplate/src/apperror"
	"apitemplate/src/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	logger "github.com/sirupsen/logrus"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Stack      string `json:"stack,omitempty"`
}

var errNilError = errors.New("nil error reached the error controller")

type responder func(c apperror.Classified) ErrorResponse

// ErrorController is the terminal error handler of the pipeline. The
// development or production responder is picked once, in NewErrorController.
type ErrorController struct {
	env      Environment
	service  string
	messages ErrorMessages
	recorder ExceptionRecorder
	respond  responder
}

// NewErrorController builds the controller for config. recorder may be nil.
func NewErrorController(config Config, recorder ExceptionRecorder) *ErrorController {
	ec := &ErrorController{
		env:      config.Env(),
		service:  config.AppName,
		messages: DefaultErrorMessages.With(config.ErrorMessages),
		recorder: recorder,
	}

	if ec.env == Production {
		ec.respond = ec.productionResponse
	} else {
		ec.respond = ec.developmentResponse
	}

	logger.WithField("environment", ec.env).Info("Error controller ready")

	return ec
}

func (ec *ErrorController) Environment() Environment { return ec.env }

// ServeError writes the single response for err. Nothing else may be written
// to w afterwards. When w is a chi WrapResponseWriter that already has a
// status, the error is only logged and captured.
func (ec *ErrorController) ServeError(w http.ResponseWriter, r *http.Request, err error) {
	c := apperror.Classify(err)
	if c.Stack == "" {
		c.Stack = string(debug.Stack())
	}

	if c.Kind == apperror.KindOpaque {
		ec.capture(r, c)
	} else {
		logger.WithFields(logger.Fields{
			"request_id":  middleware.GetReqID(r.Context()),
			"status_code": c.App.StatusCode,
		}).WithError(err).Debug("Application error")
	}

	if ww, ok := w.(middleware.WrapResponseWriter); ok && ww.Status() != 0 {
		logger.WithFields(logger.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"status":     ww.Status(),
		}).WithError(err).Warn("Response already started, error body not written")
		return
	}

	resp := ec.respond(c)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.StatusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.WithError(err).Error("failed to encode error response")
	}
}

func (ec *ErrorController) developmentResponse(c apperror.Classified) ErrorResponse {
	resp := ec.baseResponse(c)
	resp.Stack = c.Stack
	return resp
}

func (ec *ErrorController) productionResponse(c apperror.Classified) ErrorResponse {
	return ec.baseResponse(c)
}

func (ec *ErrorController) baseResponse(c apperror.Classified) ErrorResponse {
	switch c.Kind {
	case apperror.KindApplication:
		return ErrorResponse{
			Status:     c.App.Status,
			StatusCode: c.App.StatusCode,
			Message:    c.App.Message,
		}
	case apperror.KindOpaque:
		return ec.opaqueResponse(c)
	}
	return ec.opaqueResponse(c)
}

func (ec *ErrorController) opaqueResponse(c apperror.Classified) ErrorResponse {
	return ErrorResponse{
		Status:     apperror.StatusFail,
		StatusCode: http.StatusInternalServerError,
		Message:    ec.messages.Resolve(c.Message()),
	}
}

func (ec *ErrorController) capture(r *http.Request, c apperror.Classified) {
	method := r.Method + " " + r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			method = r.Method + " " + pattern
		}
	}

	err := c.Err
	if err == nil {
		err = errNilError
	}

	Capture(r.Context(), ec.recorder, &model.Exception{
		Service:   ec.service,
		Module:    "http",
		Method:    method,
		RequestID: middleware.GetReqID(r.Context()),
		Stack:     c.Stack,
		Level:     logger.ErrorLevel.String(),
	}, err, map[string]interface{}{
		"path":  r.URL.Path,
		"query": r.URL.RawQuery,
	})
}

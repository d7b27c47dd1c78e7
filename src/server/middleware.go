package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"apitemplate/src/apperror"
	"apitemplate/src/controller"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
)

type contextKey string

const jsonBodyKey contextKey = "json_body"

// RequestID reuses an incoming X-Request-Id or generates a UUID. The id is
// stored where chi's middleware.GetReqID finds it and echoed back.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(middleware.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(middleware.RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger logs one line per request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logger.WithFields(logger.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
		}).Info("request")
	})
}

// Recoverer turns a panic into an error for the error controller.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				controller.Next(w, r, apperror.Recovered(rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// JSONBody reads application/json bodies up to limit bytes. An empty body
// becomes {}. Malformed bodies and top-level values other than objects or
// arrays are passed on as plain errors, so clients get the generic 500.
// Other content types pass through untouched.
func JSONBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isJSON(r) {
				next.ServeHTTP(w, r)
				return
			}

			var body []byte
			if r.Body != nil && r.Body != http.NoBody {
				read, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
				if err != nil {
					var maxErr *http.MaxBytesError
					if errors.As(err, &maxErr) {
						controller.Next(w, r, apperror.Wrap(http.StatusRequestEntityTooLarge, "request entity too large", err))
						return
					}
					controller.Next(w, r, apperror.Wrap(http.StatusBadRequest, "unable to read request body", err))
					return
				}
				body = read
			}

			trimmed := bytes.TrimSpace(body)
			if len(trimmed) == 0 {
				body = []byte("{}")
			} else if err := checkJSON(trimmed); err != nil {
				controller.Next(w, r, err)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			ctx := context.WithValue(r.Context(), jsonBodyKey, json.RawMessage(body))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

var errNotObjectOrArray = errors.New("JSON body must be an object or an array")

func checkJSON(body []byte) error {
	if body[0] != '{' && body[0] != '[' {
		return fmt.Errorf("invalid JSON body: %w", errNotObjectOrArray)
	}
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}

// JSONBodyFromContext returns the body parsed by JSONBody.
func JSONBodyFromContext(ctx context.Context) (json.RawMessage, bool) {
	body, ok := ctx.Value(jsonBodyKey).(json.RawMessage)
	return body, ok
}

// DecodeJSON decodes the parsed request body into v. Unknown fields and a
// missing body are 400 application errors.
func DecodeJSON(r *http.Request, v interface{}) error {
	body, ok := JSONBodyFromContext(r.Context())
	if !ok {
		return apperror.BadRequest("expected a JSON body")
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return apperror.Wrap(http.StatusBadRequest, "Invalid payload", err)
	}
	return nil
}

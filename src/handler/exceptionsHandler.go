package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"apitemplate/src/apperror"
	"apitemplate/src/controller"
	"apitemplate/src/model"
	"apitemplate/src/repository"
	"apitemplate/src/server"

	"github.com/go-chi/chi/v5/middleware"
	logger "github.com/sirupsen/logrus"
)

const maxPageSize = 100

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
}

type exceptionSearcher interface {
	Search(ctx context.Context, options repository.ExceptionSearchOptions) ([]model.Exception, error)
}

// SearchExceptionsHandler lists captured exceptions, newest first.
// Supports pagination (page, pageSize) and a level filter.
func SearchExceptionsHandler(repo exceptionSearcher) controller.Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		var level *string
		if levelParam := r.URL.Query().Get("level"); levelParam != "" {
			levelParam = strings.ToLower(levelParam)
			if !validLevels[levelParam] {
				return apperror.BadRequest("invalid level")
			}
			level = &levelParam
		}

		page := 1
		if pageParam := r.URL.Query().Get("page"); pageParam != "" {
			parsedPage, err := strconv.Atoi(pageParam)
			if err != nil || parsedPage <= 0 {
				return apperror.BadRequest("invalid page")
			}
			page = parsedPage
		}

		pageSize := 20
		if sizeParam := r.URL.Query().Get("pageSize"); sizeParam != "" {
			parsedSize, err := strconv.Atoi(sizeParam)
			if err != nil || parsedSize <= 0 || parsedSize > maxPageSize {
				return apperror.BadRequest("invalid pageSize")
			}
			pageSize = parsedSize
		}

		exceptions, err := repo.Search(r.Context(), repository.ExceptionSearchOptions{
			Level:  level,
			Limit:  pageSize,
			Offset: (page - 1) * pageSize,
		})
		if err != nil {
			return err
		}

		return writeJSON(w, http.StatusOK, exceptions)
	}
}

// ReportExceptionPayload is sent by clients that want an error of their
// own recorded next to the server-side ones.
type ReportExceptionPayload struct {
	Module  string                 `json:"module"`
	Method  string                 `json:"method"`
	Message string                 `json:"message"`
	Level   string                 `json:"level"`
	Context map[string]interface{} `json:"context"`
}

// ReportExceptionHandler records a client-side exception.
func ReportExceptionHandler(repo controller.ExceptionRecorder, service string) controller.Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		var payload ReportExceptionPayload
		if err := server.DecodeJSON(r, &payload); err != nil {
			return err
		}

		payload.Message = strings.TrimSpace(payload.Message)
		if payload.Message == "" {
			return apperror.BadRequest("message is required")
		}

		level := strings.ToLower(strings.TrimSpace(payload.Level))
		if level == "" {
			level = "error"
		}
		if !validLevels[level] {
			return apperror.BadRequest("invalid level")
		}

		module := strings.TrimSpace(payload.Module)
		if module == "" {
			module = "client"
		}

		exc := &model.Exception{
			Service:   service,
			Module:    module,
			Method:    strings.TrimSpace(payload.Method),
			RequestID: middleware.GetReqID(r.Context()),
			Message:   payload.Message,
			Level:     level,
			CreatedAt: time.Now(),
		}
		if payload.Context != nil {
			if b, err := json.Marshal(payload.Context); err == nil {
				exc.Context = string(b)
			}
		}

		if err := repo.Create(r.Context(), exc); err != nil {
			return err
		}

		return writeJSON(w, http.StatusCreated, exc)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are gone, nothing left to tell the client
		logger.WithError(err).Error("failed to encode response")
	}
	return nil
}

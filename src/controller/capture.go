package controller

import (
	"context"
	"encoding/json"
	"time"

	"apitemplate/src/model"

	logger "github.com/sirupsen/logrus"
)

// ExceptionRecorder persists captured exceptions.
type ExceptionRecorder interface {
	Create(ctx context.Context, exc *model.Exception) error
}

// Capture logs exc locally and, when repo is set, persists it. The context
// of the caller is detached so a cancelled request still gets recorded.
func Capture(
	ctx context.Context,
	repo ExceptionRecorder,
	exc *model.Exception,
	err error,
	contextData map[string]interface{},
) {

	if err == nil || exc == nil {
		return
	}

	if contextData != nil {
		if b, e := json.Marshal(contextData); e == nil {
			exc.Context = string(b)
		}
	}
	if exc.Message == "" {
		exc.Message = err.Error()
	}
	if exc.CreatedAt.IsZero() {
		exc.CreatedAt = time.Now()
	}

	logger.WithFields(map[string]interface{}{
		"service":         exc.Service,
		"module":          exc.Module,
		"method":          exc.Method,
		"exception_level": exc.Level,
		"request_id":      exc.RequestID,
	}).WithError(err).Error("Unexpected error captured")

	if repo != nil {
		if e := repo.Create(context.WithoutCancel(ctx), exc); e != nil {
			logger.WithError(e).Error("Failed to persist exception")
		}
	}
}

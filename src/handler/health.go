package handler

import (
	"net/http"

	logger "github.com/sirupsen/logrus"
)

func Healthcheck(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("OK")); err != nil {
		logger.WithError(err).Error("/healthcheck write error")
	}
}

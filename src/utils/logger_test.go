package utils

import (
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLogger(t *testing.T) {
	defer ConfigureLogger(LogConfig{LogLevel: "info", LogFormat: "text"})

	ConfigureLogger(LogConfig{LogLevel: "WARN", LogFormat: "json"})
	assert.Equal(t, logger.WarnLevel, logger.GetLevel())
	_, isJSON := logger.StandardLogger().Formatter.(*logger.JSONFormatter)
	assert.True(t, isJSON)

	ConfigureLogger(LogConfig{LogLevel: "loud", LogFormat: "text"})
	assert.Equal(t, logger.DebugLevel, logger.GetLevel())
	_, isText := logger.StandardLogger().Formatter.(*logger.TextFormatter)
	assert.True(t, isText)
}

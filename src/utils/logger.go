package utils

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	logger "github.com/sirupsen/logrus"
)

type LogConfig struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"debug"` // debug | info | warn | error
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"` // json | text
}

func GetLogConfig() LogConfig {
	var config LogConfig
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}

// SetupLogger configures the global logrus logger from LOG_LEVEL and
// LOG_FORMAT. Unknown levels fall back to debug.
func SetupLogger() {
	ConfigureLogger(GetLogConfig())
}

func ConfigureLogger(config LogConfig) {
	level, err := logger.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		level = logger.DebugLevel
	}
	logger.SetLevel(level)

	if strings.EqualFold(config.LogFormat, "json") {
		logger.SetFormatter(&logger.JSONFormatter{})
		return
	}
	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
}

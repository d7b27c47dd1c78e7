package controller

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// ParseEnvironment maps "prod" and "production" to Production. Anything else
// is Development.
func ParseEnvironment(value string) Environment {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "prod", "production":
		return Production
	default:
		return Development
	}
}

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	AppName     string `envconfig:"APP_NAME" default:"apitemplate"`
	// Extra error text translations, e.g. "record not found:Resource not found"
	ErrorMessages map[string]string `envconfig:"ERROR_MESSAGES"`
}

func (c Config) Env() Environment {
	return ParseEnvironment(c.Environment)
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}

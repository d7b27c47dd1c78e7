package server

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port string `envconfig:"SERVER_PORT" default:"9898"`
	// express.json() default limit
	JSONBodyLimit int64 `envconfig:"JSON_BODY_LIMIT" default:"102400"`
}

func GetConfig() *Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return &config
}

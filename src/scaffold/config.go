package scaffold

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Project root the generated paths are relative to. Empty means the
	// current working directory.
	Root string `envconfig:"SCAFFOLD_ROOT" default:""`
}

func GetConfig() *Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return &config
}

// Package config reads program settings from the environment, after loading
// a .env file from the working directory when one exists.
package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config holds everything the converter takes from the environment.
type Config struct {
	// Author is printed in the header of every generated diagram.
	Author      string `env:"FSMDOT_AUTHOR" envDefault:"Peter Nussey"`
	ProgramName string `env:"FSMDOT_PROGRAM_NAME" envDefault:"makeDotFile"`
	// Renderer is the Graphviz executable named in the embedded render command.
	Renderer  string `env:"FSMDOT_RENDERER" envDefault:"dot"`
	LogLevel  string `env:"LOGGING_LEVEL" envDefault:"INFO"`
	LogFormat string `env:"LOGGING_FORMAT" envDefault:"CONSOLE"`
}

var dotenvLoaded sync.Once

// Load returns the configuration from the environment.
func Load() (Config, error) {
	dotenvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

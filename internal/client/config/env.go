package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/learnhub/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultDotEnvFile = ".env"

// loadDotEnv reads a dotenv file into the process environment. An explicit
// -e/-env path must exist; the implicit ./.env is optional.
func loadDotEnv(args []string) error {
	path := flagx.EnvFileFlags(args)
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load dotenv %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays cfg with environment variables. Unset variables leave
// the current values in place.
func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Load reads .env (if any) into the process environment, then fills Config
// from a YAML file and environment variables. ENV wins over YAML, YAML over
// env-default tags. The YAML path comes from CONFIG_PATH (fallback
// "./config.yaml"); a missing default file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that env-default tags cannot express.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Think.MaxPerUser <= 0 {
		errs = append(errs, errors.New("think.max_per_user must be positive"))
	}
	if c.Think.DefaultPageSize <= 0 {
		errs = append(errs, errors.New("think.default_page_size must be positive"))
	}
	if c.Think.MaxPageSize < c.Think.DefaultPageSize {
		errs = append(errs, errors.New("think.max_page_size must be >= default_page_size"))
	}
	if c.Database.ConnectRetries <= 0 {
		errs = append(errs, errors.New("database.connect_retries must be positive"))
	}
	if c.Dictionary.DefinitionLimit <= 0 {
		errs = append(errs, errors.New("dictionary.definition_limit must be positive"))
	}
	return errors.Join(errs...)
}

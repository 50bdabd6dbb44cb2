package models

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	commonErrors "github.com/equinor/radix-common/utils/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config instance variables
type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"false"`

	ZosmfURL      string        `envconfig:"ZOSMF_URL" required:"true"`
	ZosmfUsername string        `envconfig:"ZOSMF_USERNAME"`
	ZosmfPassword string        `envconfig:"ZOSMF_PASSWORD"`
	ZosmfToken    string        `envconfig:"ZOSMF_TOKEN"`
	ZosmfTimeout  time.Duration `envconfig:"ZOSMF_TIMEOUT" default:"30s"`
	ZosmfInsecure bool          `envconfig:"ZOSMF_INSECURE" default:"false"`

	SubmitClass        string `envconfig:"SUBMIT_CLASS"`
	SubmitRecordFormat string `envconfig:"SUBMIT_RECFM"`
	SubmitRecordLength int    `envconfig:"SUBMIT_LRECL"`
	SubmitMode         string `envconfig:"SUBMIT_MODE"`
}

// NewConfigFromEnv Constructor, reads an optional .env file before the environment
func NewConfigFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file loaded")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	var errs []error
	if u, err := url.ParseRequestURI(cfg.ZosmfURL); err != nil || u.Host == "" {
		errs = append(errs, fmt.Errorf("ZOSMF_URL %q must be an absolute URL", cfg.ZosmfURL))
	}
	if (cfg.ZosmfUsername == "") != (cfg.ZosmfPassword == "") {
		errs = append(errs, errors.New("ZOSMF_USERNAME and ZOSMF_PASSWORD must be set together"))
	}
	if cfg.ZosmfToken != "" && cfg.ZosmfUsername != "" {
		errs = append(errs, errors.New("ZOSMF_TOKEN can not be combined with ZOSMF_USERNAME"))
	}
	if cfg.ZosmfTimeout < 0 {
		errs = append(errs, errors.New("ZOSMF_TIMEOUT can not be negative"))
	}
	if cfg.SubmitRecordLength < 0 {
		errs = append(errs, errors.New("SUBMIT_LRECL can not be negative"))
	}
	if len(errs) > 0 {
		return commonErrors.Concat(errs)
	}
	return nil
}

// SubmitOptions returns the configured internal reader settings. Unset values are left empty.
func (cfg *Config) SubmitOptions() SubmitOptions {
	return SubmitOptions{
		Class:        cfg.SubmitClass,
		RecordFormat: cfg.SubmitRecordFormat,
		RecordLength: cfg.SubmitRecordLength,
		Mode:         cfg.SubmitMode,
	}
}

// Package config loads console configuration from a YAML file and
// ADMINCTL_* environment variables, with env taking precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/sdtaxation/adminctl/internal/errors"
)

const (
	envConfigPath = "ADMINCTL_CONFIG"
	appDirName    = ".adminctl"
)

// Config holds every tunable of the console.
type Config struct {
	// APIBaseURL is the root of the platform REST API.
	APIBaseURL string `yaml:"api_base_url" env:"ADMINCTL_API_URL" env-default:"https://api.sdtaxation.com"`

	// PincodeBaseURL is the root of the postal PIN-code lookup API.
	PincodeBaseURL string `yaml:"pincode_base_url" env:"ADMINCTL_PINCODE_URL" env-default:"https://api.postalpincode.in"`

	// StorageDir is where credentials are persisted. Empty means ~/.adminctl.
	StorageDir string `yaml:"storage_dir" env:"ADMINCTL_STORAGE_DIR"`

	// HTTPTimeout bounds every platform API call.
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"ADMINCTL_HTTP_TIMEOUT" env-default:"30s"`

	// ExpiryCheckInterval is how often an authenticated session re-checks
	// the token's expiry locally.
	ExpiryCheckInterval time.Duration `yaml:"expiry_check_interval" env:"ADMINCTL_EXPIRY_CHECK_INTERVAL" env-default:"30s"`

	// ExpiryCountdown is the grace period shown between detecting an
	// expired session and forcing the user back to login.
	ExpiryCountdown time.Duration `yaml:"expiry_countdown" env:"ADMINCTL_EXPIRY_COUNTDOWN" env-default:"2s"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"ADMINCTL_LOG_LEVEL" env-default:"info"`

	// LogFormat is one of text, json.
	LogFormat string `yaml:"log_format" env:"ADMINCTL_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from the given path (or the default location
// when path is empty) and then applies environment overrides. A missing
// config file is not an error; defaults plus environment apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = resolveConfigPath()
	}
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, errors.NewConfigLoadError(path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.NewConfigLoadError(path, err)
	}

	if cfg.StorageDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "cannot resolve home directory for credential storage", err)
		}
		cfg.StorageDir = filepath.Join(home, appDirName)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveConfigPath() string {
	if p := os.Getenv(envConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDirName, "config.yaml")
}

func validate(cfg *Config) error {
	if cfg.APIBaseURL == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "api_base_url must not be empty")
	}
	for name, d := range map[string]time.Duration{
		"http_timeout":          cfg.HTTPTimeout,
		"expiry_check_interval": cfg.ExpiryCheckInterval,
		"expiry_countdown":      cfg.ExpiryCountdown,
	} {
		if d <= 0 {
			return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("%s must be positive", name))
		}
	}
	return nil
}

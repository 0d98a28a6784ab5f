package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/tobiasmeyr/staybook/pkg/errors"
	"github.com/tobiasmeyr/staybook/pkg/hotelapi"
)

// configFileName is the default per-user configuration file, resolved
// relative to os.UserConfigDir (e.g. ~/.config/staybook/config.toml).
const configFileName = "staybook/config.toml"

// fileConfig mirrors the TOML configuration file. All fields are optional;
// environment variables and command-line flags take precedence over file
// values.
type fileConfig struct {
	BaseURL      string `toml:"base_url"`
	Username     string `toml:"username"`
	Password     string `toml:"password"`
	TimeoutMS    int     `toml:"timeout_ms"`
	MaxRetries   *int    `toml:"max_retries"`
	RetryDelayMS int     `toml:"retry_delay_ms"`
	RateLimit    float64 `toml:"rate_limit"`
}

// clientOpts holds the connection flags shared by all commands that talk to
// the remote API. Empty values mean "not set on the command line" and defer
// to the environment, the config file, and finally the package defaults.
type clientOpts struct {
	configPath string
	baseURL    string
	username   string
	password   string
	maxRetries int
	timeout    time.Duration
	rateLimit  float64

	retriesFlagSet func() bool
}

// defaultConfigPath returns the default config file location, or "" when the
// user config directory cannot be determined.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configFileName)
}

// loadFileConfig reads the TOML config file at path. A missing file is not an
// error; a file that exists but cannot be parsed is.
func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, errors.Wrap(errors.KindInvalidConfig, err, "reading config file %s", path)
	}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, errors.Wrap(errors.KindInvalidConfig, err, "parsing config file %s", path)
	}
	return fc, nil
}

// resolveConfig merges configuration sources into a hotelapi.Config.
// Precedence from highest to lowest: command-line flags, environment
// variables (including a .env file in the working directory), the TOML
// config file, package defaults.
func (o *clientOpts) resolveConfig() (hotelapi.Config, error) {
	// Best effort; a missing .env file is the common case.
	_ = godotenv.Load()

	fc, err := loadFileConfig(o.configPath)
	if err != nil {
		return hotelapi.Config{}, err
	}

	cfg, err := hotelapi.FromEnv()
	if err != nil {
		return hotelapi.Config{}, err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = fc.BaseURL
	}
	if cfg.Credentials.Empty() {
		cfg.Credentials = hotelapi.Credentials{Username: fc.Username, Password: fc.Password}
	}
	if cfg.Timeout == 0 && fc.TimeoutMS > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutMS) * time.Millisecond
	}
	if os.Getenv(hotelapi.EnvMaxRetries) == "" && fc.MaxRetries != nil {
		cfg.SetMaxRetries(*fc.MaxRetries)
	}
	if fc.RetryDelayMS > 0 {
		cfg.RetryDelay = time.Duration(fc.RetryDelayMS) * time.Millisecond
	}
	if fc.RateLimit > 0 {
		cfg.Limiter = rate.NewLimiter(rate.Limit(fc.RateLimit), 1)
	}

	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if o.username != "" || o.password != "" {
		cfg.Credentials = hotelapi.Credentials{Username: o.username, Password: o.password}
	}
	if o.timeout > 0 {
		cfg.Timeout = o.timeout
	}
	if o.retriesFlagSet != nil && o.retriesFlagSet() {
		cfg.SetMaxRetries(o.maxRetries)
	}
	if o.rateLimit > 0 {
		cfg.Limiter = rate.NewLimiter(rate.Limit(o.rateLimit), 1)
	}
	return cfg, nil
}

// newExecutor builds the request executor from the resolved configuration.
func (o *clientOpts) newExecutor() (*hotelapi.Executor, error) {
	cfg, err := o.resolveConfig()
	if err != nil {
		return nil, err
	}
	return hotelapi.New(cfg)
}

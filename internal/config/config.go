// Package config loads settings for the tushare command-line tool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/DrewBradfordXYZ/tushare-go/client"
)

// DefaultFile is read when no config path is given and it exists.
const DefaultFile = "tushare.toml"

// Config represents the CLI configuration.
//
// Timeout is a duration string such as "30s". RequestsPerMinute of 0
// disables throttling; Throttle picks a sliding window ("window") or a
// token bucket ("bucket").
type Config struct {
	Token             string        `toml:"token" validate:"required"`
	BaseURL           string        `toml:"base_url" validate:"required,url"`
	Timeout           string        `toml:"timeout"`
	RequestsPerMinute int           `toml:"requests_per_minute" validate:"gte=0"`
	Throttle          string        `toml:"throttle" validate:"oneof=window bucket"`
	Logging           LoggingConfig `toml:"logging"`
	Output            OutputConfig  `toml:"output"`
}

// LoggingConfig selects the log level. With File set, logs go to that file
// instead of the console, which keeps piped output clean.
type LoggingConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"`
}

type OutputConfig struct {
	Format   string `toml:"format" validate:"oneof=table csv json parquet"`
	PageSize int    `toml:"page_size" validate:"gte=0"`
}

// NewDefaultConfig returns the configuration used before any file or
// environment is applied.
func NewDefaultConfig() *Config {
	return &Config{
		BaseURL:  client.DefaultEndpoint,
		Timeout:  client.DefaultTimeout.String(),
		Throttle: "window",
		Logging:  LoggingConfig{Level: "warn"},
		Output:   OutputConfig{Format: "table", PageSize: client.DefaultPageSize},
	}
}

// Load builds the configuration with priority: defaults -> file -> .env -> env.
// An empty path reads DefaultFile when it exists. An explicit path that
// cannot be read is an error.
func Load(path string) (*Config, error) {
	config := NewDefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// .env does not override variables that are already set
	_ = godotenv.Load(".env")

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) error {
	if token := os.Getenv("TUSHARE_TOKEN"); token != "" {
		config.Token = token
	}
	if baseURL := os.Getenv("TUSHARE_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}
	if timeout := os.Getenv("TUSHARE_TIMEOUT"); timeout != "" {
		config.Timeout = timeout
	}
	if level := os.Getenv("TUSHARE_LOG_LEVEL"); level != "" {
		config.Logging.Level = strings.ToLower(level)
	}
	if logFile := os.Getenv("TUSHARE_LOG_FILE"); logFile != "" {
		config.Logging.File = logFile
	}
	if throttle := os.Getenv("TUSHARE_THROTTLE"); throttle != "" {
		config.Throttle = strings.ToLower(throttle)
	}
	if rpm := os.Getenv("TUSHARE_RPM"); rpm != "" {
		n, err := strconv.Atoi(rpm)
		if err != nil {
			return fmt.Errorf("invalid TUSHARE_RPM %q: %w", rpm, err)
		}
		config.RequestsPerMinute = n
	}
	return nil
}

var validate = validator.New()

// Validate checks the configuration needed to run queries.
func (c *Config) Validate() error {
	return c.validate()
}

// ValidateOffline checks everything except the token, for commands that do
// not contact the service.
func (c *Config) ValidateOffline() error {
	return c.validate("Token")
}

func (c *Config) validate(except ...string) error {
	var err error
	if len(except) > 0 {
		err = validate.StructExcept(c, except...)
	} else {
		err = validate.Struct(c)
	}
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid config: %s", describe(verrs))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return fmt.Errorf("invalid config: timeout: %w", err)
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// TimeoutDuration parses Timeout. An empty value gives the client default.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return client.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", c.Timeout)
	}
	return d, nil
}

// ClientOptions translates the configuration into client options.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{
		client.WithBaseURL(c.BaseURL),
		client.WithDebug(c.Logging.Level == "debug"),
	}
	if c.Throttle == "bucket" && c.RequestsPerMinute > 0 {
		opts = append(opts, client.WithRateLimit(client.PerMinute(c.RequestsPerMinute), 1))
	} else {
		opts = append(opts, client.WithRequestsPerMinute(c.RequestsPerMinute))
	}
	if d, err := c.TimeoutDuration(); err == nil {
		opts = append(opts, client.WithTimeout(d))
	}
	return opts
}

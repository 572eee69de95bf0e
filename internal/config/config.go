package config

import (
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/spf13/pflag"
)

// Config holds all configuration for stats-gate
type Config struct {
	// Evaluation configuration
	StatsFile  string `env:"STATS_FILE"`
	Conditions string `env:"STATS_EVAL"`
	Verbose    bool   `env:"VERBOSE" envDefault:"false"`
	Lenient    bool   `env:"LENIENT_PARSE" envDefault:"false"`

	// Help is only set from the command line
	Help bool

	// Redis configuration, publication is disabled when RedisAddr is empty
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:""`
	RedisPassword  string        `env:"REDIS_PASS" envDefault:""`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	ResultStream   string        `env:"RESULT_STREAM" envDefault:"stats-gate.verdicts"`
	PublishTimeout time.Duration `env:"PUBLISH_TIMEOUT" envDefault:"5s"`

	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from environment variables and command line arguments.
// When --help is given the configuration is returned without validation.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.parseFlags(args); err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	if cfg.Help {
		return cfg, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// parseFlags overrides fields with command line flags
func (c *Config) parseFlags(args []string) error {
	fs := pflag.NewFlagSet("stats-gate", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&c.StatsFile, "if", c.StatsFile, "input statistics file")
	fs.StringVar(&c.Conditions, "eval", c.Conditions, "semicolon-delimited list of conditions")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "enable verbose output")
	fs.BoolVar(&c.Lenient, "lenient", c.Lenient, "ignore trailing text after a valid condition")
	fs.BoolVar(&c.Help, "help", false, "print the help message")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.StatsFile == "" || c.Conditions == "" {
		return fmt.Errorf("args 'if' and 'eval' must be specified")
	}

	if c.RedisDB < 0 {
		return fmt.Errorf("REDIS_DB must be non-negative")
	}

	if c.ResultStream == "" {
		return fmt.Errorf("RESULT_STREAM is required")
	}

	if c.PublishTimeout <= 0 {
		return fmt.Errorf("PUBLISH_TIMEOUT must be positive")
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be one of: console, json")
	}

	return nil
}

// PublishEnabled reports whether verdicts are published to Redis
func (c *Config) PublishEnabled() bool {
	return c.RedisAddr != ""
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// String returns a string representation of the config (without sensitive data)
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{StatsFile=%s, Conditions=%s, Verbose=%v, Lenient=%v, RedisAddr=%s, RedisDB=%d, "+
			"ResultStream=%s, PublishTimeout=%s, LogLevel=%s, LogFormat=%s}",
		c.StatsFile,
		c.Conditions,
		c.Verbose,
		c.Lenient,
		c.RedisAddr,
		c.RedisDB,
		c.ResultStream,
		c.PublishTimeout,
		c.LogLevel,
		c.LogFormat,
	)
}

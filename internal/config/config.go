package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Endpoints EndpointsConfig
	HTTP      HTTPConfig
	Log       LogConfig
	Timezone  TimezoneConfig
}

// EndpointsConfig holds the base URLs of the upstream APIs
type EndpointsConfig struct {
	IP      string // IP echo service
	Geo     string // geolocation by IP, the IP is appended to the path
	Flyover string // ISS pass prediction, lat/lon are added as query parameters
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	Timeout time.Duration // 0 disables the timeout
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// TimezoneConfig holds timezone selection for the pass listing
type TimezoneConfig struct {
	Requested    string // positional argument, may be empty or invalid
	Default      string // explicit fallback; guessed when empty
	FromLocation bool   // allow guessing from the resolved coordinates
}

// Load reads configuration from defaults, config file, environment variables
// and command-line arguments, in increasing order of precedence.
// args excludes the program name.
func Load(args []string) (*Config, error) {
	v := viper.New()

	fs := pflag.NewFlagSet("spotter", pflag.ContinueOnError)
	configFile := fs.String("config", "", "path to a config file")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.String("log-format", "", "log format (text, json)")
	fs.Duration("timeout", 0, "per-request HTTP timeout, 0 for none")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: spotter [flags] [timezone]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	// Set config file name and paths
	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.iss-spotter")
	}

	// Set defaults
	v.SetDefault("endpoints.ip", "https://api.ipify.org?format=json")
	v.SetDefault("endpoints.geo", "https://freegeoip.app/json/")
	v.SetDefault("endpoints.flyover", "http://api.open-notify.org/iss-pass.json")
	v.SetDefault("http.timeout", "0s")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("timezone.default", "")
	v.SetDefault("timezone.fromLocation", true)

	// Read from environment variables
	v.SetEnvPrefix("ISS_SPOTTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Flags only override when explicitly set
	bindings := map[string]string{
		"log.level":    "log-level",
		"log.format":   "log-format",
		"http.timeout": "timeout",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults,
		// unless one was asked for explicitly
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if *configFile != "" || !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if fs.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one timezone argument, got %d", fs.NArg())
	}
	cfg.Timezone.Requested = fs.Arg(0)

	return &cfg, nil
}

// NewLogger creates a new slog.Logger based on the configuration.
// Logs go to stderr so stdout carries only the pass listing.
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stderr)
}

// NewLoggerTo creates a configured slog.Logger writing to w
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/screen-generator/internal/app"
	"github.com/atomicstack/screen-generator/internal/store"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSettingsPath = "SCREEN_GENERATOR_SETTINGS"
	envStoreKind    = "SCREEN_GENERATOR_STORE"
	envSaveInterval = "SCREEN_GENERATOR_SAVE_INTERVAL"
	envWidth        = "SCREEN_GENERATOR_WIDTH"
	envHeight       = "SCREEN_GENERATOR_HEIGHT"
	envShowFooter   = "SCREEN_GENERATOR_FOOTER"
	envTrace        = "SCREEN_GENERATOR_TRACE"
	envLogFile      = "SCREEN_GENERATOR_LOG_FILE"
)

// DefaultSettingsPath is used when neither -settings nor the environment name a file.
const DefaultSettingsPath = "screenGeneratorConfiguration.json"

const defaultSaveInterval = 250 * time.Millisecond

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("screen-generator", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	settingsPath := fs.String("settings", envOrDefault(env, envSettingsPath, DefaultSettingsPath), "path to the settings file or database")
	storeKind := fs.String("store", envOrDefault(env, envStoreKind, string(store.KindAuto)), "settings store: auto, json, toml, yaml or sqlite")
	saveInterval := fs.Duration("save-interval", envOrDuration(env, envSaveInterval, defaultSaveInterval), "minimum spacing between background writes")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *saveInterval < 0 {
		return Config{}, fmt.Errorf("save-interval must be >= 0 (got %s)", *saveInterval)
	}
	kind, err := store.ParseKind(*storeKind)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			SettingsPath: *settingsPath,
			StoreKind:    kind,
			SaveInterval: *saveInterval,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"settings":     *settingsPath,
			"store":        string(kind),
			"saveInterval": saveInterval.String(),
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.SettingsPath) == "" && cfg.App.StoreKind != store.KindMemory {
		return errors.New("settings path is required")
	}
	return nil
}

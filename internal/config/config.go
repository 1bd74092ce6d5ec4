package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything commentbox reads from its config file.
type Config struct {
	APIURL         string
	RequestTimeout time.Duration // zero means no client-side timeout
	RateLimit      int           // analyze calls per minute; zero disables
	ValidateURLs   bool
	ShareCommand   string
	LogFile        string // "-" disables logging
	LogLevel       string
}

// EnvAPIURL overrides api_url when set.
const EnvAPIURL = "COMMENTBOX_API_URL"

const (
	defaultConfigPath = "~/.config/commentbox/config.toml"
	defaultAPIURL     = "http://127.0.0.1:8000"
	defaultLogFile    = "~/.local/state/commentbox/commentbox.log"
	defaultLogLevel   = "info"

	// LogDisabled as log_file turns file logging off.
	LogDisabled = "-"
)

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:   defaultAPIURL,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
// The COMMENTBOX_API_URL environment variable wins over the file.
func Load(path string) (Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}
	if env := strings.TrimSpace(os.Getenv(EnvAPIURL)); env != "" {
		cfg.APIURL = env
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		RequestTimeout string `toml:"request_timeout"`
		RateLimit      int    `toml:"rate_limit"`
		ValidateURLs   bool   `toml:"validate_urls"`
		ShareCommand   string `toml:"share_command"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}

	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("parse config: request_timeout must not be negative")
		}
		cfg.RequestTimeout = d
	}

	if raw.RateLimit < 0 {
		return Config{}, fmt.Errorf("parse config: rate_limit must not be negative")
	}
	cfg.RateLimit = raw.RateLimit
	cfg.ValidateURLs = raw.ValidateURLs
	cfg.ShareCommand = strings.TrimSpace(raw.ShareCommand)

	switch v := strings.TrimSpace(raw.LogFile); v {
	case "":
	case LogDisabled:
		cfg.LogFile = LogDisabled
	default:
		cfg.LogFile = mustExpand(v)
	}

	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// LoggingEnabled reports whether a log file is configured.
func (c Config) LoggingEnabled() bool {
	return strings.TrimSpace(c.LogFile) != "" && c.LogFile != LogDisabled
}

// LogPath returns the log file path, defaulting when unset.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return mustExpand(defaultLogFile)
	}
	return c.LogFile
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

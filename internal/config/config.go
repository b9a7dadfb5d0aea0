package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings metsearch reads from config.toml.
type Config struct {
	APIBase        string        `validate:"required,http_url"`
	FallbackImage  string        `validate:"required"`
	LogFile        string        `validate:"required"`
	RequestTimeout time.Duration // zero means no timeout
}

var validate = validator.New()

const (
	defaultConfigPath    = "~/.config/metsearch/config.toml"
	defaultAPIBase       = "https://collectionapi.metmuseum.org/public/collection/v1"
	defaultFallbackImage = "./notAvailable1.jpg"
	defaultLogFile       = "~/.local/state/metsearch/metsearch.log"
)

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBase:       defaultAPIBase,
		FallbackImage: defaultFallbackImage,
		LogFile:       mustExpand(defaultLogFile),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, errors.Wrap(err, "open config")
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	var raw struct {
		APIBase        string `toml:"api_base"`
		FallbackImage  string `toml:"fallback_image"`
		LogFile        string `toml:"log_file"`
		RequestTimeout string `toml:"request_timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = v
	}
	// Stored verbatim into object records, so no path expansion.
	if v := strings.TrimSpace(raw.FallbackImage); v != "" {
		cfg.FallbackImage = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse request_timeout")
		}
		if timeout < 0 {
			return Config{}, errors.Newf("request_timeout must not be negative: %s", v)
		}
		cfg.RequestTimeout = timeout
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "resolve home dir")
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

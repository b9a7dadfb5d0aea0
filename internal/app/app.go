package app

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/five82/metsearch/internal/collection"
	"github.com/five82/metsearch/internal/config"
	"github.com/five82/metsearch/internal/met"
	"github.com/five82/metsearch/internal/prefs"
	"github.com/five82/metsearch/internal/state"
	"github.com/five82/metsearch/internal/ui"
)

// Options configure the metsearch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/metsearch/prefs.toml
	LogFile    string // overrides log_file from config
	Query      string // submitted on start when non-empty
	Debug      bool   // log request starts as well as outcomes
}

// Run boots the metsearch TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logPath := cfg.LogFile
	if strings.TrimSpace(opts.LogFile) != "" {
		if logPath, err = config.ExpandPath(opts.LogFile); err != nil {
			return errors.Wrap(err, "resolve log file")
		}
	}
	logger, closeLog, err := openDiagnostics(logPath, opts.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("metsearch starting",
		"api_base", cfg.APIBase,
		"fallback_image", cfg.FallbackImage,
		"request_timeout", cfg.RequestTimeout.String(),
	)

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load prefs failed; using defaults", "error", err)
	}

	client, err := met.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		return errors.Wrap(err, "init collection client")
	}

	ctrl := collection.New(client, &state.Store{},
		collection.WithLogger(logger),
		collection.WithFallbackImage(cfg.FallbackImage),
	)

	uiOpts := ui.Options{
		Context:      ctx,
		Controller:   ctrl,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    opts.PrefsPath,
		Logger:       logger,
		InitialQuery: opts.Query,
	}
	if err := ui.Run(uiOpts); err != nil {
		logger.Error("ui exited with error", "error", err)
		return errors.Wrap(err, "run ui")
	}
	logger.Info("metsearch exiting")
	return nil
}

// ResolveLogPath returns the diagnostics log location: override when set,
// otherwise log_file from the config at configPath.
func ResolveLogPath(configPath, override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		return config.ExpandPath(override)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", errors.Wrap(err, "load config")
	}
	return cfg.LogFile, nil
}

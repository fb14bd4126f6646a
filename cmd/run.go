package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/svenska/internal/app"
	"github.com/abhisek/svenska/internal/config"
	"github.com/abhisek/svenska/internal/content"
	"github.com/abhisek/svenska/internal/llm"
	"github.com/abhisek/svenska/internal/logging"
	"github.com/abhisek/svenska/internal/selfupdate"
	"github.com/abhisek/svenska/internal/session"
	"github.com/abhisek/svenska/internal/store"
)

// env is the shared setup behind every command that touches user data.
type env struct {
	cfg      *config.Config
	cfgPath  string
	store    *store.Store
	log      *zap.Logger
	closeLog func() error
}

// loadConfig reads the config named by --config, or the default location.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		if path, err = config.DefaultPath(); err != nil {
			return nil, "", err
		}
	}
	return cfg, path, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path (SVENSKA_DB or db.path), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

// setup loads configuration, starts the logger and opens the store. When tui
// is set, logs go to a file instead of the terminal.
func setup(cmd *cobra.Command, tui bool) (*env, error) {
	cfg, cfgPath, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logCfg, err := cfg.LoggingConfig(tui)
	if err != nil {
		return nil, fmt.Errorf("resolve log file: %w", err)
	}
	log, closeLog, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", zap.String("path", dbPath))

	return &env{cfg: cfg, cfgPath: cfgPath, store: st, log: log, closeLog: closeLog}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", zap.Error(err))
	}
	_ = e.log.Sync()
	_ = e.closeLog()
}

// controller returns a loaded session controller.
func (e *env) controller(ctx context.Context) (*session.Controller, error) {
	ctl := session.NewController(e.store.StateRepo(),
		session.WithLogger(e.log.Named("session")),
		session.WithEventRepo(e.store.EventRepo()),
	)
	if err := ctl.Load(ctx); err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return ctl, nil
}

// contentService builds the content service. A provider that cannot be
// configured leaves the service unconfigured rather than failing.
func (e *env) contentService(ctx context.Context) *content.Service {
	var provider llm.Provider
	p, err := llm.NewProvider(ctx, e.cfg.LLMConfig(), e.store.EventRepo(), e.log.Named("llm"))
	if err != nil {
		e.log.Warn("LLM provider not configured", zap.Error(err))
	} else {
		provider = p
	}

	cc := content.DefaultConfig()
	cc.Words = e.cfg.Content.Words
	return content.NewService(provider, e.store.StateRepo(),
		content.WithLogger(e.log.Named("content")),
		content.WithConfig(cc),
	)
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	ctl, err := e.controller(ctx)
	if err != nil {
		return err
	}

	e.log.Info("starting", zap.String("version", version))
	return app.Run(app.Options{
		Controller: ctl,
		Content:    e.contentService(ctx),
		Config:     e.cfg.Content,
		ConfigPath: e.cfgPath,
		Version:    version,
		Updater:    selfupdate.NewChecker(),
		Log:        e.log.Named("app"),
	})
}

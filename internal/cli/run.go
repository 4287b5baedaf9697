package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/starterkit/internal/config"
	"github.com/jask/starterkit/internal/database"
	"github.com/jask/starterkit/internal/platform"
	"github.com/jask/starterkit/internal/prefs"
	"github.com/jask/starterkit/internal/service"
	"github.com/jask/starterkit/internal/store"
	"github.com/jask/starterkit/internal/tui"
)

func runShell(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if appTitle != "" {
		cfg.UI.AppTitle = appTitle
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closeLog()

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	layout, err := platform.NewMediaQueryWatcher(cfg.UI.WideQuery)
	if err != nil {
		return fmt.Errorf("ui.wide_query: %w", err)
	}

	start := startPath
	if start == "" {
		last, err := prefs.LoadLastPath()
		if err != nil {
			logger.Warn("load last path", "err", err)
		}
		start = last
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	st := store.New(store.Logging(logger, store.Reduce), store.Initial())
	shell := tui.New(tui.Options{
		Context:  ctx,
		Store:    st,
		AppTitle: cfg.UI.AppTitle,
		Router:   platform.NewRouter(start),
		Offline: platform.NewOfflineWatcher(
			platform.DialProbe(cfg.Network.ProbeAddr, cfg.Network.ProbeTimeout),
			cfg.Network.ProbeInterval,
		),
		Layout:   layout,
		Document: &platform.Document{},
		Shop:     &service.ShopService{DB: db},
		Navigate: store.NavigateOptions{
			DefaultPage:      cfg.Routing.DefaultPage,
			NotFoundFallback: cfg.Routing.NotFoundFallback,
		},
		SnackbarDuration: cfg.Snackbar.Duration,
		MaxWidth:         cfg.UI.MaxWidth,
		RememberPath:     prefs.SaveLastPath,
		Logger:           logger,
	})
	defer shell.Close()

	logger.Info("starting", "path", start, "db", cfg.Database.Path)
	if _, err := tea.NewProgram(shell, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// openDatabase creates the database directory, migrates, opens and seeds.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return db, nil
}

// newLogger writes to cfg.File. Without a file, logs are discarded: the
// terminal belongs to the UI.
func newLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("log.level %q: %w", cfg.Level, err)
		}
	}
	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"agentcrm/internal/bootstrap/config"
	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/errs"
	"agentcrm/internal/infrastructure/gemini"
	"agentcrm/internal/seed"
	"agentcrm/internal/store"
)

// App is the application root: it owns the store and the external clients.
// All state lives in memory for the process lifetime.
type App struct {
	Config config.Config
	Store  *store.Store
	Gemini *gemini.Client
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.app"))

	client, err := gemini.New(logCtx, cfg.Gemini)
	if err != nil {
		return nil, errs.Wrap(err, "create gemini client")
	}

	app := &App{
		Config: cfg,
		Store:  store.New(),
		Gemini: client,
	}

	if cfg.Seed.Demo {
		if err := app.SeedDemo(logCtx); err != nil {
			return nil, errs.Wrap(err, "seed demo data")
		}
	}

	logging.Info(logCtx, "application bootstrap completed",
		slog.Bool("gemini_available", client.Available()),
		slog.Bool("demo_seeded", cfg.Seed.Demo),
	)
	return app, nil
}

// SeedDemo loads the embedded demo dataset into the store.
func (a *App) SeedDemo(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	ds, err := seed.Load()
	if err != nil {
		return errs.Wrap(err, "load demo dataset")
	}
	return seed.Apply(ctx, a.Store, ds)
}

// WatchConfig installs the config hot-reload hook for long-running
// commands. Only the Gemini model name is applied live; everything else
// needs a restart.
func (a *App) WatchConfig(ctx context.Context, configFile string) {
	config.Watch(ctx, configFile, func(cfg config.Config) {
		a.Gemini.SetModel(cfg.Gemini.Model)
		logging.Info(logging.WithAttrs(ctx, slog.String("component", "bootstrap.app")),
			"config reloaded",
			slog.String("gemini_model", cfg.Gemini.Model),
		)
	})
}

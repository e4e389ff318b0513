package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"agentcrm/internal/bootstrap/config"
	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/infrastructure/gemini"
	"agentcrm/internal/infrastructure/mail"
	"agentcrm/internal/ports"
	"agentcrm/internal/store"
	"agentcrm/internal/transport/httpapi"
	"agentcrm/internal/usecase/sdr"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideApp),
	fx.Provide(func(app *App) *store.Store { return app.Store }),
	fx.Provide(
		fx.Annotate(
			func(app *App) *gemini.Client { return app.Gemini },
			fx.As(new(ports.LeadGenerator)),
			fx.As(new(ports.ChatAgent)),
		),
	),
	fx.Provide(
		fx.Annotate(
			mail.NewStub,
			fx.As(new(ports.MailTransport)),
		),
	),
	fx.Provide(sdr.NewService),
	fx.Provide(httpapi.NewServer),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideApp(ctx context.Context, cfg config.Config) (*App, error) {
	return New(logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx")), cfg)
}

package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"agentcrm/internal/bootstrap"
	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/errs"
	"agentcrm/internal/transport/httpapi"
	"agentcrm/internal/usecase/sdr"
)

// withApp boots the fx graph, hands the populated components to run, and
// tears the graph down afterwards.
func withApp(run func(cmd *cobra.Command, app *bootstrap.App, sdrSvc *sdr.Service, server *httpapi.Server) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithAttrs(
			cmd.Context(),
			slog.String("command", cmd.CommandPath()),
			slog.String("config_file", cfgFile),
		)

		var app *bootstrap.App
		var sdrSvc *sdr.Service
		var server *httpapi.Server
		fxApp := fx.New(
			bootstrap.Module,
			fx.Provide(func() context.Context { return ctx }),
			fx.Provide(
				fx.Annotate(
					func() string { return cfgFile },
					fx.ResultTags(`name:"configFile"`),
				),
			),
			fx.Populate(&app, &sdrSvc, &server),
		)

		startCtx, cancelStart := context.WithTimeout(ctx, 10*time.Second)
		defer cancelStart()
		if err := fxApp.Start(startCtx); err != nil {
			logging.Error(ctx, "bootstrap application failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "start fx application")
		}

		defer func() {
			stopCtx, cancelStop := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancelStop()
			if err := fxApp.Stop(stopCtx); err != nil {
				logging.Error(ctx, "fx application stop failed", slog.Any("err", errs.Loggable(err)))
			}
		}()

		if err := run(cmd, app, sdrSvc, server); err != nil {
			return errs.Wrap(err, "run command")
		}
		return nil
	}
}

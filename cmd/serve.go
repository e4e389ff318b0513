package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"agentcrm/internal/bootstrap"
	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/errs"
	"agentcrm/internal/transport/httpapi"
	"agentcrm/internal/usecase/sdr"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the CRM HTTP API",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ *sdr.Service, server *httpapi.Server) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		app.WatchConfig(ctx, cfgFile)

		if err := server.ListenAndServe(ctx, app.Config.HTTP.Addr); err != nil {
			return errs.Wrap(err, "serve http api")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

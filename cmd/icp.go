package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"agentcrm/internal/bootstrap"
	"agentcrm/internal/domain/crm"
	"agentcrm/internal/errs"
	"agentcrm/internal/transport/httpapi"
	"agentcrm/internal/usecase/sdr"
)

var icpCmd = &cobra.Command{
	Use:   "icp",
	Short: "Manage ICP targeting profiles",
}

var icpListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ICP profiles",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ *sdr.Service, _ *httpapi.Server) error {
		for _, p := range app.Store.Snapshot().ICPProfiles {
			lastRun := "never"
			if p.LastRun != nil {
				lastRun = p.LastRun.Format("2006-01-02 15:04")
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t[%s]\tlast-run=%s\n",
				p.ID, p.Name, p.Geography, strings.Join(p.Categories, ","), lastRun); err != nil {
				return errs.Wrap(err, "write profile row")
			}
		}
		return nil
	}),
}

var icpAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an ICP profile",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *sdr.Service, _ *httpapi.Server) error {
		name, _ := cmd.Flags().GetString("name")
		geography, _ := cmd.Flags().GetString("geography")
		categories, _ := cmd.Flags().GetStringSlice("categories")
		pkg, _ := cmd.Flags().GetString("package")

		profile, err := svc.CreateProfile(cmd.Context(), sdr.CreateProfileInput{
			Name:          name,
			Geography:     geography,
			Categories:    categories,
			TargetPackage: crm.PackageTier(pkg),
		})
		if err != nil {
			return errs.Wrap(err, "create icp profile")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "created profile %s (%s)\n", profile.ID, profile.Name); err != nil {
			return errs.Wrap(err, "write profile output")
		}
		return nil
	}),
}

var icpRunCmd = &cobra.Command{
	Use:   "run <profile-id>",
	Short: "Run lead generation for an ICP profile",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *sdr.Service, _ *httpapi.Server) error {
		result, err := svc.RunProfile(cmd.Context(), cmd.Flags().Arg(0))
		if err != nil {
			return errs.Wrap(err, "run icp profile")
		}

		switch result.Status {
		case sdr.RunOK:
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "batch %s created with %d leads\n", result.BatchID, result.LeadCount)
		case sdr.RunDisabled:
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "lead generation is disabled, no API key configured")
		default:
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "no leads found, no batch created")
		}
		if err != nil {
			return errs.Wrap(err, "write run output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(icpCmd)
	icpCmd.AddCommand(icpListCmd)
	icpCmd.AddCommand(icpAddCmd)
	icpCmd.AddCommand(icpRunCmd)

	icpAddCmd.Flags().String("name", "", "Profile name")
	icpAddCmd.Flags().String("geography", "", "Target geography")
	icpAddCmd.Flags().StringSlice("categories", nil, "Business categories")
	icpAddCmd.Flags().String("package", "", "Target package tier (BASIC, STANDARD, PREMIUM, ANY)")
	_ = icpAddCmd.MarkFlagRequired("name")
	_ = icpAddCmd.MarkFlagRequired("categories")
}

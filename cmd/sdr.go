package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"agentcrm/internal/bootstrap"
	"agentcrm/internal/domain/crm"
	"agentcrm/internal/errs"
	"agentcrm/internal/transport/httpapi"
	"agentcrm/internal/usecase/sdr"
)

var sdrCmd = &cobra.Command{
	Use:   "sdr",
	Short: "Review and promote generated leads",
}

var sdrBatchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "List generation batches",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *sdr.Service, _ *httpapi.Server) error {
		batches, err := svc.ListBatches(cmd.Context())
		if err != nil {
			return errs.Wrap(err, "list batches")
		}
		for _, b := range batches {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\tcandidates=%d approved=%d rejected=%d\n",
				b.ID, b.Name, b.Status, b.TotalCandidates, b.Stats.Approved, b.Stats.Rejected); err != nil {
				return errs.Wrap(err, "write batch row")
			}
		}
		return nil
	}),
}

var sdrLeadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List leads in the review queue",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *sdr.Service, _ *httpapi.Server) error {
		batchID, _ := cmd.Flags().GetString("batch")
		sortKey, _ := cmd.Flags().GetString("sort")
		desc, _ := cmd.Flags().GetBool("desc")

		leads, err := svc.ListLeads(cmd.Context(), sdr.ListLeadsInput{
			BatchID:    batchID,
			SortKey:    crm.LeadSortKey(sortKey),
			Descending: desc,
		})
		if err != nil {
			return errs.Wrap(err, "list leads")
		}
		for _, l := range leads {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\ttier=%s score=%d status=%s\n",
				l.ID, l.CompanyName, l.Tier, l.MatchScore, l.Status); err != nil {
				return errs.Wrap(err, "write lead row")
			}
		}
		return nil
	}),
}

var sdrApproveCmd = &cobra.Command{
	Use:   "approve <lead-id>",
	Short: "Promote a candidate lead into a customer",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *sdr.Service, _ *httpapi.Server) error {
		customer, promoted, err := svc.Approve(cmd.Context(), cmd.Flags().Arg(0))
		if err != nil {
			return errs.Wrap(err, "approve lead")
		}

		if !promoted {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "lead not promoted, not a pending candidate")
		} else {
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "promoted to customer %s (%s)\n", customer.ID, customer.CompanyName)
		}
		if err != nil {
			return errs.Wrap(err, "write approve output")
		}
		return nil
	}),
}

var sdrRejectCmd = &cobra.Command{
	Use:   "reject <lead-id>",
	Short: "Reject a candidate lead",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *sdr.Service, _ *httpapi.Server) error {
		rejected, err := svc.Reject(cmd.Context(), cmd.Flags().Arg(0))
		if err != nil {
			return errs.Wrap(err, "reject lead")
		}

		msg := "lead rejected"
		if !rejected {
			msg = "lead not rejected, not a pending candidate"
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), msg); err != nil {
			return errs.Wrap(err, "write reject output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(sdrCmd)
	sdrCmd.AddCommand(sdrBatchesCmd)
	sdrCmd.AddCommand(sdrLeadsCmd)
	sdrCmd.AddCommand(sdrApproveCmd)
	sdrCmd.AddCommand(sdrRejectCmd)

	sdrLeadsCmd.Flags().String("batch", crm.AllBatches, "Batch id filter, or all")
	sdrLeadsCmd.Flags().String("sort", string(crm.SortByMatchScore), "Sort key (companyName, rating, reviews, matchScore, tier, status)")
	sdrLeadsCmd.Flags().Bool("desc", true, "Sort descending")
}

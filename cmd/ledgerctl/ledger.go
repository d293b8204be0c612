package main

import (
	"school-erp/internal/dashboard"
	"school-erp/internal/ledger"

	"github.com/spf13/cobra"
)

func ledgerCmd(a *app) *cobra.Command {
	var (
		direction string
		remote    bool
	)

	cmd := &cobra.Command{
		Use:   "ledger <selection-key>",
		Short: "Show one account's incoming and outgoing transfers with totals",
		Long: `Show the transfers touching an account, tagged in or out, newest first,
followed by incoming, outgoing and net totals. By default the view is derived
locally from the full transfer list; --remote asks the server to build it.`,
		Example: `  ledgerctl ledger aid:ACC-FEES --direction out
  ledgerctl ledger "name:Petty Cash" --remote`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := ledger.ParseFilter(direction)
			if err != nil {
				return err
			}

			if remote {
				resp, err := a.client().AccountLedger(cmd.Context(), args[0], filter)
				if err != nil {
					return err
				}
				return dashboard.RenderLedger(cmd.OutOrStdout(), resp.View)
			}

			page, err := a.page(cmd.Context())
			if err != nil {
				return err
			}
			if err := page.OpenLedger(args[0], filter); err != nil {
				return err
			}

			view := page.State().(dashboard.ViewingLedger).View
			return dashboard.RenderLedger(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", string(ledger.FilterAll), "all, in or out")
	cmd.Flags().BoolVar(&remote, "remote", false, "build the view on the server")

	return cmd
}

package main

import (
	"fmt"

	"school-erp/internal/dashboard"
	"school-erp/internal/ledger"

	"github.com/spf13/cobra"
)

func transfersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transfers",
		Aliases: []string{"transfer"},
		Short:   "List, show and create fund transfers",
	}

	cmd.AddCommand(transfersListCmd(a))
	cmd.AddCommand(transfersShowCmd(a))
	cmd.AddCommand(transfersCreateCmd(a))

	return cmd
}

func transfersListCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transfers newest first",
		Long: `List transfers newest first. --query keeps transfers whose number,
source, destination or reference contains the text, ignoring case.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := a.page(cmd.Context())
			if err != nil {
				return err
			}
			page.SetQuery(query)
			return dashboard.RenderTransfers(cmd.OutOrStdout(), page.Transfers())
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search text")
	return cmd
}

func transfersShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transfer-id>",
		Short: "Show one transfer by number or id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transfer, err := a.client().GetTransfer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return dashboard.RenderTransfer(cmd.OutOrStdout(), *transfer)
		},
	}
}

func transfersCreateCmd(a *app) *cobra.Command {
	var (
		from, to string
		draft    ledger.TransferDraft
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a transfer between two accounts",
		Long: `Record a transfer. --from and --to take selection keys as printed by
"ledgerctl accounts options": aid:<identifier>, oid:<database id> or name:<account name>.`,
		Example: `  ledgerctl transfers create --from aid:ACC-FEES --to aid:ACC-OPS --amount 1500 --reference "Term 2 float"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := a.page(cmd.Context())
			if err != nil {
				return err
			}

			page.StartTransfer()
			if err := page.SelectFrom(from); err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			if err := page.SelectTo(to); err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			if err := page.EditTransfer(func(d *ledger.TransferDraft) {
				d.Amount = draft.Amount
				d.Reference = draft.Reference
				d.TransferDate = draft.TransferDate
				d.ApprovedBy = draft.ApprovedBy
				d.Notes = draft.Notes
			}); err != nil {
				return err
			}

			transfer, err := page.SubmitTransfer(cmd.Context())
			if err != nil {
				return err
			}
			return dashboard.RenderTransfer(cmd.OutOrStdout(), *transfer)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&from, "from", "", "source account selection key")
	flags.StringVar(&to, "to", "", "destination account selection key")
	flags.StringVar(&draft.Amount, "amount", "", "amount greater than 0")
	flags.StringVar(&draft.Reference, "reference", "", "reference")
	flags.StringVar(&draft.TransferDate, "date", "", "transfer date YYYY-MM-DD, default today")
	flags.StringVar(&draft.ApprovedBy, "approved-by", "", "approver name")
	flags.StringVar(&draft.Notes, "notes", "", "free-text notes")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

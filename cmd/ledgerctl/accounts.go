package main

import (
	"fmt"
	"text/tabwriter"

	"school-erp/internal/dashboard"
	"school-erp/internal/ledger"
	"school-erp/internal/models"

	"github.com/spf13/cobra"
)

func accountsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List and add accounts",
	}

	cmd.AddCommand(accountsListCmd(a))
	cmd.AddCommand(accountsOptionsCmd(a))
	cmd.AddCommand(accountsAddCmd(a))

	return cmd
}

func accountsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every account, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := a.client().ListAccounts(cmd.Context())
			if err != nil {
				return err
			}
			return dashboard.RenderAccounts(cmd.OutOrStdout(), accounts)
		},
	}
}

func accountsOptionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Show the selection keys accepted by --from, --to and ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			options, err := a.client().ListAccountOptions(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "%s\t%s\n", dashboard.HeaderStyle.Render("KEY"), dashboard.HeaderStyle.Render("ACCOUNT"))
			for _, o := range options {
				fmt.Fprintf(tw, "%s\t%s\n", o.Key, o.Label)
			}
			return tw.Flush()
		},
	}
}

func accountsAddCmd(a *app) *cobra.Command {
	var draft ledger.AccountDraft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Example: `  ledgerctl accounts add --name "Fee Collection" --bank "First Bank" --number 0012345 --balance 2500
  ledgerctl accounts add --id ACC-OPS --name Operations --bank "First Bank" --number 0099`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := dashboard.NewPage(a.client(), a.logger)
			page.StartAccount()
			if err := page.EditAccount(func(d *ledger.AccountDraft) { *d = draft }); err != nil {
				return err
			}

			account, err := page.SubmitAccount(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), dashboard.TitleStyle.Render("Account created"))
			return dashboard.RenderAccounts(cmd.OutOrStdout(), []models.Account{*account})
		},
	}

	cmd.Flags().StringVar(&draft.AccountID, "id", "", "stable account identifier")
	cmd.Flags().StringVar(&draft.Name, "name", "", "account name (required)")
	cmd.Flags().StringVar(&draft.Bank, "bank", "", "bank name (required)")
	cmd.Flags().StringVar(&draft.AccountNumber, "number", "", "bank account number (required)")
	cmd.Flags().StringVar(&draft.Balance, "balance", "", "opening balance, empty means 0")

	return cmd
}

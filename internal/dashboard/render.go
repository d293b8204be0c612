package dashboard

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"school-erp/internal/ledger"
	"school-erp/internal/models"

	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "2006-01-02"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")).
			MarginBottom(1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	InStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ECDC4"))

	OutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)

// RenderAccounts writes the account list as a table
func RenderAccounts(w io.Writer, accounts []models.Account) error {
	if len(accounts) == 0 {
		_, err := fmt.Fprintln(w, SubtleStyle.Render("No accounts yet."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeHeader(tw, "KEY", "NAME", "BANK", "ACCOUNT NO", "BALANCE")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			ledger.SelectionKey(a), a.DisplayName(), a.Bank, a.AccountNumber, a.Balance.StringFixed(2))
	}
	return tw.Flush()
}

// RenderTransfers writes the transfer list as a table
func RenderTransfers(w io.Writer, transfers []models.Transfer) error {
	if len(transfers) == 0 {
		_, err := fmt.Fprintln(w, SubtleStyle.Render("No transfers found."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeHeader(tw, "TRANSFER", "DATE", "FROM", "TO", "AMOUNT", "STATUS", "REFERENCE")
	for _, t := range transfers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.TransferID, t.Date.Format(dateLayout), sideLabel(t.FromAccountID, t.FromAccount),
			sideLabel(t.ToAccountID, t.ToAccount), t.Amount.StringFixed(2), t.Status, t.Reference)
	}
	return tw.Flush()
}

// RenderTransfer writes the detail box of one transfer
func RenderTransfer(w io.Writer, t models.Transfer) error {
	lines := []string{
		TitleStyle.Render(t.TransferID),
		fmt.Sprintf("From:        %s", sideLabel(t.FromAccountID, t.FromAccount)),
		fmt.Sprintf("To:          %s", sideLabel(t.ToAccountID, t.ToAccount)),
		fmt.Sprintf("Amount:      %s", t.Amount.StringFixed(2)),
		fmt.Sprintf("Date:        %s", t.Date.Format(dateLayout)),
		fmt.Sprintf("Status:      %s", t.Status),
		fmt.Sprintf("Reference:   %s", t.Reference),
		fmt.Sprintf("Approved by: %s", t.ApprovedBy),
	}
	if t.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes:       %s", t.Notes))
	}
	if t.RejectReason != nil {
		lines = append(lines, ErrorStyle.Render("Rejected: "+*t.RejectReason))
	}

	_, err := fmt.Fprintln(w, BoxStyle.Render(strings.Join(lines, "\n")))
	return err
}

// RenderLedger writes an account's ledger rows followed by the totals
func RenderLedger(w io.Writer, view ledger.View) error {
	title := fmt.Sprintf("%s • %s", view.Account.DisplayName(), view.Direction)
	if _, err := fmt.Fprintln(w, TitleStyle.Render(title)); err != nil {
		return err
	}

	if len(view.Rows) == 0 {
		if _, err := fmt.Fprintln(w, SubtleStyle.Render("No transactions for this account.")); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		writeHeader(tw, "DATE", "TRANSFER", "DIRECTION", "COUNTERPARTY", "AMOUNT", "REFERENCE")
		for _, r := range view.Rows {
			style := InStyle
			if r.Direction == ledger.DirectionOut {
				style = OutStyle
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.Date.Format(dateLayout), r.TransferID, style.Render(string(r.Direction)),
				r.Counterparty, r.Amount.StringFixed(2), r.Reference)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	totals := view.Totals.Display()
	summary := fmt.Sprintf("%s %s   %s %s   Net %s",
		InStyle.Render("In"), totals.Incoming.StringFixed(2),
		OutStyle.Render("Out"), totals.Outgoing.StringFixed(2),
		totals.Net.StringFixed(2))
	_, err := fmt.Fprintln(w, BoxStyle.Render(summary))
	return err
}

func writeHeader(tw *tabwriter.Writer, columns ...string) {
	styled := make([]string, len(columns))
	for i, c := range columns {
		styled[i] = HeaderStyle.Render(c)
	}
	fmt.Fprintln(tw, strings.Join(styled, "\t"))
}

// sideLabel shows a transfer side as "name (id)", falling back to whichever is set
func sideLabel(id, name string) string {
	switch {
	case id != "" && name != "":
		return fmt.Sprintf("%s (%s)", name, id)
	case id != "":
		return id
	case name != "":
		return name
	default:
		return models.UnnamedAccount
	}
}

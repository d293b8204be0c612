package ledger

import "school-erp/internal/models"

// View is one account's direction-tagged transfer history with its totals
type View struct {
	Account   models.Account `json:"account"`
	Direction Filter         `json:"direction"`
	Rows      []Row          `json:"rows"`
	Totals    Totals         `json:"totals"`
}

// BuildView derives the rows for account and totals them
func BuildView(account models.Account, transfers []models.Transfer, filter Filter) View {
	rows := DeriveAccountTransactions(account, transfers, filter)
	return View{
		Account:   account,
		Direction: filter,
		Rows:      rows,
		Totals:    ComputeTotals(rows),
	}
}

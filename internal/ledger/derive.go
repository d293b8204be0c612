package ledger

import (
	"sort"
	"strings"

	"school-erp/internal/models"
)

// Row is a transfer seen from one account: which way the money moved and who
// was on the other side.
type Row struct {
	models.Transfer
	Direction    Direction `json:"direction"`
	Counterparty string    `json:"counterparty"`
}

// DeriveAccountTransactions projects every transfer touching account into a
// Row, keeps those the filter allows, and orders them newest first. Rows with
// equal dates keep their input order.
//
// A side matches by stable identifier when the account has one, and falls
// back to a case-insensitive name match only when the transfer carries no
// identifier on that side. A transfer matching on both sides is tagged out.
func DeriveAccountTransactions(account models.Account, transfers []models.Transfer, filter Filter) []Row {
	rows := make([]Row, 0)

	for _, t := range transfers {
		fromMatch := sideMatches(account, t.FromAccountID, t.FromAccount)
		toMatch := sideMatches(account, t.ToAccountID, t.ToAccount)

		if !fromMatch && !toMatch {
			continue
		}

		row := Row{Transfer: t}
		if fromMatch {
			row.Direction = DirectionOut
			row.Counterparty = t.ToAccount
		} else {
			row.Direction = DirectionIn
			row.Counterparty = t.FromAccount
		}

		if filter.Keeps(row.Direction) {
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})

	return rows
}

// Touches reports whether transfer references account on either side, using
// the same matching rules as DeriveAccountTransactions.
func Touches(account models.Account, t models.Transfer) bool {
	return sideMatches(account, t.FromAccountID, t.FromAccount) ||
		sideMatches(account, t.ToAccountID, t.ToAccount)
}

func sideMatches(account models.Account, sideID, sideName string) bool {
	if id := account.StableID(); id != "" && sideID == id {
		return true
	}
	return sideID == "" && strings.EqualFold(sideName, account.Name)
}

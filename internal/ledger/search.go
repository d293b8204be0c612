package ledger

import (
	"sort"
	"strings"

	"school-erp/internal/models"
)

// SearchTransfers keeps transfers whose transfer number, source name,
// destination name or reference contains query, ignoring case.
func SearchTransfers(transfers []models.Transfer, query string) []models.Transfer {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return transfers
	}

	matched := make([]models.Transfer, 0, len(transfers))
	for _, t := range transfers {
		if containsFold(t.TransferID, q) ||
			containsFold(t.FromAccount, q) ||
			containsFold(t.ToAccount, q) ||
			containsFold(t.Reference, q) {
			matched = append(matched, t)
		}
	}
	return matched
}

func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

// SortNewestFirst orders transfers by date, newest first, keeping input order on ties
func SortNewestFirst(transfers []models.Transfer) {
	sort.SliceStable(transfers, func(i, j int) bool {
		return transfers[i].Date.After(transfers[j].Date)
	})
}

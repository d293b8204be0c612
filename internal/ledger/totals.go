package ledger

import "github.com/shopspring/decimal"

// Totals aggregates a ledger view
type Totals struct {
	Incoming decimal.Decimal `json:"incoming"`
	Outgoing decimal.Decimal `json:"outgoing"`
	Net      decimal.Decimal `json:"net"`
}

// ComputeTotals sums incoming and outgoing amounts at full precision.
// Net is always Incoming minus Outgoing.
func ComputeTotals(rows []Row) Totals {
	incoming := decimal.Zero
	outgoing := decimal.Zero

	for _, r := range rows {
		switch r.Direction {
		case DirectionIn:
			incoming = incoming.Add(r.Amount)
		case DirectionOut:
			outgoing = outgoing.Add(r.Amount)
		}
	}

	return Totals{
		Incoming: incoming,
		Outgoing: outgoing,
		Net:      incoming.Sub(outgoing),
	}
}

// Display returns the totals rounded to two decimal places
func (t Totals) Display() Totals {
	return Totals{
		Incoming: t.Incoming.Round(2),
		Outgoing: t.Outgoing.Round(2),
		Net:      t.Net.Round(2),
	}
}

package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be a valid number")

// ParseAmount parses user-entered money. Empty and non-numeric input is an
// error, never zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	return d, nil
}

// CoerceAmount decodes an amount the backend already accepted. Numbers and
// quoted numbers decode as-is; null, missing or garbage become zero and ok is
// false so the caller can log the anomaly.
func CoerceAmount(raw json.RawMessage) (amount decimal.Decimal, ok bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return decimal.Zero, false
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return decimal.Zero, false
		}
		d, err := ParseAmount(s)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}

	d, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

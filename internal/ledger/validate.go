package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingSource       = errors.New("from account is required")
	ErrMissingDestination  = errors.New("to account is required")
	ErrSameAccount         = errors.New("from and to accounts cannot be the same")
	ErrAmountNotPositive   = errors.New("amount must be a number greater than 0")
	ErrAccountFieldMissing = errors.New("name, bank and account number are required")
	ErrNegativeBalance     = errors.New("balance must be a valid non-negative number")
	ErrInvalidDate         = errors.New("transfer date must be YYYY-MM-DD or RFC 3339")
)

// dateLayouts are tried in order; the first is what a date picker submits
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04",
}

// TransferDraft is the transfer form before submission
type TransferDraft struct {
	From         Endpoint
	To           Endpoint
	Amount       string
	Reference    string
	TransferDate string
	ApprovedBy   string
	Notes        string
}

// Validate checks the draft and returns the parsed amount
func (d TransferDraft) Validate() (decimal.Decimal, error) {
	if !d.From.IsSet() {
		return decimal.Zero, ErrMissingSource
	}
	if !d.To.IsSet() {
		return decimal.Zero, ErrMissingDestination
	}
	if d.From.AccountID != "" && d.From.AccountID == d.To.AccountID {
		return decimal.Zero, ErrSameAccount
	}

	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return decimal.Zero, ErrAmountNotPositive
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrAmountNotPositive
	}

	return amount, nil
}

// Date parses TransferDate. A blank date returns the zero time, which the
// backend replaces with the submission time.
func (d TransferDraft) Date() (time.Time, error) {
	raw := strings.TrimSpace(d.TransferDate)
	if raw == "" {
		return time.Time{}, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// AccountDraft is the add-account form before submission
type AccountDraft struct {
	AccountID     string
	Name          string
	Bank          string
	AccountNumber string
	Balance       string
}

// Validate checks the draft and returns the opening balance. A blank balance
// opens the account at zero.
func (d AccountDraft) Validate() (decimal.Decimal, error) {
	if strings.TrimSpace(d.Name) == "" ||
		strings.TrimSpace(d.Bank) == "" ||
		strings.TrimSpace(d.AccountNumber) == "" {
		return decimal.Zero, ErrAccountFieldMissing
	}

	if strings.TrimSpace(d.Balance) == "" {
		return decimal.Zero, nil
	}

	balance, err := ParseAmount(d.Balance)
	if err != nil || balance.IsNegative() {
		return decimal.Zero, ErrNegativeBalance
	}

	return balance, nil
}

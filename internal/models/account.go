package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UnnamedAccount is shown wherever an account has no display name
const UnnamedAccount = "Unnamed"

var (
	ErrInvalidBalance    = errors.New("balance cannot be negative")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountNameEmpty  = errors.New("account name is required")
)

// Account is a fee-office ledger account (school bank account, petty cash, etc.)
type Account struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"_id"`
	AccountID     *string         `gorm:"type:varchar(64);uniqueIndex" json:"accountId,omitempty"`
	Name          string          `gorm:"type:varchar(150);not null;index:idx_account_name" json:"name"`
	Bank          string          `gorm:"type:varchar(150);not null" json:"bank"`
	AccountNumber string          `gorm:"type:varchar(64);not null" json:"accountNumber"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updatedAt"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	// empty stable identifiers are stored as NULL so the unique index ignores them
	if a.AccountID != nil && strings.TrimSpace(*a.AccountID) == "" {
		a.AccountID = nil
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrAccountNameEmpty
	}

	if strings.TrimSpace(a.Bank) == "" {
		return errors.New("bank is required")
	}

	if strings.TrimSpace(a.AccountNumber) == "" {
		return errors.New("account number is required")
	}

	if a.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	return nil
}

// StableID returns the stable account identifier, or "" when the account has none
func (a *Account) StableID() string {
	if a.AccountID == nil {
		return ""
	}
	return *a.AccountID
}

// ObjectID returns the database id as a string, or "" for an unsaved account
func (a *Account) ObjectID() string {
	if a.ID == uuid.Nil {
		return ""
	}
	return a.ID.String()
}

// DisplayName returns the name, falling back to UnnamedAccount
func (a *Account) DisplayName() string {
	if a.Name == "" {
		return UnnamedAccount
	}
	return a.Name
}

// Debit removes amount from the balance
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("debit amount must be positive")
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Credit adds amount to the balance
func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("credit amount must be positive")
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

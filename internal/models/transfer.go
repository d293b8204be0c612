package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransferStatusPending   = "Pending"
	TransferStatusCompleted = "Completed"
	TransferStatusRejected  = "Rejected"

	transferIDPrefix = "TRF"
)

var (
	ErrInvalidTransferStatus = errors.New("invalid transfer status")
	ErrInvalidTransferAmount = errors.New("amount must be a number greater than 0")
	ErrMissingSource         = errors.New("source account is required")
	ErrMissingDestination    = errors.New("destination account is required")
	ErrSameAccountTransfer   = errors.New("from and to accounts cannot be the same")
)

// Transfer moves funds between two accounts. Each side is addressed by a stable
// account identifier, by a legacy free-text account name, or both.
type Transfer struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"_id"`
	TransferID    string          `gorm:"type:varchar(32);uniqueIndex;not null" json:"transferId"`
	FromAccountID string          `gorm:"type:varchar(64);index:idx_transfer_from_account_id" json:"fromAccountId,omitempty"`
	ToAccountID   string          `gorm:"type:varchar(64);index:idx_transfer_to_account_id" json:"toAccountId,omitempty"`
	FromAccount   string          `gorm:"type:varchar(150)" json:"fromAccount,omitempty"`
	ToAccount     string          `gorm:"type:varchar(150)" json:"toAccount,omitempty"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date          time.Time       `gorm:"not null;index:idx_transfer_date" json:"date"`
	Reference     string          `gorm:"type:varchar(255)" json:"reference"`
	ApprovedBy    string          `gorm:"type:varchar(150)" json:"approvedBy"`
	Notes         string          `gorm:"type:text" json:"notes"`
	Status        string          `gorm:"type:varchar(20);not null;default:'Pending';index:idx_transfer_status" json:"status"`
	RejectReason  *string         `gorm:"type:text" json:"rejectReason,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updatedAt"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
}

// BeforeCreate hook for Transfer
func (t *Transfer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Status == "" {
		t.Status = TransferStatusPending
	}

	now := time.Now()
	if t.Date.IsZero() {
		t.Date = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	if t.TransferID == "" {
		t.TransferID = GenerateTransferID(t.Date, t.ID)
	}

	return t.Validate()
}

// BeforeUpdate hook for Transfer
func (t *Transfer) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transfer fields
func (t *Transfer) Validate() error {
	if t.FromAccountID == "" && strings.TrimSpace(t.FromAccount) == "" {
		return ErrMissingSource
	}

	if t.ToAccountID == "" && strings.TrimSpace(t.ToAccount) == "" {
		return ErrMissingDestination
	}

	// name collisions are not checked: two legacy names may refer to one account
	if t.FromAccountID != "" && t.FromAccountID == t.ToAccountID {
		return ErrSameAccountTransfer
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransferAmount
	}

	if !IsValidTransferStatus(t.Status) {
		return ErrInvalidTransferStatus
	}

	return nil
}

// IsCompleted returns true if the transfer is completed
func (t *Transfer) IsCompleted() bool {
	return t.Status == TransferStatusCompleted
}

// IsRejected returns true if the transfer was rejected
func (t *Transfer) IsRejected() bool {
	return t.Status == TransferStatusRejected
}

// Complete marks the transfer as completed
func (t *Transfer) Complete() {
	t.Status = TransferStatusCompleted
	now := time.Now()
	t.CompletedAt = &now
	t.RejectReason = nil
}

// Reject marks the transfer as rejected with a reason
func (t *Transfer) Reject(reason string) {
	t.Status = TransferStatusRejected
	t.RejectReason = &reason
}

// CanTransitionTo checks if a transfer can transition to a new status
func (t *Transfer) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		TransferStatusPending:   {TransferStatusCompleted, TransferStatusRejected},
		TransferStatusCompleted: {},
		TransferStatusRejected:  {},
	}

	allowedStatuses, exists := validTransitions[t.Status]
	if !exists {
		return false
	}

	return slices.Contains(allowedStatuses, newStatus)
}

// TableName returns the table name for Transfer
func (t *Transfer) TableName() string {
	return "transfers"
}

// IsValidTransferStatus checks if the transfer status is valid
func IsValidTransferStatus(status string) bool {
	switch status {
	case TransferStatusPending, TransferStatusCompleted, TransferStatusRejected:
		return true
	default:
		return false
	}
}

// GenerateTransferID builds the human-facing transfer number, e.g. TRF-20240103-1A2B3C
func GenerateTransferID(date time.Time, id uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:6]
	return fmt.Sprintf("%s-%s-%s", transferIDPrefix, date.UTC().Format("20060102"), suffix)
}

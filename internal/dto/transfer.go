package dto

import (
	"school-erp/internal/ledger"
	"school-erp/internal/models"
)

// TransferRequest represents the request payload for creating a fund transfer.
// Each side is addressed by a stable account id, a legacy account name, or both.
type TransferRequest struct {
	FromAccountID string `json:"fromAccountId,omitempty" validate:"max=64"`
	FromAccount   string `json:"fromAccount,omitempty" validate:"max=150"`
	ToAccountID   string `json:"toAccountId,omitempty" validate:"max=64"`
	ToAccount     string `json:"toAccount,omitempty" validate:"max=150"`
	Amount        Amount `json:"amount" validate:"required,decimal_amount"`
	Reference     string `json:"reference" validate:"max=255"`
	TransferDate  string `json:"transferDate,omitempty"`
	ApprovedBy    string `json:"approvedBy" validate:"max=150"`
	Notes         string `json:"notes"`
}

// ToDraft converts the request into a transfer draft
func (r TransferRequest) ToDraft() ledger.TransferDraft {
	return ledger.TransferDraft{
		From:         ledger.Endpoint{AccountID: r.FromAccountID, Name: r.FromAccount},
		To:           ledger.Endpoint{AccountID: r.ToAccountID, Name: r.ToAccount},
		Amount:       r.Amount.String(),
		Reference:    r.Reference,
		TransferDate: r.TransferDate,
		ApprovedBy:   r.ApprovedBy,
		Notes:        r.Notes,
	}
}

// NewTransferRequest builds the payload for a validated draft
func NewTransferRequest(d ledger.TransferDraft) TransferRequest {
	return TransferRequest{
		FromAccountID: d.From.AccountID,
		FromAccount:   d.From.Name,
		ToAccountID:   d.To.AccountID,
		ToAccount:     d.To.Name,
		Amount:        Amount(d.Amount),
		Reference:     d.Reference,
		TransferDate:  d.TransferDate,
		ApprovedBy:    d.ApprovedBy,
		Notes:         d.Notes,
	}
}

// CreateTransferResponse represents the response after creating a transfer
type CreateTransferResponse struct {
	Transfer *models.Transfer `json:"transfer"`
	Message  string           `json:"message"`
}

// TransferListResponse represents the transfer list, newest first
type TransferListResponse struct {
	Transfers []models.Transfer `json:"transfers"`
	Total     int               `json:"total"`
}

// LedgerResponse is an account's ledger view with display-rounded totals
type LedgerResponse struct {
	Key string `json:"key"`
	ledger.View
}

package dto

import (
	"school-erp/internal/ledger"
	"school-erp/internal/models"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a new account.
// Required fields are checked by the ledger draft so the response carries the
// account error codes.
type CreateAccountRequest struct {
	AccountID     string `json:"accountId" validate:"max=64"`
	Name          string `json:"name" validate:"max=150"`
	Bank          string `json:"bank" validate:"max=150"`
	AccountNumber string `json:"accountNumber" validate:"max=64"`
	Balance       Amount `json:"balance"`
}

// ToDraft converts the request into an add-account draft
func (r CreateAccountRequest) ToDraft() ledger.AccountDraft {
	return ledger.AccountDraft{
		AccountID:     r.AccountID,
		Name:          r.Name,
		Bank:          r.Bank,
		AccountNumber: r.AccountNumber,
		Balance:       r.Balance.String(),
	}
}

// NewCreateAccountRequest builds the payload for a validated draft
func NewCreateAccountRequest(d ledger.AccountDraft) CreateAccountRequest {
	return CreateAccountRequest{
		AccountID:     d.AccountID,
		Name:          d.Name,
		Bank:          d.Bank,
		AccountNumber: d.AccountNumber,
		Balance:       Amount(d.Balance),
	}
}

// Account Response DTOs

// CreateAccountResponse represents the response after creating an account
type CreateAccountResponse struct {
	Account *models.Account `json:"account"`
	Message string          `json:"message"`
}

// AccountListResponse represents the account list
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
	Total    int              `json:"total"`
}

// AccountOptionsResponse represents the account picker entries
type AccountOptionsResponse struct {
	Options []ledger.AccountOption `json:"options"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

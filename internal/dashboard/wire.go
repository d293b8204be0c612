package dashboard

import (
	"encoding/json"
	"log/slog"
	"time"

	"school-erp/internal/ledger"
	"school-erp/internal/models"

	"github.com/google/uuid"
)

// wireAccount and wireTransfer decode list responses leniently. Money fields
// may arrive as numbers, strings or null; ids may be missing.
type wireAccount struct {
	ID            string          `json:"_id"`
	AccountID     *string         `json:"accountId"`
	Name          string          `json:"name"`
	Bank          string          `json:"bank"`
	AccountNumber string          `json:"accountNumber"`
	Balance       json.RawMessage `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (w wireAccount) toModel(logger *slog.Logger) models.Account {
	balance, ok := ledger.CoerceAmount(w.Balance)
	if !ok {
		logger.Debug("account balance defaulted to zero", "account", w.Name, "raw", string(w.Balance))
	}

	id, _ := uuid.Parse(w.ID)
	accountID := w.AccountID
	if accountID != nil && *accountID == "" {
		accountID = nil
	}

	return models.Account{
		ID:            id,
		AccountID:     accountID,
		Name:          w.Name,
		Bank:          w.Bank,
		AccountNumber: w.AccountNumber,
		Balance:       balance,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

type wireTransfer struct {
	ID            string          `json:"_id"`
	TransferID    string          `json:"transferId"`
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	FromAccount   string          `json:"fromAccount"`
	ToAccount     string          `json:"toAccount"`
	Amount        json.RawMessage `json:"amount"`
	Date          time.Time       `json:"date"`
	Reference     string          `json:"reference"`
	ApprovedBy    string          `json:"approvedBy"`
	Notes         string          `json:"notes"`
	Status        string          `json:"status"`
	RejectReason  *string         `json:"rejectReason"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	CompletedAt   *time.Time      `json:"completedAt"`
}

func (w wireTransfer) toModel(logger *slog.Logger) models.Transfer {
	amount, ok := ledger.CoerceAmount(w.Amount)
	if !ok {
		logger.Debug("transfer amount defaulted to zero", "transfer_id", w.TransferID, "raw", string(w.Amount))
	}

	id, _ := uuid.Parse(w.ID)

	return models.Transfer{
		ID:            id,
		TransferID:    w.TransferID,
		FromAccountID: w.FromAccountID,
		ToAccountID:   w.ToAccountID,
		FromAccount:   w.FromAccount,
		ToAccount:     w.ToAccount,
		Amount:        amount,
		Date:          w.Date,
		Reference:     w.Reference,
		ApprovedBy:    w.ApprovedBy,
		Notes:         w.Notes,
		Status:        w.Status,
		RejectReason:  w.RejectReason,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
		CompletedAt:   w.CompletedAt,
	}
}

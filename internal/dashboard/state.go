package dashboard

import (
	"school-erp/internal/ledger"
	"school-erp/internal/models"
)

// ViewState is the one dialog the page shows at a time
type ViewState interface {
	viewState()
}

// Idle shows only the transfer list
type Idle struct{}

// ViewingTransfer shows the detail of one transfer
type ViewingTransfer struct {
	Transfer models.Transfer
}

// EditingTransfer is the new-transfer form. Err holds the last rejection.
type EditingTransfer struct {
	Draft ledger.TransferDraft
	Err   error
}

// EditingAccount is the add-account form. Err holds the last rejection.
type EditingAccount struct {
	Draft ledger.AccountDraft
	Err   error
}

// ViewingLedger shows one account's transactions
type ViewingLedger struct {
	Key  string
	View ledger.View
}

func (Idle) viewState()            {}
func (ViewingTransfer) viewState() {}
func (EditingTransfer) viewState() {}
func (EditingAccount) viewState()  {}
func (ViewingLedger) viewState()   {}

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"school-erp/internal/ledger"
	"school-erp/internal/models"
)

var (
	ErrWrongDialog      = errors.New("action is not available in the current dialog")
	ErrTransferNotFound = errors.New("transfer is not in the current list")
)

// API is the subset of the ledger API the page needs
type API interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	ListTransfers(ctx context.Context, query string) ([]models.Transfer, error)
	CreateAccount(ctx context.Context, draft ledger.AccountDraft) (*models.Account, error)
	CreateTransfer(ctx context.Context, draft ledger.TransferDraft) (*models.Transfer, error)
}

// Page holds the fund transfer page: the last fetched snapshot, the search
// box and the open dialog. Refreshes replace the whole snapshot; a slow
// response can overwrite a newer one.
type Page struct {
	api    API
	logger *slog.Logger

	mu        sync.RWMutex
	accounts  []models.Account
	transfers []models.Transfer
	query     string
	state     ViewState
}

// NewPage creates an idle page with an empty snapshot
func NewPage(api API, logger *slog.Logger) *Page {
	if logger == nil {
		logger = slog.Default()
	}
	return &Page{api: api, logger: logger, state: Idle{}}
}

// Refresh re-fetches transfers and accounts. On failure the previous
// snapshot is kept.
func (p *Page) Refresh(ctx context.Context) error {
	var (
		wg                    sync.WaitGroup
		transfers             []models.Transfer
		accounts              []models.Account
		transfersErr, acctErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		transfers, transfersErr = p.api.ListTransfers(ctx, "")
	}()
	go func() {
		defer wg.Done()
		accounts, acctErr = p.api.ListAccounts(ctx)
	}()
	wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()

	if transfersErr == nil {
		ledger.SortNewestFirst(transfers)
		p.transfers = transfers
	} else {
		p.logger.WarnContext(ctx, "failed to refresh transfers", "error", transfersErr)
	}
	if acctErr == nil {
		p.accounts = accounts
	} else {
		p.logger.WarnContext(ctx, "failed to refresh accounts", "error", acctErr)
	}

	// an open ledger follows the new snapshot
	if v, ok := p.state.(ViewingLedger); ok {
		if next, err := p.buildLedger(v.Key, v.View.Direction); err == nil {
			p.state = next
		}
	}

	return errors.Join(transfersErr, acctErr)
}

// Accounts returns the account snapshot
func (p *Page) Accounts() []models.Account {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.accounts)
}

// SetQuery sets the transfer search box
func (p *Page) SetQuery(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.query = query
}

// Transfers returns the snapshot filtered by the search box, newest first
func (p *Page) Transfers() []models.Transfer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(ledger.SearchTransfers(p.transfers, p.query))
}

// AccountOptions returns the picker entries for the account snapshot
func (p *Page) AccountOptions() []ledger.AccountOption {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return ledger.ListAccountOptions(p.accounts)
}

// State returns the open dialog
func (p *Page) State() ViewState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Close dismisses any dialog
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Idle{}
}

// OpenTransfer shows the transfer with the given transfer number or id
func (p *Page) OpenTransfer(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, t := range p.transfers {
		if t.TransferID == id || t.ID.String() == id {
			p.state = ViewingTransfer{Transfer: t}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrTransferNotFound, id)
}

// StartTransfer opens an empty transfer form
func (p *Page) StartTransfer() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = EditingTransfer{}
}

// EditTransfer applies edit to the open transfer form
func (p *Page) EditTransfer(edit func(*ledger.TransferDraft)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	form, ok := p.state.(EditingTransfer)
	if !ok {
		return ErrWrongDialog
	}
	edit(&form.Draft)
	form.Err = nil
	p.state = form
	return nil
}

// SelectFrom fills the source side of the open transfer form from a picker key
func (p *Page) SelectFrom(key string) error {
	return p.selectSide(key, func(d *ledger.TransferDraft, e ledger.Endpoint) { d.From = e })
}

// SelectTo fills the destination side of the open transfer form from a picker key
func (p *Page) SelectTo(key string) error {
	return p.selectSide(key, func(d *ledger.TransferDraft, e ledger.Endpoint) { d.To = e })
}

func (p *Page) selectSide(key string, set func(*ledger.TransferDraft, ledger.Endpoint)) error {
	ref, err := ledger.ParseSelectionKey(key)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	form, ok := p.state.(EditingTransfer)
	if !ok {
		return ErrWrongDialog
	}
	set(&form.Draft, ref.Endpoint(p.accounts))
	form.Err = nil
	p.state = form
	return nil
}

// SubmitTransfer sends the open transfer form. A rejected draft keeps the
// form open with the error; success closes it and refreshes the page.
func (p *Page) SubmitTransfer(ctx context.Context) (*models.Transfer, error) {
	p.mu.RLock()
	form, ok := p.state.(EditingTransfer)
	p.mu.RUnlock()
	if !ok {
		return nil, ErrWrongDialog
	}

	transfer, err := p.api.CreateTransfer(ctx, form.Draft)
	if err != nil {
		p.keepFormError(EditingTransfer{Draft: form.Draft, Err: err})
		return nil, err
	}

	p.Close()
	if err := p.Refresh(ctx); err != nil {
		p.logger.WarnContext(ctx, "refresh after transfer failed", "error", err)
	}
	return transfer, nil
}

// StartAccount opens an empty add-account form
func (p *Page) StartAccount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = EditingAccount{}
}

// EditAccount applies edit to the open add-account form
func (p *Page) EditAccount(edit func(*ledger.AccountDraft)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	form, ok := p.state.(EditingAccount)
	if !ok {
		return ErrWrongDialog
	}
	edit(&form.Draft)
	form.Err = nil
	p.state = form
	return nil
}

// SubmitAccount sends the open add-account form
func (p *Page) SubmitAccount(ctx context.Context) (*models.Account, error) {
	p.mu.RLock()
	form, ok := p.state.(EditingAccount)
	p.mu.RUnlock()
	if !ok {
		return nil, ErrWrongDialog
	}

	account, err := p.api.CreateAccount(ctx, form.Draft)
	if err != nil {
		p.keepFormError(EditingAccount{Draft: form.Draft, Err: err})
		return nil, err
	}

	p.Close()
	if err := p.Refresh(ctx); err != nil {
		p.logger.WarnContext(ctx, "refresh after account creation failed", "error", err)
	}
	return account, nil
}

// keepFormError stores a rejection unless the user has moved on meanwhile
func (p *Page) keepFormError(next ViewState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state.(type) {
	case EditingTransfer, EditingAccount:
		p.state = next
	}
}

// OpenLedger shows the transactions of the account behind key, derived from
// the current snapshot
func (p *Page) OpenLedger(key string, filter ledger.Filter) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, err := p.buildLedger(key, filter)
	if err != nil {
		return err
	}
	p.state = next
	return nil
}

// SetLedgerFilter switches the direction filter of the open ledger
func (p *Page) SetLedgerFilter(filter ledger.Filter) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	current, ok := p.state.(ViewingLedger)
	if !ok {
		return ErrWrongDialog
	}

	next, err := p.buildLedger(current.Key, filter)
	if err != nil {
		return err
	}
	p.state = next
	return nil
}

// buildLedger must be called with p.mu held
func (p *Page) buildLedger(key string, filter ledger.Filter) (ViewingLedger, error) {
	ref, err := ledger.ParseSelectionKey(key)
	if err != nil {
		return ViewingLedger{}, err
	}

	account, err := ledger.ResolveAccount(p.accounts, ref)
	if err != nil {
		return ViewingLedger{}, err
	}

	return ViewingLedger{
		Key:  key,
		View: ledger.BuildView(account, p.transfers, filter),
	}, nil
}

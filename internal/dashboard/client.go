// Package dashboard is the fee-office fund transfer page without a browser:
// a REST client for the ledger API, the page state it drives and a periodic
// refresher.
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"school-erp/internal/dto"
	"school-erp/internal/ledger"
	"school-erp/internal/models"
)

// APIError is a non-2xx answer from the ledger API
type APIError struct {
	Status  int
	Code    string
	Message string
	Details []string
	TraceID string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api error %d", e.Status)
	if e.Code != "" {
		msg += " " + e.Code
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Details) > 0 {
		msg += " (" + strings.Join(e.Details, "; ") + ")"
	}
	return msg
}

// Client talks to the ledger REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the API rooted at baseURL, e.g. http://localhost:4000
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// ListAccounts fetches every account, newest first
func (c *Client) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var resp struct {
		Accounts []wireAccount `json:"accounts"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/account", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]models.Account, 0, len(resp.Accounts))
	for _, w := range resp.Accounts {
		accounts = append(accounts, w.toModel(c.logger))
	}
	return accounts, nil
}

// ListAccountOptions fetches the server-built account picker
func (c *Client) ListAccountOptions(ctx context.Context) ([]ledger.AccountOption, error) {
	var resp dto.AccountOptionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/account/options", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list account options: %w", err)
	}
	return resp.Options, nil
}

// CreateAccount validates the draft locally and submits it. Invalid drafts
// never reach the network.
func (c *Client) CreateAccount(ctx context.Context, draft ledger.AccountDraft) (*models.Account, error) {
	if _, err := draft.Validate(); err != nil {
		return nil, err
	}

	var resp struct {
		Account wireAccount `json:"account"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/account", dto.NewCreateAccountRequest(draft), &resp); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	account := resp.Account.toModel(c.logger)
	return &account, nil
}

// ListTransfers fetches transfers newest first. A non-empty query is matched
// by the server against transfer id, accounts and reference.
func (c *Client) ListTransfers(ctx context.Context, query string) ([]models.Transfer, error) {
	path := "/api/transferfunds"
	if query != "" {
		path += "?" + url.Values{"q": {query}}.Encode()
	}

	var resp struct {
		Transfers []wireTransfer `json:"transfers"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	transfers := make([]models.Transfer, 0, len(resp.Transfers))
	for _, w := range resp.Transfers {
		transfers = append(transfers, w.toModel(c.logger))
	}
	return transfers, nil
}

// GetTransfer fetches one transfer by uuid or transfer number
func (c *Client) GetTransfer(ctx context.Context, id string) (*models.Transfer, error) {
	var w wireTransfer
	if err := c.do(ctx, http.MethodGet, "/api/transferfunds/"+url.PathEscape(id), nil, &w); err != nil {
		return nil, fmt.Errorf("failed to get transfer %s: %w", id, err)
	}

	transfer := w.toModel(c.logger)
	return &transfer, nil
}

// CreateTransfer validates the draft locally and submits it. Invalid drafts
// never reach the network.
func (c *Client) CreateTransfer(ctx context.Context, draft ledger.TransferDraft) (*models.Transfer, error) {
	if _, err := draft.Validate(); err != nil {
		return nil, err
	}
	if _, err := draft.Date(); err != nil {
		return nil, err
	}

	var resp struct {
		Transfer wireTransfer `json:"transfer"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/transferfunds", dto.NewTransferRequest(draft), &resp); err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	transfer := resp.Transfer.toModel(c.logger)
	return &transfer, nil
}

// AccountLedger fetches the server-side ledger view of the account behind key
func (c *Client) AccountLedger(ctx context.Context, key string, filter ledger.Filter) (*dto.LedgerResponse, error) {
	path := "/api/account/" + url.PathEscape(key) + "/transactions?" + url.Values{"direction": {string(filter)}}.Encode()

	var resp dto.LedgerResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to load ledger for %s: %w", key, err)
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.DebugContext(ctx, "ledger api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var envelope struct {
		Error struct {
			Code    string   `json:"code"`
			Message string   `json:"message"`
			Details []string `json:"details"`
			TraceID string   `json:"trace_id"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Code != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Details = envelope.Error.Details
		apiErr.TraceID = envelope.Error.TraceID
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(raw))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

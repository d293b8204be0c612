package handlers

import (
	"net/http"

	"school-erp/internal/dto"
	"school-erp/internal/errors"
	"school-erp/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// RegisterRoutes mounts the account endpoints on g
func (h *AccountHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/account", h.ListAccounts)
	g.POST("/account", h.CreateAccount)
	g.GET("/account/options", h.ListAccountOptions)
}

// ListAccounts returns every account, newest first
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Success 200 {object} dto.AccountListResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/account [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountService.ListAccounts(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

// CreateAccount adds a fee-office account
// @Summary Create an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.CreateAccountResponse
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_003/ACCOUNT_004 - Invalid balance or missing fields"
// @Failure 409 {object} errors.ErrorResponse "ACCOUNT_002 - Account identifier already exists"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/account [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.CreateAccount(c.Request().Context(), req.ToDraft())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateAccountResponse{
		Account: account,
		Message: "Account created successfully",
	})
}

// ListAccountOptions returns the account picker keys and labels
// @Summary List account picker options
// @Tags Accounts
// @Produce json
// @Success 200 {object} dto.AccountOptionsResponse
// @Router /api/account/options [get]
func (h *AccountHandler) ListAccountOptions(c echo.Context) error {
	options, err := h.accountService.ListAccountOptions(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountOptionsResponse{Options: options})
}

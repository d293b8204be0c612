package handlers

import (
	"net/http"

	"school-erp/internal/dto"
	"school-erp/internal/ledger"
	"school-erp/internal/services"

	"github.com/labstack/echo/v4"
)

// LedgerHandler serves per-account ledger views
type LedgerHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService services.LedgerServiceInterface) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// RegisterRoutes mounts the ledger endpoint on g
func (h *LedgerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/account/:key/transactions", h.AccountTransactions)
}

// AccountTransactions returns the direction-tagged transfers of one account
// with incoming, outgoing and net totals
// @Summary Account ledger
// @Tags Ledger
// @Produce json
// @Param key path string true "Selection key (aid:, oid: or name:)"
// @Param direction query string false "all, in or out"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006/VALIDATION_007 - Invalid key or direction"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /api/account/{key}/transactions [get]
func (h *LedgerHandler) AccountTransactions(c echo.Context) error {
	key := getPathParam(c, "key")
	if _, err := ledger.ParseSelectionKey(key); err != nil {
		return sendServiceError(c, err)
	}

	filter, err := ledger.ParseFilter(c.QueryParam("direction"))
	if err != nil {
		return sendServiceError(c, err)
	}

	view, err := h.ledgerService.AccountLedger(c.Request().Context(), key, filter)
	if err != nil {
		return sendServiceError(c, err)
	}

	view.Totals = view.Totals.Display()
	return c.JSON(http.StatusOK, dto.LedgerResponse{Key: key, View: *view})
}

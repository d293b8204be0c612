package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"school-erp/internal/dto"
	"school-erp/internal/errors"
	"school-erp/internal/models"
	"school-erp/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 200
	maxPageLimit     = 1000
)

// TransferHandler handles fund transfer HTTP requests
type TransferHandler struct {
	transferService services.TransferServiceInterface
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService services.TransferServiceInterface) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// RegisterRoutes mounts the transfer endpoints on g
func (h *TransferHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/transferfunds", h.ListTransfers)
	g.GET("/transferfunds/:id", h.GetTransfer)
	g.POST("/transferfunds", h.CreateTransfer)
}

// ListTransfers returns transfers newest first, optionally searched and filtered
// @Summary List transfers
// @Tags Transfers
// @Produce json
// @Param q query string false "Search over transfer id, accounts and reference"
// @Param status query string false "Pending, Completed or Rejected"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Param limit query int false "Maximum number of transfers"
// @Success 200 {object} dto.TransferListResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003/VALIDATION_005 - Invalid filter"
// @Router /api/transferfunds [get]
func (h *TransferHandler) ListTransfers(c echo.Context) error {
	filters := models.TransferFilters{
		Status: c.QueryParam("status"),
		Limit:  getIntParam(c, "limit", defaultPageLimit),
	}

	if filters.Status != "" && !models.IsValidTransferStatus(filters.Status) {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("status must be Pending, Completed or Rejected"))
	}
	if filters.Limit <= 0 || filters.Limit > maxPageLimit {
		filters.Limit = defaultPageLimit
	}

	if raw := c.QueryParam("startDate"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("startDate must be YYYY-MM-DD"))
		}
		filters.StartDate = &start
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("endDate must be YYYY-MM-DD"))
		}
		// inclusive of the whole end day
		end = end.Add(24*time.Hour - time.Nanosecond)
		filters.EndDate = &end
	}

	transfers, err := h.transferService.ListTransfers(c.Request().Context(), c.QueryParam("q"), filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransferListResponse{
		Transfers: transfers,
		Total:     len(transfers),
	})
}

// GetTransfer returns one transfer by database id or transfer number
// @Summary Get a transfer
// @Tags Transfers
// @Produce json
// @Param id path string true "Transfer uuid or TRF- number"
// @Success 200 {object} models.Transfer
// @Failure 404 {object} errors.ErrorResponse "TRANSFER_004 - Transfer not found"
// @Router /api/transferfunds/{id} [get]
func (h *TransferHandler) GetTransfer(c echo.Context) error {
	transfer, err := h.transferService.GetTransfer(c.Request().Context(), getPathParam(c, "id"))
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, transfer)
}

// CreateTransfer records a fund transfer and settles it when both accounts are known
// @Summary Create a transfer
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.CreateTransferResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSFER_001..TRANSFER_005 - Invalid transfer"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account identifier not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/transferfunds [post]
func (h *TransferHandler) CreateTransfer(c echo.Context) error {
	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transfer, err := h.transferService.CreateTransfer(c.Request().Context(), req.ToDraft())
	if err != nil {
		return sendServiceError(c, err)
	}

	slog.InfoContext(c.Request().Context(), "transfer submitted",
		"trace_id", getTraceID(c),
		"transfer_id", transfer.TransferID,
		"status", transfer.Status,
		"client_ip", getClientIP(c),
	)

	return c.JSON(http.StatusCreated, dto.CreateTransferResponse{
		Transfer: transfer,
		Message:  "Transfer " + transfer.Status,
	})
}

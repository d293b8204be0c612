package handlers

import (
	stderrors "errors"
	"log/slog"

	"school-erp/internal/errors"
	"school-erp/internal/ledger"
	"school-erp/internal/models"
	"school-erp/internal/services"

	"github.com/labstack/echo/v4"
)

// serviceErrorCodes maps domain errors to API error codes. Anything not listed
// is answered with SYSTEM_001.
var serviceErrorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{ledger.ErrMissingSource, errors.TransferMissingSource},
	{models.ErrMissingSource, errors.TransferMissingSource},
	{ledger.ErrMissingDestination, errors.TransferMissingDestination},
	{models.ErrMissingDestination, errors.TransferMissingDestination},
	{ledger.ErrSameAccount, errors.TransferSameAccount},
	{models.ErrSameAccountTransfer, errors.TransferSameAccount},
	{ledger.ErrAmountNotPositive, errors.TransferInvalidAmount},
	{ledger.ErrInvalidAmount, errors.TransferInvalidAmount},
	{models.ErrInvalidTransferAmount, errors.TransferInvalidAmount},
	{ledger.ErrAccountFieldMissing, errors.AccountMissingFields},
	{models.ErrAccountNameEmpty, errors.AccountMissingFields},
	{ledger.ErrNegativeBalance, errors.AccountInvalidBalance},
	{models.ErrInvalidBalance, errors.AccountInvalidBalance},
	{ledger.ErrInvalidDate, errors.ValidationInvalidDate},
	{ledger.ErrInvalidSelectionKey, errors.ValidationInvalidKey},
	{ledger.ErrInvalidFilter, errors.ValidationInvalidDirection},
	{services.ErrAccountNotFound, errors.AccountNotFound},
	{ledger.ErrAccountNotFound, errors.AccountNotFound},
	{services.ErrAccountAlreadyExists, errors.AccountAlreadyExists},
	{services.ErrTransferNotFound, errors.TransferNotFound},
}

// sendServiceError answers with the error code registered for err, or a
// system error when err is not a known domain error. Wrapped domain errors
// keep their full text as a detail line.
func sendServiceError(c echo.Context, err error) error {
	for _, m := range serviceErrorCodes {
		if !stderrors.Is(err, m.err) {
			continue
		}
		if err.Error() != m.err.Error() {
			return SendError(c, m.code, errors.WithDetails(err.Error()))
		}
		return SendError(c, m.code)
	}

	slog.ErrorContext(c.Request().Context(), "unhandled service error",
		"trace_id", getTraceID(c),
		"path", c.Path(),
		"error", err.Error(),
	)
	return SendSystemError(c, err)
}

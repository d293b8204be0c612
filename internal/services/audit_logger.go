package services

import (
	"context"
	"log/slog"
	"time"

	"school-erp/internal/models"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogAccountCreated(ctx context.Context, account *models.Account) {
	al.logger.InfoContext(ctx, "account created",
		slog.String("event_type", "account_created"),
		slog.String("id", account.ObjectID()),
		slog.String("account_id", account.StableID()),
		slog.String("name", account.Name),
		slog.String("bank", account.Bank),
		slog.String("opening_balance", account.Balance.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransferCreated(ctx context.Context, transfer *models.Transfer, durationMs int64) {
	attrs := []slog.Attr{
		slog.String("event_type", "transfer_created"),
		slog.String("transfer_id", transfer.TransferID),
		slog.String("status", transfer.Status),
		slog.String("amount", transfer.Amount.String()),
		slog.String("approved_by", transfer.ApprovedBy),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if transfer.FromAccountID != "" {
		attrs = append(attrs, slog.String("from_account_id", transfer.FromAccountID))
	} else {
		attrs = append(attrs, slog.String("from_account", transfer.FromAccount))
	}
	if transfer.ToAccountID != "" {
		attrs = append(attrs, slog.String("to_account_id", transfer.ToAccountID))
	} else {
		attrs = append(attrs, slog.String("to_account", transfer.ToAccount))
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "transfer created", attrs...)
}

func (al *AuditLogger) LogTransferPending(ctx context.Context, transfer *models.Transfer, unresolved string) {
	al.logger.InfoContext(ctx, "transfer left pending",
		slog.String("event_type", "transfer_pending"),
		slog.String("transfer_id", transfer.TransferID),
		slog.String("unresolved_account", unresolved),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransferRejected(ctx context.Context, transfer *models.Transfer, reason string) {
	al.logger.WarnContext(ctx, "transfer rejected",
		slog.String("event_type", "transfer_rejected"),
		slog.String("transfer_id", transfer.TransferID),
		slog.String("amount", transfer.Amount.String()),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBalanceUpdate(ctx context.Context, account *models.Account, oldBalance, newBalance string, transferID string) {
	al.logger.InfoContext(ctx, "balance update",
		slog.String("event_type", "balance_update"),
		slog.String("id", account.ObjectID()),
		slog.String("account_id", account.StableID()),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.String("transfer_id", transferID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogEventPublishFailed(ctx context.Context, topic, key, errorMsg string) {
	al.logger.WarnContext(ctx, "event publish failed",
		slog.String("event_type", "event_publish_failed"),
		slog.String("topic", topic),
		slog.String("key", key),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if traceID, ok := ctx.Value("trace_id").(string); ok {
		return traceID
	}

	return ""
}

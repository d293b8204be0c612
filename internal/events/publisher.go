// Package events publishes fee-office domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"school-erp/internal/config"
	"school-erp/internal/models"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const (
	EventTransferCreated = "transfer_created"
	EventAccountCreated  = "account_created"
)

// messageWriter is the subset of *kafka.Writer the publisher needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes JSON events to Kafka topics
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

// NewKafkaPublisher creates a publisher for the configured brokers
func NewKafkaPublisher(cfg *config.EventsConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: cfg.WriteTimeout,
		},
		timeout: cfg.WriteTimeout,
	}
}

// Publish marshals event and writes it to topic, keyed by key
func (p *KafkaPublisher) Publish(ctx context.Context, topic, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", topic, err)
	}
	return nil
}

// Close flushes and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event; used when no brokers are configured
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, any) error { return nil }

func (NoopPublisher) Close() error { return nil }

// TransferEvent is the payload of transfer_created
type TransferEvent struct {
	Type          string          `json:"type"`
	TransferID    string          `json:"transferId"`
	FromAccountID string          `json:"fromAccountId,omitempty"`
	FromAccount   string          `json:"fromAccount,omitempty"`
	ToAccountID   string          `json:"toAccountId,omitempty"`
	ToAccount     string          `json:"toAccount,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Date          time.Time       `json:"date"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

// NewTransferEvent builds the transfer_created payload
func NewTransferEvent(t *models.Transfer) TransferEvent {
	return TransferEvent{
		Type:          EventTransferCreated,
		TransferID:    t.TransferID,
		FromAccountID: t.FromAccountID,
		FromAccount:   t.FromAccount,
		ToAccountID:   t.ToAccountID,
		ToAccount:     t.ToAccount,
		Amount:        t.Amount,
		Status:        t.Status,
		Date:          t.Date,
		OccurredAt:    time.Now().UTC(),
	}
}

// AccountEvent is the payload of account_created
type AccountEvent struct {
	Type       string          `json:"type"`
	ID         string          `json:"id"`
	AccountID  string          `json:"accountId,omitempty"`
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// NewAccountEvent builds the account_created payload
func NewAccountEvent(a *models.Account) AccountEvent {
	return AccountEvent{
		Type:       EventAccountCreated,
		ID:         a.ObjectID(),
		AccountID:  a.StableID(),
		Name:       a.Name,
		Balance:    a.Balance,
		OccurredAt: time.Now().UTC(),
	}
}

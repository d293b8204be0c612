package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"school-erp/internal/config"
	"school-erp/internal/models"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeWriter struct {
	messages []kafka.Message
	deadline bool
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

// PublisherTestSuite is the test suite for the Kafka publisher
type PublisherTestSuite struct {
	suite.Suite
	writer    *fakeWriter
	publisher *KafkaPublisher
}

// SetupTest runs before each test
func (s *PublisherTestSuite) SetupTest() {
	s.writer = &fakeWriter{}
	s.publisher = &KafkaPublisher{writer: s.writer, timeout: time.Second}
}

// TestPublisherTestSuite runs the test suite
func TestPublisherTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

// TestPublish_WritesKeyedJSON tests message encoding
func (s *PublisherTestSuite) TestPublish_WritesKeyedJSON() {
	transfer := &models.Transfer{
		TransferID:    "TRF-20240103-1A2B3C",
		FromAccountID: "A1",
		ToAccount:     "Ops",
		Amount:        decimal.NewFromInt(100),
		Status:        models.TransferStatusCompleted,
	}

	err := s.publisher.Publish(context.Background(), "fee.transfers", transfer.TransferID, NewTransferEvent(transfer))
	require.NoError(s.T(), err)
	require.Len(s.T(), s.writer.messages, 1)
	assert.True(s.T(), s.writer.deadline)

	msg := s.writer.messages[0]
	assert.Equal(s.T(), "fee.transfers", msg.Topic)
	assert.Equal(s.T(), "TRF-20240103-1A2B3C", string(msg.Key))

	var decoded map[string]any
	require.NoError(s.T(), json.Unmarshal(msg.Value, &decoded))
	assert.Equal(s.T(), EventTransferCreated, decoded["type"])
	assert.Equal(s.T(), "A1", decoded["fromAccountId"])
	assert.Equal(s.T(), "Ops", decoded["toAccount"])
	assert.Equal(s.T(), "100", decoded["amount"])
	assert.NotContains(s.T(), decoded, "toAccountId")
}

// TestPublish_EncodeError tests that unencodable events never reach the writer
func (s *PublisherTestSuite) TestPublish_EncodeError() {
	err := s.publisher.Publish(context.Background(), "fee.transfers", "k", make(chan int))
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "failed to encode event")
	assert.Empty(s.T(), s.writer.messages)
}

// TestPublish_WriteError tests broker failures
func (s *PublisherTestSuite) TestPublish_WriteError() {
	s.writer.err = errors.New("broker down")

	err := s.publisher.Publish(context.Background(), "fee.accounts", "k", map[string]string{"a": "b"})
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "fee.accounts")
	assert.ErrorIs(s.T(), err, s.writer.err)
}

// TestClose tests that Close reaches the writer
func (s *PublisherTestSuite) TestClose() {
	require.NoError(s.T(), s.publisher.Close())
	assert.True(s.T(), s.writer.closed)
}

// TestNewKafkaPublisher tests construction from config
func (s *PublisherTestSuite) TestNewKafkaPublisher() {
	p := NewKafkaPublisher(&config.EventsConfig{
		Brokers:      []string{"localhost:9092"},
		WriteTimeout: 2 * time.Second,
	})

	w, ok := p.writer.(*kafka.Writer)
	require.True(s.T(), ok)
	assert.Equal(s.T(), "localhost:9092", w.Addr.String())
	assert.Equal(s.T(), 2*time.Second, p.timeout)
}

// TestNewAccountEvent tests the account payload
func (s *PublisherTestSuite) TestNewAccountEvent() {
	id := "ACC-FEES"
	account := &models.Account{AccountID: &id, Name: "Fees", Balance: decimal.NewFromInt(5)}

	event := NewAccountEvent(account)
	assert.Equal(s.T(), EventAccountCreated, event.Type)
	assert.Equal(s.T(), "ACC-FEES", event.AccountID)
	assert.Equal(s.T(), "", event.ID)
	assert.False(s.T(), event.OccurredAt.IsZero())
}

// TestNoopPublisher tests the disabled publisher
func (s *PublisherTestSuite) TestNoopPublisher() {
	var noop NoopPublisher
	assert.NoError(s.T(), noop.Publish(context.Background(), "t", "k", nil))
	assert.NoError(s.T(), noop.Close())
}

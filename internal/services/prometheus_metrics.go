package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transfersTotal       *prometheus.CounterVec
	transferDuration     prometheus.Histogram
	transferAmount       prometheus.Histogram
	accountsCreatedTotal prometheus.Counter
	accountCacheLookups  *prometheus.CounterVec
	ledgerViewsTotal     *prometheus.CounterVec
	ledgerViewDuration   prometheus.Histogram
	ledgerRows           prometheus.Histogram
	eventsPublished      *prometheus.CounterVec
}

// NewPrometheusMetrics registers the service metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transfersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_total",
				Help: "Total number of transfers created, by resulting status",
			},
			[]string{"status"},
		),
		transferDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_duration_milliseconds",
				Help:    "Transfer creation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount",
				Help:    "Transfer amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		accountsCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "accounts_created_total",
				Help: "Total number of accounts created",
			},
		),
		accountCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_cache_lookups_total",
				Help: "Account list cache lookups by result",
			},
			[]string{"result"},
		),
		ledgerViewsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_views_total",
				Help: "Total number of account ledger views built, by direction filter",
			},
			[]string{"direction"},
		),
		ledgerViewDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_view_duration_milliseconds",
				Help:    "Ledger view build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		ledgerRows: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_view_rows",
				Help:    "Number of rows in a ledger view",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "events_published_total",
				Help: "Domain events published, by topic and outcome",
			},
			[]string{"topic", "status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "transfers_total":
		if status != "" {
			m.transfersTotal.WithLabelValues(status).Inc()
		}
	case "accounts_created":
		m.accountsCreatedTotal.Inc()
	case "account_cache":
		if result := tags["result"]; result != "" {
			m.accountCacheLookups.WithLabelValues(result).Inc()
		}
	case "ledger_views":
		m.ledgerViewsTotal.WithLabelValues(tags["direction"]).Inc()
	case "events_published":
		m.eventsPublished.WithLabelValues(tags["topic"], status).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transfer_duration":
		m.transferDuration.Observe(float64(duration.Milliseconds()))
	case "ledger_view":
		m.ledgerViewDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transfer_amount":
		m.transferAmount.Observe(value)
	case "ledger_rows":
		m.ledgerRows.Observe(value)
	}
}

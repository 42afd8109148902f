package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Journal metrics
	EntriesRecorded prometheus.Counter
	EntriesDeleted  prometheus.Counter
	EntryRejections *prometheus.CounterVec

	// Derivation metrics
	LedgerBuilds      prometheus.Counter
	TrialBalanceSyncs *prometheus.CounterVec
	StatementSeeds    prometheus.Counter

	// Export and backup metrics
	DocumentsExported *prometheus.CounterVec
	BackupAttempts    prometheus.Counter
	BackupFailures    prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		EntriesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bumdeskas_journal_entries_recorded_total",
			Help: "Total number of journal entries recorded",
		}),
		EntriesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bumdeskas_journal_entries_deleted_total",
			Help: "Total number of journal entries deleted",
		}),
		EntryRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bumdeskas_journal_entry_rejections_total",
			Help: "Journal entries rejected at validation, by reason",
		}, []string{"reason"}),
		LedgerBuilds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bumdeskas_ledger_builds_total",
			Help: "Total number of ledger rebuilds",
		}),
		TrialBalanceSyncs: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bumdeskas_trial_balance_syncs_total",
			Help: "Trial balance synchronizations, by mode",
		}, []string{"mode"}),
		StatementSeeds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bumdeskas_statement_seeds_total",
			Help: "Statement auto-seed runs",
		}),
		DocumentsExported: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bumdeskas_documents_exported_total",
			Help: "PDF documents generated, by kind",
		}, []string{"kind"}),
		BackupAttempts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bumdeskas_backup_attempts_total",
			Help: "Backup pushes attempted",
		}),
		BackupFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bumdeskas_backup_failures_total",
			Help: "Backup pushes that failed",
		}),
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bumdeskas_http_requests_total",
			Help: "HTTP requests, by method, path and status",
		}, []string{"method", "path", "status"}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bumdeskas_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

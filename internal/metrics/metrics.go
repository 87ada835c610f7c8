package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatReplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_chat_replies_total",
			Help: "Total number of chat replies by matched branch",
		},
		[]string{"branch"},
	)

	Evaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_evaluations_total",
			Help: "Total number of profile evaluations by tier",
		},
		[]string{"tier", "source"},
	)

	DocumentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_documents_processed_total",
			Help: "Total number of uploaded documents processed by outcome",
		},
		[]string{"outcome"},
	)

	DocumentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "advisor_document_processing_seconds",
			Help: "Duration of document text extraction in seconds",
		},
	)

	WorkerJobsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "advisor_worker_jobs_active",
			Help: "Number of documents currently being processed",
		},
	)
)

const (
	SourceRequest = "request"
	SourceProfile = "profile"

	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
)

func RecordChatReply(branch string) {
	ChatReplies.WithLabelValues(branch).Inc()
}

func RecordEvaluation(tier, source string) {
	Evaluations.WithLabelValues(tier, source).Inc()
}

func RecordDocument(outcome string, seconds float64) {
	DocumentsProcessed.WithLabelValues(outcome).Inc()
	DocumentDuration.Observe(seconds)
}

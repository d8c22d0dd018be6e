package tamperlog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	appendsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tamperlog_appends_total",
		Help: "Records committed to the chain.",
	})

	resetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tamperlog_resets_total",
		Help: "Chain resets performed.",
	})

	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tamperlog_verifications_total",
		Help: "Chain verifications by outcome.",
	}, []string{"outcome"})

	tamperFindingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tamperlog_tamper_findings_total",
		Help: "Tamper findings by reason.",
	}, []string{"reason"})
)

// RecordAppend records one committed append.
func RecordAppend() { appendsTotal.Inc() }

// RecordReset records one chain reset.
func RecordReset() { resetsTotal.Inc() }

// RecordVerification records a verification outcome and, for failures,
// the localized reason.
func RecordVerification(res VerificationResult) {
	if res.OK {
		verificationsTotal.WithLabelValues("verified").Inc()
		return
	}
	verificationsTotal.WithLabelValues("tampered").Inc()
	tamperFindingsTotal.WithLabelValues(string(res.Reason)).Inc()
}

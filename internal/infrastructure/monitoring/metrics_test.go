package monitoring

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordDecision(t *testing.T) {
	Business.DecisionsTotal.Reset()

	RecordDecision("APPROVED", "none")
	RecordDecision("APPROVED", "none")
	RecordDecision("REJECTED", "no_valid_loan")

	expected := `
		# HELP decision_engine_decisions_total Total number of loan decisions by outcome and reason.
		# TYPE decision_engine_decisions_total counter
		decision_engine_decisions_total{decision="APPROVED",reason="none"} 2
		decision_engine_decisions_total{decision="REJECTED",reason="no_valid_loan"} 1
	`
	if err := testutil.CollectAndCompare(Business.DecisionsTotal, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics for decision_engine_decisions_total: %v", err)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	Business.CacheLookups.Reset()

	RecordCacheLookup("hit")
	RecordCacheLookup("miss")
	RecordCacheLookup("miss")

	assert.Equal(t, float64(1), testutil.ToFloat64(Business.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(Business.CacheLookups.WithLabelValues("miss")))
}

func TestRecordPublishError(t *testing.T) {
	before := testutil.ToFloat64(Business.PublishErrors)
	RecordPublishError()
	assert.Equal(t, before+1, testutil.ToFloat64(Business.PublishErrors))
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewWithRegisterer(reg)

	r.RecordAlertCreated()
	r.RecordAlertCreated()
	r.RecordVote("yes")
	r.RecordVote("no")
	r.RecordVote("yes")
	r.RecordCurrentRate(172.3)
	r.RecordPublishError("vote.created")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.alertsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.votes.WithLabelValues("yes")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.votes.WithLabelValues("no")))
	assert.Equal(t, 172.3, testutil.ToFloat64(r.currentRate))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.publishErrors.WithLabelValues("vote.created")))
}

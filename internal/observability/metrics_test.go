package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return NewMetrics("paper_check", prometheus.NewRegistry())
}

func TestRecordValidation(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordValidation(true, 0.01)
	m.RecordValidation(true, 0.02)
	m.RecordValidation(false, 0.03)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationsTotal.WithLabelValues("pass")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationsTotal.WithLabelValues("fail")))
}

func TestRecordAuthorRows(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordAuthorRows(2, 1, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthorsReconciled.WithLabelValues("exact")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthorsReconciled.WithLabelValues("loose")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthorsReconciled.WithLabelValues("unmatched")))
}

func TestRecordLookupMissAndRateLimited(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordLookupMiss()
	m.RecordRateLimited()
	m.RecordRateLimited()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PaperLookupMisses))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RateLimitedTotal))
}

func TestNewMetrics_RegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("paper_check", reg)
	m.RecordHTTPRequest("POST", "/api/v1/validations", "200", 0.005)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPollerMetrics_Record(t *testing.T) {
	m := NewPollerMetrics()

	m.RecordFetch("USDBRL", "success", 0.2)
	m.RecordFetch("USDBRL", "success", 0.1)
	m.RecordFetch("USDBRL", "error", 1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues("USDBRL", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues("USDBRL", "error")))

	fetchedAt := time.Unix(1756468800, 0)
	m.RecordLastFetch(fetchedAt)
	assert.Equal(t, float64(fetchedAt.Unix()), testutil.ToFloat64(m.LastFetchUnixTime))
}

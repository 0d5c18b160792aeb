package prometheus

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve_Disabled(t *testing.T) {
	Initialize(MetricsConfig{Enabled: false})
	before := testutil.ToFloat64(Verdicts.WithLabelValues("true"))

	ObserveVerdict(true)

	assert.Equal(t, before, testutil.ToFloat64(Verdicts.WithLabelValues("true")))
}

func TestObserve_Enabled(t *testing.T) {
	Initialize(MetricsConfig{Enabled: true})
	t.Cleanup(func() { Initialize(MetricsConfig{}) })

	requests := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues("POST", "/analyze-toxicity", "200"))
	verdicts := testutil.ToFloat64(Verdicts.WithLabelValues("false"))
	failures := testutil.ToFloat64(ClassifierErrors.WithLabelValues("detoxify"))

	ObserveRequest("POST", "/analyze-toxicity", http.StatusOK, 12*time.Millisecond)
	ObserveVerdict(false)
	ObservePrediction("detoxify", 80*time.Millisecond, nil)
	ObservePrediction("detoxify", 5*time.Millisecond, errors.New("status 503"))

	assert.Equal(t, requests+1, testutil.ToFloat64(HTTPRequestTotal.WithLabelValues("POST", "/analyze-toxicity", "200")))
	assert.Equal(t, verdicts+1, testutil.ToFloat64(Verdicts.WithLabelValues("false")))
	assert.Equal(t, failures+1, testutil.ToFloat64(ClassifierErrors.WithLabelValues("detoxify")))
}

func TestHandler(t *testing.T) {
	Initialize(MetricsConfig{Enabled: true})
	t.Cleanup(func() { Initialize(MetricsConfig{}) })
	ObserveVerdict(true)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "toxicity_verdicts_total")
	assert.Contains(t, rec.Body.String(), "process_")
}

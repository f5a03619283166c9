package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_GameCounters(t *testing.T) {
	m := New("clicker")

	m.Registered()
	m.Clicked(1)
	m.Clicked(6)
	m.Purchased("Auto-Clicker")
	m.Purchased("Auto-Clicker")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.clicks))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.clickPoints))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.purchases.WithLabelValues("Auto-Clicker")))
}

func TestMetrics_Requests(t *testing.T) {
	m := New("clicker")

	m.RequestStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reqInflight))

	m.RequestFinished(http.MethodGet, "/", http.StatusOK, 10*time.Millisecond)
	m.RequestStarted()
	m.RequestFinished(http.MethodPost, "/login", http.StatusUnauthorized, time.Millisecond)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.reqInflight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reqErrors.WithLabelValues(http.MethodPost, "/login", "401")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.reqDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("clicker")
	m.Clicked(3)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, "clicker_clicks_total 1"))
	assert.True(t, strings.Contains(body, "clicker_click_points_total 3"))
}

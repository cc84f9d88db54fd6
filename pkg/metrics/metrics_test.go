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

func TestCounters(t *testing.T) {
	m := New()

	m.ObserveCommand("success")
	m.ObserveCommand("success")
	m.ObserveCommand("partial")
	m.ObserveAction("add_item", "success")
	m.ObserveQuery(true)
	m.ObserveInterpret(300 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.commands.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commands.WithLabelValues("partial")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("add_item", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues("true")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveCommand("clarification")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `fridge_voice_commands_total{result="clarification"} 1`))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveCommand("success")
	m.ObserveAction("add_item", "failed")
	m.ObserveQuery(false)
	m.ObserveInterpret(time.Second)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	m := NewMetrics()

	m.Turns.Inc()
	m.Transitions.WithLabelValues("start", "check_aadhaar_link").Inc()
	m.Fallbacks.WithLabelValues("start").Inc()
	m.GlobalCommands.WithLabelValues("restart").Inc()
	m.ActiveSessions.Set(3)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Turns))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Transitions.WithLabelValues("start", "check_aadhaar_link")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Fallbacks.WithLabelValues("start")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GlobalCommands.WithLabelValues("restart")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.ActiveSessions))
}

func TestMetricsDistinctRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	a := NewMetrics()
	b := NewMetrics()
	assert.NotSame(t, a.Registry(), b.Registry())
}

package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.ObserveLookup(LookupFound, 20*time.Millisecond)
	m.ObserveLookup(LookupUnavailable, time.Second)
	m.IncUpdate("start_command")
	m.IncSendFailure()
	m.SetSessions(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	out := string(body)

	for _, want := range []string{
		`student_lookups_total{result="found"} 1`,
		`student_lookups_total{result="backend_unavailable"} 1`,
		`bot_updates_total{event="start_command"} 1`,
		`bot_send_failures_total 1`,
		`bot_sessions_active 3`,
		`student_lookup_duration_seconds_count 2`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output does not contain %q", want)
		}
	}
}

func TestNewUsesIsolatedRegistry(t *testing.T) {
	// повторное создание не должно паниковать из-за дублирующейся регистрации
	New()
	New()
}

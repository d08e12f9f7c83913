package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// --- モック ---

type mockMetricsRecorder struct {
	statuses  []int
	latencies []time.Duration
}

func (m *mockMetricsRecorder) RecordHTTPStatus(statusCode int) {
	m.statuses = append(m.statuses, statusCode)
}

func (m *mockMetricsRecorder) RecordRequestLatency(duration time.Duration) {
	m.latencies = append(m.latencies, duration)
}

// --- テスト ---

func TestMetricsMiddleware_RecordsStatusAndLatency(t *testing.T) {
	rec := &mockMetricsRecorder{}
	mw := NewMetricsMiddleware(rec)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/register", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if len(rec.statuses) != 1 || rec.statuses[0] != http.StatusCreated {
		t.Errorf("statuses = %v, want [201]", rec.statuses)
	}
	if len(rec.latencies) != 1 {
		t.Errorf("latencies = %v, want 1 entry", rec.latencies)
	}
}

// TestMetricsMiddleware_DefaultsTo200 はハンドラーがWriteHeaderを呼ばない場合に
// 200が記録されることを検証する。
func TestMetricsMiddleware_DefaultsTo200(t *testing.T) {
	rec := &mockMetricsRecorder{}
	mw := NewMetricsMiddleware(rec)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if len(rec.statuses) != 1 || rec.statuses[0] != http.StatusOK {
		t.Errorf("statuses = %v, want [200]", rec.statuses)
	}
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerRendersCounters(t *testing.T) {
	collector := NewCollector()
	collector.IncRequests()
	collector.IncRequests()
	collector.IncErrors()

	rec := httptest.NewRecorder()
	NewHandler(collector).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "talenttrack_requests_total 2") {
		t.Errorf("missing request counter: %s", body)
	}
	if !strings.Contains(body, "talenttrack_errors_total 1") {
		t.Errorf("missing error counter: %s", body)
	}
}

func TestHandlerToleratesNilCollector(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "talenttrack_requests_total 0") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

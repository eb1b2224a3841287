package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/clowdgraph/clowd/pkg/analyze"
	"github.com/clowdgraph/clowd/pkg/store"
)

const sampleDoc = `{
	"nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}, {"id": "d"}],
	"edges": [
		{"from": "a", "to": "b", "label": "x", "weight": 1},
		{"from": "a", "to": "c", "label": "x", "weight": 1},
		{"from": "b", "to": "d", "label": "x", "weight": 1},
		{"from": "c", "to": "d", "label": "x", "weight": 1}
	]
}`

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(cfg, analyze.NewRunner(nil, nil, logger), store.NewMemoryStore(), logger)
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t, DefaultConfig())

	rec := postJSON(t, s.Handler(), "/v1/analyze", sampleDoc)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var report analyze.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if report.NodeCount != 4 || report.EdgeCount != 4 {
		t.Errorf("report size = %d/%d, want 4/4", report.NodeCount, report.EdgeCount)
	}
	if report.Cyclic {
		t.Error("diamond reported cyclic")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("no request ID header")
	}

	// The report must be retrievable afterwards.
	rec = get(t, s.Handler(), "/v1/reports/"+report.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET report status = %d", rec.Code)
	}
	var fetched analyze.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if fetched.Fingerprint != report.Fingerprint {
		t.Error("archived report does not match analysis response")
	}
}

func TestHandleAnalyzeBadInput(t *testing.T) {
	s := newTestServer(t, DefaultConfig())

	rec := postJSON(t, s.Handler(), "/v1/analyze", `{"nodes": [`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "INVALID_FORMAT") {
		t.Errorf("body = %s, want INVALID_FORMAT code", rec.Body)
	}
}

func TestHandleAnalyzeNodeLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxGraphNodes = 2
	s := newTestServer(t, cfg)

	rec := postJSON(t, s.Handler(), "/v1/analyze", sampleDoc)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for oversized graph", rec.Code)
	}
}

func TestHandleAnalyzeEdgeLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxGraphEdges = 3
	s := newTestServer(t, cfg)

	// sampleDoc has 4 edges.
	rec := postJSON(t, s.Handler(), "/v1/analyze", sampleDoc)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for graph over edge limit", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "edges") {
		t.Errorf("body = %s, want edge limit message", rec.Body)
	}
}

func TestHandlePaths(t *testing.T) {
	s := newTestServer(t, DefaultConfig())

	body := `{"graph": ` + sampleDoc + `, "from": "a", "to": "d"}`
	rec := postJSON(t, s.Handler(), "/v1/paths", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var resp pathsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Routes) != 2 {
		t.Errorf("got %d routes, want 2", len(resp.Routes))
	}
}

func TestHandlePathsErrors(t *testing.T) {
	s := newTestServer(t, DefaultConfig())

	t.Run("UnknownItem", func(t *testing.T) {
		body := `{"graph": ` + sampleDoc + `, "from": "ghost", "to": "d"}`
		rec := postJSON(t, s.Handler(), "/v1/paths", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("CyclicGraph", func(t *testing.T) {
		cyclic := `{"nodes": [{"id": "a"}, {"id": "b"}], "edges": [{"from": "a", "to": "b"}, {"from": "b", "to": "a"}]}`
		body := `{"graph": ` + cyclic + `, "from": "a", "to": "b"}`
		rec := postJSON(t, s.Handler(), "/v1/paths", body)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "PRECONDITION_FAILED") {
			t.Errorf("body = %s, want PRECONDITION_FAILED code", rec.Body)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		rec := postJSON(t, s.Handler(), "/v1/paths", `{"from": "a"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHandleReports(t *testing.T) {
	s := newTestServer(t, DefaultConfig())

	t.Run("MissingReport", func(t *testing.T) {
		rec := get(t, s.Handler(), "/v1/reports/nope")
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("EmptyList", func(t *testing.T) {
		rec := get(t, s.Handler(), "/v1/reports")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
			t.Errorf("body = %s, want []", got)
		}
	})

	t.Run("ListAfterAnalyze", func(t *testing.T) {
		postJSON(t, s.Handler(), "/v1/analyze", sampleDoc)
		rec := get(t, s.Handler(), "/v1/reports")
		var reports []analyze.Report
		if err := json.Unmarshal(rec.Body.Bytes(), &reports); err != nil {
			t.Fatalf("decode list: %v", err)
		}
		if len(reports) != 1 {
			t.Errorf("got %d reports, want 1", len(reports))
		}
	})

	t.Run("BadLimit", func(t *testing.T) {
		rec := get(t, s.Handler(), "/v1/reports?limit=zero")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHealthzAndMetrics(t *testing.T) {
	s := newTestServer(t, DefaultConfig())

	rec := get(t, s.Handler(), "/healthz")
	if rec.Code != http.StatusOK {
		t.Errorf("healthz status = %d", rec.Code)
	}

	postJSON(t, s.Handler(), "/v1/analyze", sampleDoc)

	rec = get(t, s.Handler(), "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "clowd_analyses_total") {
		t.Error("metrics output missing analysis counter")
	}
}

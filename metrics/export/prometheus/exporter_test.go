package prometheus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/feedgate/feedgate"
)

type stubSource struct {
	snapshot feedgate.MetricsSnapshot
	dropped  uint64
}

func (s *stubSource) MetricsSnapshot() feedgate.MetricsSnapshot { return s.snapshot }
func (s *stubSource) AuditDropped() uint64                      { return s.dropped }

func TestRenderCounters(t *testing.T) {
	exp := NewExporterFromSource(&stubSource{
		snapshot: feedgate.MetricsSnapshot{
			Counters: map[feedgate.MetricID]uint64{
				feedgate.MetricLoginSuccess: 7,
				feedgate.MetricCommentAdded: 3,
			},
		},
		dropped: 2,
	})

	out := exp.Render()

	for _, want := range []string{
		"# TYPE feedgate_login_success_total counter",
		"feedgate_login_success_total 7",
		"feedgate_comment_added_total 3",
		"feedgate_audit_dropped_total 2",
		// Untouched counters render as zero, not absent.
		"feedgate_refresh_failure_total 0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderNilExporter(t *testing.T) {
	var exp *Exporter
	if out := exp.Render(); out != "" {
		t.Fatalf("nil exporter rendered %q", out)
	}
}

func TestHandler(t *testing.T) {
	exp := NewExporterFromSource(&stubSource{
		snapshot: feedgate.MetricsSnapshot{
			Counters: map[feedgate.MetricID]uint64{feedgate.MetricSignupSuccess: 1},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	exp.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "feedgate_signup_success_total 1") {
		t.Fatalf("unexpected body:\n%s", rec.Body.String())
	}
}

func TestExporterAgainstLiveService(t *testing.T) {
	cfg := feedgate.DefaultConfig()
	cfg.Password.Memory = 8 * 1024
	cfg.Password.Time = 1
	cfg.Password.Parallelism = 1

	svc, err := feedgate.New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer svc.Close()

	if _, err := svc.Signup(context.Background(), "Alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	out := NewExporter(svc).Render()
	if !strings.Contains(out, "feedgate_signup_success_total 1") {
		t.Fatalf("expected signup counter in:\n%s", out)
	}
}

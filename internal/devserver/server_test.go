package devserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/gateway"
)

// newTestServer builds the handler stack and serves it over httptest.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv, err := New(&Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ts := httptest.NewServer(srv.httpSrv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestBannerRoute(t *testing.T) {
	ts := newTestServer(t)

	client := gateway.NewClient(ts.URL)
	msg, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if msg != "TypePolish backend running" {
		t.Errorf("banner = %q", msg)
	}
}

func TestCorrectEndpoint_ThroughGatewayClient(t *testing.T) {
	ts := newTestServer(t)

	client := gateway.NewClient(ts.URL)
	result, err := client.Correct(context.Background(), "i has went to market", gateway.ModeGrammar)
	if err != nil {
		t.Fatalf("Correct() error = %v", err)
	}

	if result.CorrectedText != "I has went to market." {
		t.Errorf("CorrectedText = %q", result.CorrectedText)
	}
	if result.ChangesSummary == "" {
		t.Error("ChangesSummary should not be empty")
	}
}

func TestPolishAIEndpoint_ThroughGatewayClient(t *testing.T) {
	ts := newTestServer(t)

	client := gateway.NewClient(ts.URL)
	result, err := client.PolishAI(context.Background(), "rough draft here", gateway.ToneCalm, gateway.StyleStudent)
	if err != nil {
		t.Fatalf("PolishAI() error = %v", err)
	}

	if result.CorrectedText != "Rough draft here." {
		t.Errorf("CorrectedText = %q", result.CorrectedText)
	}
	if !strings.Contains(result.ChangesSummary, "Calm") {
		t.Errorf("ChangesSummary = %q", result.ChangesSummary)
	}
}

func TestRewriteToneEndpoint_ThroughGatewayClient(t *testing.T) {
	ts := newTestServer(t)

	client := gateway.NewClient(ts.URL)
	result, err := client.RewriteTone(context.Background(), "yo wanna grab lunch", gateway.ToneProfessional)
	if err != nil {
		t.Fatalf("RewriteTone() error = %v", err)
	}

	if strings.Contains(result.CorrectedText, "wanna") {
		t.Errorf("CorrectedText = %q", result.CorrectedText)
	}
}

func TestEndpoints_RejectNonPOST(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{gateway.PathCorrect, gateway.PathPolishAI, gateway.PathRewriteTone} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s error = %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("GET %s status = %d, want 405", path, resp.StatusCode)
		}
	}
}

func TestCorrectEndpoint_RejectsMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+gateway.PathCorrect, "application/json", strings.NewReader("{broken"))
	if err != nil {
		t.Fatalf("POST error = %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUnknownPath(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestStartAndStop(t *testing.T) {
	srv, err := New(&Config{Host: "127.0.0.1", Port: 0})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	<-srv.Ready()

	client := gateway.NewClient("http://" + srv.Addr())
	if _, err := client.Health(context.Background()); err != nil {
		t.Errorf("Health() against running server error = %v", err)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Start() returned error after cancel: %v", err)
	}
}

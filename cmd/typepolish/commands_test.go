package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/config"
)

func TestScanWindow(t *testing.T) {
	settings := config.NewSettings()
	settings.Discovery.TimeoutSeconds = 12

	if got := scanWindow(false, 5, settings); got != 12*time.Second {
		t.Errorf("unchanged flag should use the configured timeout, got %v", got)
	}
	if got := scanWindow(true, 5, settings); got != 5*time.Second {
		t.Errorf("explicit flag should win over the configured timeout, got %v", got)
	}
}

func TestNewGatewayClient_TimeoutFlagOverride(t *testing.T) {
	settings := config.NewSettings()
	settings.Server.TimeoutSeconds = 30

	timeoutSeconds = 0
	client := newGatewayClient(settings)
	if client.HTTPClient.Timeout != 30*time.Second {
		t.Errorf("default timeout = %v, want the configured 30s", client.HTTPClient.Timeout)
	}

	timeoutSeconds = 3
	defer func() { timeoutSeconds = 0 }()
	client = newGatewayClient(settings)
	if client.HTTPClient.Timeout != 3*time.Second {
		t.Errorf("flag timeout = %v, want 3s", client.HTTPClient.Timeout)
	}
}

func TestRunCorrect_ServerRejectionExitsNonZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvServerURL, srv.URL)

	correctCmd.SetContext(context.Background())
	correctCmd.SilenceUsage = false

	err := runCorrect(correctCmd, []string{"hello there"})
	if err == nil {
		t.Fatal("expected an error for a rejected request")
	}
	if !correctCmd.SilenceUsage {
		t.Error("a gateway failure is not a usage error; usage output should be silenced")
	}
}

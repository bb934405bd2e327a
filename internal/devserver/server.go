package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/discovery"
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/gateway"
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/logging"
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/version"
)

// Config holds the dev server configuration
type Config struct {
	Host     string
	Port     int
	Announce bool   // Advertise the server over mDNS
	Name     string // mDNS instance name (default "typepolish-dev")
	LogLevel string
}

// Server is the local development correction server. It implements the
// TypePolish wire contract with deterministic transforms.
type Server struct {
	config   *Config
	httpSrv  *http.Server
	listener net.Listener
	ready    chan struct{} // closed once the listener is accepting
	shutdown func()        // mDNS unregister, nil when not announcing
}

// New creates a new dev server instance
func New(config *Config) (*Server, error) {
	if err := logging.Initialize(config.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	if config.Name == "" {
		config.Name = "typepolish-dev"
	}

	s := &Server{config: config, ready: make(chan struct{})}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc(gateway.PathCorrect, s.handleCorrect)
	mux.HandleFunc(gateway.PathPolishAI, s.handlePolishAI)
	mux.HandleFunc(gateway.PathRewriteTone, s.handleRewriteTone)

	s.httpSrv = &http.Server{
		Handler:           s.logRequests(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Ready returns a channel closed once the listener is accepting
// connections.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the address the server is listening on. Valid once Ready is
// closed.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start begins serving. It blocks until the context is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener
	close(s.ready)

	logging.Info("Dev server listening",
		zap.String("addr", listener.Addr().String()),
		zap.String("version", version.Version),
	)

	if s.config.Announce {
		port := listener.Addr().(*net.TCPAddr).Port
		shutdown, err := discovery.Announce(s.config.Name, port, map[string]string{
			"version": version.Version,
			"path":    "/",
		})
		if err != nil {
			// mDNS being unavailable should not stop a dev server
			logging.Warn("mDNS announce failed", zap.Error(err))
		} else {
			s.shutdown = shutdown
			logging.Info("Announced over mDNS", zap.String("instance", s.config.Name))
		}
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpSrv.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		return s.Stop()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	if s.shutdown != nil {
		s.shutdown()
		s.shutdown = nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

// logRequests wraps the mux with request logging.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]string{"message": "TypePolish backend running"})
}

type correctRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	var req correctRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, correct(req.Text, gateway.Mode(req.Mode)))
}

type polishAIRequest struct {
	Text  string `json:"text"`
	Tone  string `json:"tone"`
	Style string `json:"style"`
}

func (s *Server) handlePolishAI(w http.ResponseWriter, r *http.Request) {
	var req polishAIRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, polishAI(req.Text, gateway.Tone(req.Tone), gateway.Style(req.Style)))
}

type rewriteToneRequest struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

func (s *Server) handleRewriteTone(w http.ResponseWriter, r *http.Request) {
	var req rewriteToneRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, rewriteTone(req.Text, gateway.Tone(req.Tone)))
}

// decodeJSON parses a POST body into dst. Writes the error response and
// returns false when the request is unusable.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := decoder.Decode(dst); err != nil {
		logging.Warn("Rejecting malformed request body", zap.Error(err))
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error("Failed to encode response", zap.Error(err))
	}
}

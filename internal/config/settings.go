package config

import "time"

// EnvServerURL is the environment variable that overrides the configured
// correction server base URL. Useful for pointing the client at a staging
// backend without touching the config file.
const EnvServerURL = "TYPEPOLISH_SERVER_URL"

// Default values applied when the config file is missing or incomplete.
const (
	DefaultBaseURL          = "http://127.0.0.1:8000"
	DefaultTimeoutSeconds   = 15
	DefaultDebounceMs       = 600
	DefaultMode             = "grammar"
	DefaultStyle            = "neutral"
	DefaultDiscoveryTimeout = 5
)

// Settings represents the entire user configuration file.
type Settings struct {
	Version   int                `yaml:"version"`
	Server    *ServerSettings    `yaml:"server,omitempty"`
	Editor    *EditorSettings    `yaml:"editor,omitempty"`
	Discovery *DiscoverySettings `yaml:"discovery,omitempty"`
}

// ServerSettings describes how to reach the correction backend.
type ServerSettings struct {
	BaseURL        string `yaml:"base_url"`        // Correction server base URL
	TimeoutSeconds int    `yaml:"timeout_seconds"` // Per-request timeout
}

// EditorSettings holds the editor defaults restored on startup.
type EditorSettings struct {
	Realtime   bool   `yaml:"realtime"`        // Correct automatically while typing
	DebounceMs int    `yaml:"debounce_ms"`     // Quiet period before a realtime correction fires
	Mode       string `yaml:"mode"`            // grammar, professional or casual
	Style      string `yaml:"style,omitempty"` // Style profile for AI rewrites
}

// DiscoverySettings controls mDNS discovery of local development servers.
type DiscoverySettings struct {
	Enabled        bool `yaml:"enabled"`
	TimeoutSeconds int  `yaml:"timeout_seconds"`
}

// NewSettings creates Settings populated with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Server: &ServerSettings{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Editor: &EditorSettings{
			Realtime:   true,
			DebounceMs: DefaultDebounceMs,
			Mode:       DefaultMode,
			Style:      DefaultStyle,
		},
		Discovery: &DiscoverySettings{
			Enabled:        true,
			TimeoutSeconds: DefaultDiscoveryTimeout,
		},
	}
}

// Normalize fills in any missing sections or zero values with defaults.
// Called after loading so partially written config files still work.
func (s *Settings) Normalize() {
	if s.Server == nil {
		s.Server = &ServerSettings{}
	}
	if s.Server.BaseURL == "" {
		s.Server.BaseURL = DefaultBaseURL
	}
	if s.Server.TimeoutSeconds <= 0 {
		s.Server.TimeoutSeconds = DefaultTimeoutSeconds
	}

	if s.Editor == nil {
		s.Editor = &EditorSettings{Realtime: true}
	}
	if s.Editor.DebounceMs <= 0 {
		s.Editor.DebounceMs = DefaultDebounceMs
	}
	if s.Editor.Mode == "" {
		s.Editor.Mode = DefaultMode
	}
	if s.Editor.Style == "" {
		s.Editor.Style = DefaultStyle
	}

	if s.Discovery == nil {
		s.Discovery = &DiscoverySettings{Enabled: true}
	}
	if s.Discovery.TimeoutSeconds <= 0 {
		s.Discovery.TimeoutSeconds = DefaultDiscoveryTimeout
	}
}

// Timeout returns the per-request timeout as a duration.
func (s *ServerSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// DebounceWindow returns the realtime quiet period as a duration.
func (e *EditorSettings) DebounceWindow() time.Duration {
	return time.Duration(e.DebounceMs) * time.Millisecond
}

// Timeout returns the discovery scan timeout as a duration.
func (d *DiscoverySettings) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

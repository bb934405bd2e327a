package discovery

import (
	"fmt"
	"time"
)

// Server represents a TypePolish correction server found on the local
// network.
type Server struct {
	// Name is the mDNS instance name (e.g. "typepolish-dev")
	Name string

	// Hostname is the mDNS hostname (e.g. "devbox.local.")
	Hostname string

	// IP is the IPv4 address
	IP string

	// Port is the HTTP port
	Port int

	// Version is the server version advertised in TXT records, if any
	Version string

	// Metadata contains the remaining mDNS TXT record data
	Metadata map[string]string

	// DiscoveredAt is when the server was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable description of the server.
func (s *Server) String() string {
	return fmt.Sprintf("TypePolish server %q at %s:%d", s.Name, s.IP, s.Port)
}

// BaseURL returns the HTTP base URL for the server.
func (s *Server) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", s.IP, s.Port)
}

// GetMetadata retrieves a TXT metadata value by key, or empty string.
func (s *Server) GetMetadata(key string) string {
	if s.Metadata == nil {
		return ""
	}
	return s.Metadata[key]
}

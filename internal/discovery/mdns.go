package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the mDNS service type TypePolish dev servers
	// advertise under
	ServiceType = "_typepolish._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for server discovery
	DefaultScanTimeout = 5 * time.Second
)

// Scanner handles mDNS discovery of local correction servers
type Scanner struct {
	// Timeout is the maximum time to wait for discovery
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan discovers all TypePolish servers on the local network.
// Returns the list of discovered servers or an error.
func (s *Scanner) Scan() ([]*Server, error) {
	return s.ScanWithContext(context.Background())
}

// ScanWithContext discovers servers with a custom context
func (s *Scanner) ScanWithContext(ctx context.Context) ([]*Server, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	servers := make([]*Server, 0)
	done := make(chan struct{})

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		defer close(done)
		for entry := range entries {
			if server := parseServiceEntry(entry); server != nil {
				servers = append(servers, server)
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	// Wait for the timeout, then for the entry channel to drain
	<-ctx.Done()
	<-done

	return servers, nil
}

// ScanForServers discovers servers with the given timeout. Convenience
// wrapper around Scanner for one-shot callers.
func ScanForServers(timeout time.Duration) ([]*Server, error) {
	scanner := NewScanner()
	if timeout > 0 {
		scanner.Timeout = timeout
	}
	return scanner.Scan()
}

// parseServiceEntry converts an mDNS service entry into a Server.
// Returns nil for entries without a usable IPv4 address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Server {
	if entry == nil || len(entry.AddrIPv4) == 0 {
		return nil
	}

	server := &Server{
		Name:         entry.Instance,
		Hostname:     entry.HostName,
		IP:           entry.AddrIPv4[0].String(),
		Port:         entry.Port,
		Metadata:     parseTXTRecords(entry.Text),
		DiscoveredAt: time.Now(),
	}
	server.Version = server.Metadata["version"]

	return server
}

// parseTXTRecords converts "key=value" TXT records into a map. Records
// without an equals sign are stored with an empty value.
func parseTXTRecords(records []string) map[string]string {
	metadata := make(map[string]string, len(records))
	for _, record := range records {
		if record == "" {
			continue
		}
		key, value, found := strings.Cut(record, "=")
		if !found {
			metadata[record] = ""
			continue
		}
		metadata[key] = value
	}
	return metadata
}

// Announce registers a TypePolish server on the local network so clients
// can find it with Scan. The returned shutdown function unregisters the
// service.
func Announce(instance string, port int, metadata map[string]string) (func(), error) {
	txt := make([]string, 0, len(metadata))
	for key, value := range metadata {
		txt = append(txt, fmt.Sprintf("%s=%s", key, value))
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	return server.Shutdown, nil
}

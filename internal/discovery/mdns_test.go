package discovery

import (
	"net"
	"testing"

	"github.com/grandcat/zeroconf"
)

func TestParseServiceEntry(t *testing.T) {
	entry := &zeroconf.ServiceEntry{
		HostName: "devbox.local.",
		Port:     8000,
		Text:     []string{"version=v1.0.0", "path=/"},
		AddrIPv4: []net.IP{net.ParseIP("192.168.1.42")},
	}
	entry.Instance = "typepolish-dev"

	server := parseServiceEntry(entry)
	if server == nil {
		t.Fatal("parseServiceEntry() = nil, want server")
	}

	if server.Name != "typepolish-dev" {
		t.Errorf("Name = %q", server.Name)
	}
	if server.IP != "192.168.1.42" {
		t.Errorf("IP = %q", server.IP)
	}
	if server.Port != 8000 {
		t.Errorf("Port = %d", server.Port)
	}
	if server.Version != "v1.0.0" {
		t.Errorf("Version = %q", server.Version)
	}
	if server.GetMetadata("path") != "/" {
		t.Errorf("path metadata = %q", server.GetMetadata("path"))
	}
	if server.DiscoveredAt.IsZero() {
		t.Error("DiscoveredAt should be set")
	}
}

func TestParseServiceEntry_NoIPv4(t *testing.T) {
	entry := &zeroconf.ServiceEntry{Port: 8000}

	if server := parseServiceEntry(entry); server != nil {
		t.Errorf("entries without IPv4 should be skipped, got %+v", server)
	}
}

func TestParseServiceEntry_Nil(t *testing.T) {
	if server := parseServiceEntry(nil); server != nil {
		t.Errorf("parseServiceEntry(nil) = %+v, want nil", server)
	}
}

func TestParseTXTRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []string
		wantKey string
		want    string
	}{
		{"key value pair", []string{"version=v1.2.3"}, "version", "v1.2.3"},
		{"value containing equals", []string{"note=a=b"}, "note", "a=b"},
		{"bare key", []string{"standalone"}, "standalone", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := parseTXTRecords(tt.records)
			if got := metadata[tt.wantKey]; got != tt.want {
				t.Errorf("metadata[%q] = %q, want %q", tt.wantKey, got, tt.want)
			}
		})
	}
}

func TestParseTXTRecords_SkipsEmpty(t *testing.T) {
	metadata := parseTXTRecords([]string{"", "version=v1"})
	if len(metadata) != 1 {
		t.Errorf("metadata = %v, empty records should be skipped", metadata)
	}
}

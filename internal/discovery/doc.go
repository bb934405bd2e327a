// Package discovery provides mDNS discovery of TypePolish correction servers
// on the local network.
//
// Development servers started with typepolish-server advertise themselves as
// "_typepolish._tcp" services. The client's scan command (and the terminal
// editor's server picker) browse for these services so a locally running
// backend can be found without typing its address.
//
// # Usage Example
//
//	servers, err := discovery.ScanForServers(5 * time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, server := range servers {
//	    fmt.Println(server.BaseURL())
//	}
//
// On the server side:
//
//	shutdown, err := discovery.Announce("typepolish-dev", 8000, map[string]string{
//	    "version": version.Version,
//	})
//	defer shutdown()
//
// Discovery is best effort: multicast DNS may be blocked on some networks,
// and a failed scan is not an error condition for the client, which falls
// back to the configured server address.
package discovery

// Typepolish-server is a local development backend for TypePolish.
//
// It serves the correction API (/correct, /polish-ai, /rewrite-tone) with
// deterministic text transforms, so the client can be developed and
// demonstrated without the hosted AI backend. The server can announce
// itself over mDNS for discovery by 'typepolish scan'.
//
// Usage:
//
//	typepolish-server [flags]
//
// See 'typepolish-server --help' for available options.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/devserver"
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Server flags
var (
	host     string
	port     int
	announce bool
	name     string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "typepolish-server",
	Short: "TypePolish Development Server",
	Long: `A local development backend implementing the TypePolish correction API.

Responses are deterministic text transforms, useful for developing and
testing the client without the hosted backend. Use --announce to make
the server discoverable via 'typepolish scan'.`,
	Version: version.Version,
	Example: `  # Start on the default port
  typepolish-server

  # Custom port with debug logging
  typepolish-server --port 9000 --log-level debug

  # Announce over mDNS for client discovery
  typepolish-server --announce --name office-dev`,
	RunE: runServer,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&host, "host", "127.0.0.1", "Listen address (use 0.0.0.0 for all interfaces)")
	rootCmd.Flags().IntVar(&port, "port", 8000, "Listen port")
	rootCmd.Flags().BoolVar(&announce, "announce", false, "Advertise the server over mDNS")
	rootCmd.Flags().StringVar(&name, "name", "", "mDNS instance name")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	config := &devserver.Config{
		Host:     host,
		Port:     port,
		Announce: announce,
		Name:     name,
		LogLevel: logLevel,
	}

	srv, err := devserver.New(config)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-srv.Ready()
		fmt.Printf("TypePolish dev server listening on http://%s\n", srv.Addr())
	}()

	return srv.Start(ctx)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("typepolish-server %s (commit: %s)\n", version.Version, version.Commit)
	},
}

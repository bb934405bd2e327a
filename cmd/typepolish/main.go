// Typepolish is a terminal client for the TypePolish correction backend.
//
// It provides an interactive polishing editor with realtime grammar
// correction, AI-assisted rewriting, and tone adjustment, plus one-shot
// subcommands for shell pipelines.
//
// Usage:
//
//	typepolish [command] [flags]
//
// Running without arguments launches the interactive editor.
// See 'typepolish --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/logging"
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/version"
)

func main() {
	logging.InitializeFromEnv()

	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typepolish",
	Short: "TypePolish Writing Assistant",
	Long: `A terminal client for the TypePolish correction backend.

Provides an interactive editor with realtime grammar correction,
AI-assisted rewriting, tone adjustment, and writing style profiles.

If no command is specified, the interactive editor will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the editor when no subcommand provided
		return runEditor(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("typepolish %s (commit: %s)\n", version.Version, version.Commit)
	},
}

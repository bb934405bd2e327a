package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/config"
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/discovery"
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/gateway"
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/ui"
)

// Command flags
var (
	serverURL      string
	timeoutSeconds int
	modeFlag       string
	toneFlag       string
	styleFlag      string
	scanTimeout    int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Backend base URL (overrides config and TYPEPOLISH_SERVER_URL)")
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 0, "Request timeout in seconds (0 = configured default)")

	rootCmd.AddCommand(correctCmd)
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(toneCmd)
	rootCmd.AddCommand(scanCmd)
}

// loadSettings reads the config file, falling back to defaults when the
// file does not exist yet.
func loadSettings() (*config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return settings, nil
}

// resolveServerURL picks the backend address: flag, then environment,
// then config file.
func resolveServerURL(settings *config.Settings) string {
	if serverURL != "" {
		return strings.TrimRight(serverURL, "/")
	}
	return settings.ServerURL()
}

func newGatewayClient(settings *config.Settings) *gateway.Client {
	client := gateway.NewClientWithTimeout(resolveServerURL(settings), settings.Server.Timeout())
	if timeoutSeconds > 0 {
		client.SetTimeout(time.Duration(timeoutSeconds) * time.Second)
	}
	return client
}

// readText gathers the text to polish from command arguments, or from
// stdin when the command is part of a pipeline.
func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no text provided (pass text as arguments or pipe it via stdin)")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no text provided on stdin")
	}
	return text, nil
}

// printResult writes the polished text to stdout and the summary to
// stderr, so pipelines receive only the text.
func printResult(result gateway.Result) {
	fmt.Println(result.CorrectedText)
	if result.ChangesSummary != "" {
		fmt.Fprintln(os.Stderr, result.ChangesSummary)
	}
}

// runEditor launches the interactive TUI. Used by the bare root command.
func runEditor(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the interactive editor requires a terminal (use 'typepolish correct' for pipelines)")
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	base := resolveServerURL(settings)
	client := newGatewayClient(settings)
	return ui.RunEditor(client, settings, base)
}

// correctCmd polishes text once using the grammar correction endpoint
var correctCmd = &cobra.Command{
	Use:   "correct [text...]",
	Short: "Correct grammar and spelling",
	Long: `Send text to the backend for grammar and spelling correction.

Text can be passed as arguments or piped via stdin. The corrected text
is written to stdout; the change summary goes to stderr so the command
composes cleanly in pipelines.`,
	Example: `  # Correct a sentence
  typepolish correct "i has went to the market"

  # Correct a file in a pipeline
  cat draft.txt | typepolish correct > polished.txt

  # Professional mode against a specific server
  typepolish correct --mode professional --server http://10.0.0.5:8000 "hey bro"`,
	RunE: runCorrect,
}

func init() {
	correctCmd.Flags().StringVar(&modeFlag, "mode", "", "Correction mode (grammar, professional, casual)")
}

func runCorrect(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	mode := gateway.Mode(settings.Editor.Mode)
	if modeFlag != "" {
		mode = gateway.Mode(modeFlag)
	}
	if !mode.Valid() {
		return fmt.Errorf("invalid mode %q (valid: %v)", mode, gateway.Modes)
	}

	client := newGatewayClient(settings)
	result, err := client.Correct(cmd.Context(), text, mode)
	printResult(result)
	if err != nil {
		cmd.SilenceUsage = true
		return err
	}
	return nil
}

// rewriteCmd polishes text using the AI rewrite endpoint
var rewriteCmd = &cobra.Command{
	Use:   "rewrite [text...]",
	Short: "Rewrite text with AI polish",
	Long: `Send text to the backend's AI rewrite endpoint.

Optionally applies a tone and a writing style profile in the same pass.`,
	Example: `  # Plain AI rewrite
  typepolish rewrite "i think we should maybe do the thing"

  # Confident tone with the corporate style profile
  typepolish rewrite --tone confident --style corporate "i think we should do it"`,
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().StringVar(&toneFlag, "tone", "", "Tone to apply (friendly, professional, confident, calm, caring, persuasive)")
	rewriteCmd.Flags().StringVar(&styleFlag, "style", "", "Writing style profile (neutral, student, corporate, ielts, romantic)")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	tone := gateway.Tone(toneFlag)
	if toneFlag != "" && !tone.Valid() {
		return fmt.Errorf("invalid tone %q (valid: %v)", tone, gateway.Tones)
	}

	style := gateway.Style(settings.Editor.Style)
	if styleFlag != "" {
		style = gateway.Style(styleFlag)
	}
	if !style.Valid() {
		return fmt.Errorf("invalid style %q (valid: %v)", style, gateway.Styles)
	}

	client := newGatewayClient(settings)
	result, err := client.PolishAI(cmd.Context(), text, tone, style)
	printResult(result)
	if err != nil {
		cmd.SilenceUsage = true
		return err
	}
	return nil
}

// toneCmd adjusts the tone of already-written text
var toneCmd = &cobra.Command{
	Use:   "tone <tone> [text...]",
	Short: "Rewrite text in a specific tone",
	Long: `Rewrite text in one of the supported tones.

The first argument names the tone; the remaining arguments (or stdin)
provide the text.`,
	Example: `  # Friendly tone
  typepolish tone friendly "Please submit the report by Friday."

  # Professional tone from a pipeline
  echo "yo can u send the doc" | typepolish tone professional`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTone,
}

func runTone(cmd *cobra.Command, args []string) error {
	tone := gateway.Tone(args[0])
	if !tone.Valid() {
		return fmt.Errorf("invalid tone %q (valid: %v)", args[0], gateway.Tones)
	}

	text, err := readText(args[1:])
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	client := newGatewayClient(settings)
	result, err := client.RewriteTone(cmd.Context(), text, tone)
	printResult(result)
	if err != nil {
		cmd.SilenceUsage = true
		return err
	}
	return nil
}

// scanCmd discovers TypePolish servers on the local network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for TypePolish servers on the network",
	Long: `Scan for TypePolish backend servers using mDNS/DNS-SD discovery.

Development servers started with --announce broadcast themselves on the
local network; this command lists every server it hears from.`,
	Example: `  # Scan for 5 seconds (default)
  typepolish scan

  # Longer scan for slow networks
  typepolish scan --timeout 15`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", int(discovery.DefaultScanTimeout/time.Second), "Scan timeout in seconds")
}

// scanWindow picks the scan duration: the --timeout flag when given,
// otherwise the configured discovery timeout.
func scanWindow(flagChanged bool, flagSeconds int, settings *config.Settings) time.Duration {
	if flagChanged {
		return time.Duration(flagSeconds) * time.Second
	}
	return settings.Discovery.Timeout()
}

func runScan(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if !settings.Discovery.Enabled {
		fmt.Println("Discovery is disabled in the configuration.")
		fmt.Println("Enable it by setting 'discovery.enabled: true' in the config file.")
		return nil
	}

	window := scanWindow(cmd.Flags().Changed("timeout"), scanTimeout, settings)
	fmt.Printf("Scanning for TypePolish servers (timeout: %ds)...\n\n", int(window/time.Second))

	servers, err := discovery.ScanForServers(window)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(servers) == 0 {
		fmt.Println("No servers found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Start a dev server with 'typepolish-server --announce'")
		fmt.Println("  - Check that mDNS traffic is allowed on your network")
		fmt.Println("  - Try increasing --timeout for slower networks")
		fmt.Println("  - Use --server to specify the address manually")
		return nil
	}

	fmt.Printf("Found %d server(s):\n\n", len(servers))

	for i, server := range servers {
		fmt.Printf("%d. %s\n", i+1, server.Name)
		fmt.Printf("   Address:  %s\n", server.BaseURL())
		if server.Version != "" {
			fmt.Printf("   Version:  %s\n", server.Version)
		}
		if len(server.Metadata) > 0 {
			fmt.Printf("   Metadata: %v\n", server.Metadata)
		}
		fmt.Println()
	}

	fmt.Println("Use 'typepolish --server <address>' to connect to a server")

	return nil
}

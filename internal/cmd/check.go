package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/FACorreiaa/population-dashboard/internal/app/api"
)

var checkFormat string

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe the remote API health endpoint",
	Long: `Calls the backend's health endpoint with the configured base URL and
prints the payload. Exits non-zero when the backend is unreachable.

Examples:
  population-dashboard check
  population-dashboard check --format yaml
`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFormat, "format", "json", "output format (json, yaml)")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	if checkFormat != "json" && checkFormat != "yaml" {
		return fmt.Errorf("unknown format: %s (supported: json, yaml)", checkFormat)
	}

	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := api.NewClient(api.Options{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}, logger)
	if err != nil {
		return err
	}
	payload, err := client.Health(cmd.Context())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), failStyle.Render("✗ "+cfg.API.BaseURL))
		return fmt.Errorf("backend at %s is unhealthy: %w", cfg.API.BaseURL, err)
	}
	// Status goes to stderr so stdout stays machine-readable.
	fmt.Fprintln(cmd.ErrOrStderr(), okStyle.Render("✓ "+cfg.API.BaseURL))

	return writePayload(cmd.OutOrStdout(), checkFormat, payload)
}

func writePayload(w io.Writer, format string, payload map[string]any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(payload)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

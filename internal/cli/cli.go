package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"eventdesk/internal/api"
	"eventdesk/internal/config"
	"eventdesk/internal/logger"
	"eventdesk/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// waitDeadline bounds the --wait readiness probe.
const waitDeadline = 30 * time.Second

var (
	flagConfig  string
	flagBaseURL string
	flagDataDir string
	flagFormat  string
	flagVerbose bool
	flagWait    bool
)

// cfg holds the resolved configuration after flag/file merging.
var cfg *config.Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eventdesk",
		Short: "Browse and manage events backed by a remote events API",
		Long: `A CLI for browsing, filtering, creating, editing, and deleting events.
Events reference categories and users fetched from the same API; edits are
tracked against the last saved state and unsaved changes guard destructive
actions.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Events API base URL (default http://localhost:3000)")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory for the offline snapshot (default ~/.local/share/eventdesk)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flagWait, "wait", false, "Wait for the API to become reachable before running")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newDeleteCmd())

	return cmd
}

// setup resolves configuration before any subcommand runs. Flags override
// config file values.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagFormat != "" {
		cfg.Format = flagFormat
	}
	format := OutputFormat(cfg.Format)
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", cfg.Format)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	return nil
}

// newClient builds the API client, optionally waiting for the server.
func newClient(cmd *cobra.Command) (*api.Client, error) {
	client := api.NewClient(cfg.BaseURL)
	if flagWait {
		if err := client.WaitReady(cmd.Context(), waitDeadline); err != nil {
			return nil, err
		}
	}
	return client, nil
}

// newStorage opens the offline snapshot cache.
func newStorage() (*storage.Storage, error) {
	return storage.New(cfg.DataDir)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	capabilitycli "github.com/thenoetrevino/leadbook/internal/cli/capability"
	credentialcli "github.com/thenoetrevino/leadbook/internal/cli/credential"
	exportcli "github.com/thenoetrevino/leadbook/internal/cli/export"
	leadcli "github.com/thenoetrevino/leadbook/internal/cli/lead"
	notecli "github.com/thenoetrevino/leadbook/internal/cli/note"
	"github.com/thenoetrevino/leadbook/internal/cli/styles"
	"github.com/thenoetrevino/leadbook/internal/config"
	"github.com/thenoetrevino/leadbook/internal/launcher"
	"github.com/thenoetrevino/leadbook/internal/logging"
	"github.com/thenoetrevino/leadbook/internal/tui/components"
)

var (
	cfg     *config.Config
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "leadbook",
	Short: "Leadbook - sales leads, notes and exports in the terminal",
	Long: `Leadbook keeps the sales leads of a contracting business.

Run without a command to open the terminal UI, or use the subcommands
below from scripts (every command accepts --json and --quiet).`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			_ = logFile.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cfg)
	},
}

func init() {
	rootCmd.AddCommand(leadcli.LeadCmd())
	rootCmd.AddCommand(notecli.NoteCmd())
	rootCmd.AddCommand(credentialcli.CredentialCmd())
	rootCmd.AddCommand(exportcli.ExportCmd())
	rootCmd.AddCommand(capabilitycli.CapabilityCmd())
}

// setup loads the configuration, starts logging and initializes styles
// before any command runs
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err = logging.Init(cfg.LogDir(), cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	slog.Debug("starting", "command", cmd.CommandPath())

	styles.Init(cfg.ColorScheme)
	components.InitStyles(cfg.ColorScheme)
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

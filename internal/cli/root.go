package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string

	// Shell flags
	startPath string
	appTitle  string
)

// rootCmd starts the terminal shell.
var rootCmd = &cobra.Command{
	Use:     "starterkit",
	Version: "dev",
	Short:   "Terminal app shell with routing, connectivity notices and a demo shop",
	Long: `starterkit opens a full-screen terminal application shell.

Pages are selected by location: press 1-4 for the navigation links, tab to
cycle, g to type a path, backspace to go back. The shell reports when the
network connection drops or returns, and the Shopping page keeps its cart in
a local sqlite database.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd.Context())
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $STARTERKIT_CONFIG or ~/.config/starterkit/config.toml)")
	rootCmd.Flags().StringVar(&startPath, "path", "", "Location to open, e.g. /shopping (default: last visited)")
	rootCmd.Flags().StringVar(&appTitle, "title", "", "Override the application title")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(ordersCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the starterkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)
}

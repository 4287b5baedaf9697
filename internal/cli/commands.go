package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/starterkit/internal/config"
	"github.com/jask/starterkit/internal/database/repository"
	"github.com/jask/starterkit/internal/service"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file populated with the current settings",
	Long: `Write the effective configuration (defaults, file and STARTERKIT_* env
overrides) to the config file. An existing file is kept unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.Path()
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := config.Save(cfg, path); err != nil {
			return err
		}
		printSuccess(cmd.OutOrStdout(), "Wrote "+path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		printSection(w, "Configuration")
		printField(w, "database.path", cfg.Database.Path)
		printField(w, "ui.app_title", cfg.UI.AppTitle)
		printField(w, "ui.wide_query", cfg.UI.WideQuery)
		printField(w, "ui.max_width", cfg.UI.MaxWidth)
		printField(w, "routing.default_page", cfg.Routing.DefaultPage)
		printField(w, "routing.not_found_fallback", cfg.Routing.NotFoundFallback)
		printField(w, "network.probe_addr", cfg.Network.ProbeAddr)
		printField(w, "network.probe_interval", cfg.Network.ProbeInterval)
		printField(w, "network.probe_timeout", cfg.Network.ProbeTimeout)
		printField(w, "snackbar.duration", cfg.Snackbar.Duration)
		printField(w, "log.file", cfg.Log.File)
		printField(w, "log.level", cfg.Log.Level)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Empty the cart, delete orders and restock the shop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		db, err := openDatabase(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := (&service.MaintenanceService{DB: db}).Reset(cmd.Context()); err != nil {
			return err
		}
		printSuccess(cmd.OutOrStdout(), "Shop reset")
		return nil
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List completed checkouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		db, err := openDatabase(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		orders, err := repository.NewOrderRepo(db).List(cmd.Context())
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		printSection(w, "Orders")
		if len(orders) == 0 {
			printEmptyState(w, "No orders yet.")
			return nil
		}
		for _, o := range orders {
			printField(w, o.CreatedAt.Local().Format("2006-01-02 15:04"),
				fmt.Sprintf("%s  %d items  $%d.%02d", o.ID, o.ItemCount, o.TotalCents/100, o.TotalCents%100))
		}
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

package app

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/daemon"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/logger"
)

func init() { //nolint: gochecknoinits
	seedCmd.Flags().StringVar(&configPath, "config", "./etc/", "Path to the configuration directory")
	ensureAdminsCmd.Flags().StringVar(&configPath, "config", "./etc/", "Path to the configuration directory")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(ensureAdminsCmd)
}

// openForCommand loads the configuration, initializes logging and opens a
// migrated database for one-shot commands.
func openForCommand() (*gorm.DB, error) {
	if cfg, err = config.ReadConfig(configPath); err != nil {
		return nil, err
	}

	if err = logger.Init(cfg.Log); err != nil {
		return nil, err
	}

	gdb, err := db.Open(&cfg)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(gdb); err != nil {
		return nil, err
	}

	return gdb, nil
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed an empty database with the demo dataset",
	RunE: func(_ *cobra.Command, _ []string) error {
		gdb, err := openForCommand()
		if err != nil {
			return err
		}

		return daemon.SeedIfEmpty(gdb)
	},
}

var ensureAdminsCmd = &cobra.Command{
	Use:   "ensure-admins",
	Short: "Create the required admin accounts if missing",
	RunE: func(_ *cobra.Command, _ []string) error {
		gdb, err := openForCommand()
		if err != nil {
			return err
		}

		return daemon.EnsureAdmins(gdb)
	},
}

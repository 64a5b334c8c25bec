// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dtg",
	Short: "dtg is the Digital Tech Group website backend",
	Long: `dtg serves the Digital Tech Group marketing site API: public content
endpoints, the session-authenticated admin panel API and image uploads.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

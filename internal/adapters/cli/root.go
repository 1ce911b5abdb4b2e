package cli

import (
	"github.com/spf13/cobra"
)

// Version is stamped by the build
var Version = "0.1.0"

// NewRootCommand builds the starforge command tree
func NewRootCommand() *cobra.Command {
	var configPath string
	var pidPath string

	rootCmd := &cobra.Command{
		Use:          "starforge",
		Short:        "Starforge hangar production scheduler",
		Long:         "Tick-driven production scheduler for the Starforge persistent-world game.",
		Version:      Version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&pidPath, "pidfile", "starforge.pid", "path to the daemon PID file")

	rootCmd.AddCommand(newRunCommand(&configPath, &pidPath))
	rootCmd.AddCommand(newOrderCommand(&configPath, &pidPath))
	rootCmd.AddCommand(newMissionCommand(&configPath, &pidPath))
	rootCmd.AddCommand(newStatusCommand(&configPath))
	rootCmd.AddCommand(newPruneCommand(&configPath, &pidPath))

	return rootCmd
}

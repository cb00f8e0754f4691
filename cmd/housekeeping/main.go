package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/housekeeping/internal/cli"
	"github.com/example/housekeeping/internal/version"
	"github.com/example/housekeeping/internal/wire"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "housekeeping",
		Short:   "Housekeeping board for hotel room cleaning status",
		Version: version.String(),
		Long: `housekeeping tracks hotel rooms through Dirty → Cleaning → Inspecting → Ready.
Rooms carry assigned staff, notes and a VIP priority flag; the board is kept
in a local store and survives restarts.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			wire.SetConfigPath(configPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.housekeeping/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.RoomCmd())
	rootCmd.AddCommand(cli.BoardCmd())
	rootCmd.AddCommand(cli.TUICmd())

	err := rootCmd.Execute()
	if cerr := wire.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

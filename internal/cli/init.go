package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/housekeeping/internal/config"
	"github.com/example/housekeeping/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config and create the store",
		Long:  `Initialize ~/.housekeeping/ with config.yaml and an empty store (seeded with sample rooms unless disabled).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			path, err := wire.ConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}

			if _, err := os.Stat(path); err == nil && !force {
				fmt.Fprintf(out, "ℹ️  Config already exists at %s (use --force to overwrite)\n", path)
			} else {
				cfg := config.Default(filepath.Dir(path))
				if err := config.SaveConfig(path, cfg); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Config written to %s\n", path)
			}

			svc, err := wire.RoomService()
			if err != nil {
				return fmt.Errorf("failed to initialize store: %w", err)
			}
			cfg, _ := wire.Config()

			rooms := svc.ListRooms(context.Background())
			fmt.Fprintf(out, "✓ Store ready (%s, %d rooms)\n", cfg.Store.Backend, len(rooms))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  housekeeping board")
			fmt.Fprintln(out, "  housekeeping tui")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config with defaults")

	return cmd
}

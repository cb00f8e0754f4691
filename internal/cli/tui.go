package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/example/housekeeping/internal/tui"
	"github.com/example/housekeeping/internal/wire"
)

// TUICmd returns the interactive board command
func TUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Long: `Open the interactive housekeeping board.

Keys:
  ←/→/↑/↓  move between columns and rooms
  enter     open the selected room
  a         add a room
  C         clear all rooms
  q         quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := wire.Config()
			if err != nil {
				return err
			}
			svc, err := wire.RoomService()
			if err != nil {
				return err
			}

			app := tui.NewApp(context.Background(), svc, cfg.Board.Staff, wire.Logger().Named("tui"))
			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run board: %w", err)
			}
			return nil
		},
	}
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/housekeeping/internal/adapters/cli"
	"github.com/example/housekeeping/internal/wire"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the housekeeping board",
		Long: `Print the four status columns with their rooms and counts.

Examples:
  housekeeping board
  housekeeping board --summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			renderer := cliadapter.NewBoardAdapter(out)
			if summary {
				renderer = cliadapter.NewSummaryAdapter(out)
			}

			ctrl, err := wire.Controller(nil, renderer)
			if err != nil {
				return err
			}
			ctrl.Refresh(context.Background())
			return nil
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "Only print the counts")

	return cmd
}

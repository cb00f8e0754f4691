package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/housekeeping/internal/adapters/cli"
	coreroom "github.com/example/housekeeping/internal/core/room"
	"github.com/example/housekeeping/internal/interaction"
	"github.com/example/housekeeping/internal/wire"
)

// RoomCmd returns the room command
func RoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Manage rooms on the board",
		Long:  `Add, list, update and remove rooms on the housekeeping board.`,
	}

	cmd.AddCommand(roomAddCmd())
	cmd.AddCommand(roomListCmd())
	cmd.AddCommand(roomShowCmd())
	cmd.AddCommand(roomUpdateCmd())
	cmd.AddCommand(roomDeleteCmd())
	cmd.AddCommand(roomClearCmd())

	return cmd
}

func roomAddCmd() *cobra.Command {
	var staff string
	var notes string
	var priority bool

	cmd := &cobra.Command{
		Use:   "add [number]",
		Short: "Add a room in the Dirty status",
		Long: `Add a room to the board. New rooms start Dirty.

Examples:
  housekeeping room add 305
  housekeeping room add 306 --staff Rosa --notes "Late checkout" --priority`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ctrl, err := wire.Controller(
				cliadapter.NewPrompter(cmd.InOrStdin(), out, false),
				cliadapter.NewSummaryAdapter(out),
			)
			if err != nil {
				return err
			}

			_, err = ctrl.SubmitAdd(context.Background(), interaction.FormFields{
				Number:   args[0],
				Staff:    staff,
				Notes:    notes,
				Priority: priority,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&staff, "staff", "s", "", "Assigned staff member")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes for the room")
	cmd.Flags().BoolVarP(&priority, "priority", "p", false, "Mark as VIP priority")

	return cmd
}

func roomListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rooms ordered by number",
		Long: `List all rooms, lowest room number first.

Examples:
  housekeeping room list
  housekeeping room list --status ready`,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.RoomAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = adapter.List(context.Background(), status)
			return err
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only rooms in this status (Dirty, Cleaning, Inspecting, Ready)")

	return cmd
}

func roomShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [room-id]",
		Short: "Show room details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRoomID(args[0])
			if err != nil {
				return err
			}
			adapter, err := wire.RoomAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = adapter.Show(context.Background(), id)
			return err
		},
	}
}

func roomUpdateCmd() *cobra.Command {
	var status string
	var staff string
	var notes string
	var priority bool

	cmd := &cobra.Command{
		Use:   "update [room-id]",
		Short: "Update a room's status, staff, notes or priority",
		Long: `Update a room. Flags that are not given keep their current value.

Examples:
  housekeeping room update 3 --status ready
  housekeeping room update 6 --staff John --priority=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRoomID(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ctrl, err := wire.Controller(
				cliadapter.NewPrompter(cmd.InOrStdin(), out, false),
				cliadapter.NewSummaryAdapter(out),
			)
			if err != nil {
				return err
			}

			ctx := context.Background()
			fields, ok := ctrl.OpenRoom(ctx, id)
			if !ok {
				return fmt.Errorf("%w: room id %d", coreroom.ErrNotFound, id)
			}

			flags := cmd.Flags()
			if flags.Changed("status") {
				fields.Status = status
			}
			if flags.Changed("staff") {
				fields.Staff = staff
			}
			if flags.Changed("notes") {
				fields.Notes = notes
			}
			if flags.Changed("priority") {
				fields.Priority = priority
			}

			return ctrl.SubmitUpdate(ctx, fields)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status (Dirty, Cleaning, Inspecting, Ready)")
	cmd.Flags().StringVarP(&staff, "staff", "s", "", "Assigned staff member (empty for Unassigned)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes for the room")
	cmd.Flags().BoolVarP(&priority, "priority", "p", false, "VIP priority")

	return cmd
}

func roomDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [room-id]",
		Short: "Delete a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRoomID(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			prompter := cliadapter.NewPrompter(cmd.InOrStdin(), out, yes)
			ctrl, err := wire.Controller(prompter, cliadapter.NewSummaryAdapter(out))
			if err != nil {
				return err
			}

			ctx := context.Background()
			if _, ok := ctrl.OpenRoom(ctx, id); !ok {
				return fmt.Errorf("%w: room id %d", coreroom.ErrNotFound, id)
			}
			if err := ctrl.Delete(ctx); err != nil {
				return err
			}
			if prompter.Declined() {
				fmt.Fprintln(out, "Cancelled.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

func roomClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every room",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			prompter := cliadapter.NewPrompter(cmd.InOrStdin(), out, yes)
			ctrl, err := wire.Controller(prompter, cliadapter.NewSummaryAdapter(out))
			if err != nil {
				return err
			}

			if err := ctrl.ClearAll(context.Background()); err != nil {
				return err
			}
			if prompter.Declined() {
				fmt.Fprintln(out, "Cancelled.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

func parseRoomID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid room id %q: expected a number", arg)
	}
	return id, nil
}

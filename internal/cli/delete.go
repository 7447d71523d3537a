package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagYes bool

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().BoolVar(&flagYes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	if !flagYes {
		console := newConsole()
		prompt := fmt.Sprintf("Delete event %d? This action cannot be undone.", id)
		if !console.confirm(prompt) {
			fmt.Fprintln(os.Stdout, "Aborted.")
			return nil
		}
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	if err := client.DeleteEvent(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Deleted event %d.\n", id)
	return nil
}

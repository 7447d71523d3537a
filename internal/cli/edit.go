package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eventdesk/internal/form"
	"eventdesk/internal/refdata"
)

func newEditCmd() *cobra.Command {
	flags := &fieldFlags{}
	cmd := &cobra.Command{
		Use:   "edit <event-id>",
		Short: "Edit an existing event",
		Long: `Edit an existing event. Only the fields given as flags change; an
invocation that changes nothing performs no network write. With
--interactive, fields are prompted for one by one and abandoning unsaved
changes asks for confirmation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runEdit(cmd *cobra.Command, args []string, flags *fieldFlags) error {
	id, err := parseEventID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	store := refdata.NewStore(client)
	defer store.Close()
	store.Load(ctx)

	evt, err := client.GetEvent(ctx, id)
	if err != nil {
		return err
	}

	ref := store.Snapshot()
	ctrl := form.NewController(evt, ref.Categories, ref.Users)
	unsubscribe := store.Subscribe(func() {
		s := store.Snapshot()
		ctrl.ApplyReference(s.Categories, s.Users)
	})
	defer unsubscribe()

	flags.apply(cmd, ctrl)

	console := newConsole()
	if flags.interactive {
		console.editFields(ctrl)
		saved, err := console.submitLoop(ctx, ctrl, client)
		if err != nil || !saved {
			return err
		}
	} else {
		if !ctrl.Dirty() {
			fmt.Fprintln(os.Stdout, "No changes to save.")
			return nil
		}
		if _, err := ctrl.Submit(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "Updated event %d.\n", id)
	return WriteEvent(os.Stdout, ctrl.Event(), store.Snapshot(), OutputFormat(cfg.Format))
}

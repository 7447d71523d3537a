package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eventdesk/internal/form"
	"eventdesk/internal/refdata"
)

type fieldFlags struct {
	title       string
	description string
	image       string
	start       string
	end         string
	categories  string
	createdBy   int64
	interactive bool
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Event title")
	cmd.Flags().StringVar(&f.description, "description", "", "Event description")
	cmd.Flags().StringVar(&f.image, "image", "", "Image URL")
	cmd.Flags().StringVar(&f.start, "start", "", "Start time (2006-01-02T15:04, local)")
	cmd.Flags().StringVar(&f.end, "end", "", "End time (2006-01-02T15:04, local)")
	cmd.Flags().StringVar(&f.categories, "categories", "", "Comma-separated category ids")
	cmd.Flags().Int64Var(&f.createdBy, "created-by", 0, "Creator user id")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "Prompt for fields interactively")
}

// apply copies only the flags that were given on the command line into the
// controller, so an edit leaves unmentioned fields untouched.
func (f *fieldFlags) apply(cmd *cobra.Command, ctrl *form.Controller) {
	if cmd.Flags().Changed("title") {
		ctrl.SetTitle(f.title)
	}
	if cmd.Flags().Changed("description") {
		ctrl.SetDescription(f.description)
	}
	if cmd.Flags().Changed("image") {
		ctrl.SetImage(f.image)
	}
	if cmd.Flags().Changed("start") {
		ctrl.SetStartTime(f.start)
	}
	if cmd.Flags().Changed("end") {
		ctrl.SetEndTime(f.end)
	}
	if cmd.Flags().Changed("categories") {
		ctrl.SetCategoryIDs(parseIDList(f.categories))
	}
	if cmd.Flags().Changed("created-by") {
		ctrl.SetCreatedBy(f.createdBy)
	}
}

func newCreateCmd() *cobra.Command {
	flags := &fieldFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new event",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, flags *fieldFlags) error {
	ctx := cmd.Context()

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	store := refdata.NewStore(client)
	defer store.Close()
	store.Load(ctx)

	ref := store.Snapshot()
	ctrl := form.NewController(nil, ref.Categories, ref.Users)
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
			fmt.Fprintln(os.Stdout, "Nothing to create: no fields given.")
			return nil
		}
		if _, err := ctrl.Submit(ctx, client); err != nil {
			return err
		}
	}

	evt := ctrl.Event()
	fmt.Fprintf(os.Stdout, "Created event %d.\n", evt.ID)
	return WriteEvent(os.Stdout, evt, store.Snapshot(), OutputFormat(cfg.Format))
}

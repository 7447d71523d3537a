package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"eventdesk/internal/logger"
	"eventdesk/internal/model"
	"eventdesk/internal/refdata"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <event-id>",
		Short: "Show a single event with resolved category and creator labels",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
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
		// API unreachable: fall back to the offline snapshot.
		logger.Warn("event fetch failed, using cached snapshot", logger.Fields{"id": id}, err)
		st, serr := newStorage()
		if serr != nil {
			return err
		}
		snapshot, serr := st.Load()
		if serr != nil {
			return err
		}
		cached, serr := findCached(snapshot.Events, id)
		if serr != nil {
			return err
		}
		evt = cached
		store.Seed(snapshot.Categories, snapshot.Users)
		fmt.Fprintln(os.Stdout, "(offline: showing cached snapshot)")
	}

	return WriteEvent(os.Stdout, evt, store.Snapshot(), OutputFormat(cfg.Format))
}

func findCached(events []model.Event, id int64) (*model.Event, error) {
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, fmt.Errorf("event not found: %d", id)
}

func parseEventID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid event id: %q", arg)
	}
	return id, nil
}

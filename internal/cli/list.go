package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"eventdesk/internal/filter"
	"eventdesk/internal/logger"
	"eventdesk/internal/model"
	"eventdesk/internal/refdata"
	"eventdesk/internal/storage"
)

var (
	flagSearch   string
	flagCategory int64
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events, optionally filtered by title or category",
		RunE:  runList,
	}

	cmd.Flags().StringVar(&flagSearch, "search", "", "Case-insensitive title search term")
	cmd.Flags().Int64Var(&flagCategory, "category", 0, "Only events referencing this category id")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	store := refdata.NewStore(client)
	defer store.Close()
	store.Load(ctx)

	source := "api"
	events, err := client.ListEvents(ctx)
	if err != nil {
		// API unreachable: fall back to the offline snapshot.
		logger.Warn("event fetch failed, using cached snapshot", nil, err)
		st, serr := newStorage()
		if serr != nil {
			return err
		}
		snapshot, serr := st.Load()
		if serr != nil {
			return err
		}
		events = snapshot.Events
		store.Seed(snapshot.Categories, snapshot.Users)
		source = "cache"
	} else {
		refreshCache(events, store.Snapshot())
	}

	f := filter.Filter{Term: flagSearch, CategoryID: flagCategory}
	visible := f.Apply(events)

	result := &ListResult{
		FetchedAt:  time.Now().UTC(),
		Source:     source,
		Events:     visible,
		EventCount: len(visible),
	}
	if !f.IsEmpty() {
		result.Filter = f.String()
	}

	return WriteEvents(os.Stdout, result, store.Snapshot(), OutputFormat(cfg.Format), flagVerbose)
}

// refreshCache persists the latest fetch for offline fallback. Cache
// trouble is never worth failing a successful list over, so errors are
// logged and swallowed.
func refreshCache(events []model.Event, ref refdata.Snapshot) {
	st, err := newStorage()
	if err != nil {
		logger.Warn("snapshot cache unavailable", nil, err)
		return
	}
	snapshot := &storage.Snapshot{
		Events:     events,
		Categories: ref.Categories,
		Users:      ref.Users,
	}
	if err := st.Save(snapshot); err != nil {
		logger.Warn("snapshot cache write failed", nil, err)
	}
}

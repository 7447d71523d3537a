package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"eventdesk/internal/model"
	"eventdesk/internal/refdata"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ListResult contains the data written by the list command.
type ListResult struct {
	FetchedAt  time.Time     `json:"fetched_at"`
	Source     string        `json:"source"` // "api" or "cache"
	Events     []model.Event `json:"events"`
	EventCount int           `json:"event_count"`
	Filter     string        `json:"filter,omitempty"`
}

// WriteEvents writes the list result in the specified format.
func WriteEvents(w io.Writer, result *ListResult, ref refdata.Snapshot, format OutputFormat, verbose bool) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	if result.Source == "cache" {
		fmt.Fprintln(w, "(offline: showing cached snapshot)")
	}
	if result.EventCount == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	for i := range result.Events {
		evt := &result.Events[i]
		fmt.Fprintf(w, "%d: %s\n", evt.ID, evt.Title)
		if desc := FlattenDescription(evt.Description); desc != "" {
			fmt.Fprintf(w, "   %s\n", desc)
		}
		fmt.Fprintf(w, "   Start: %s\n", model.FormatDisplay(evt.StartTime))
		fmt.Fprintf(w, "   End:   %s\n", model.FormatDisplay(evt.EndTime))
		if len(evt.CategoryIDs) > 0 {
			fmt.Fprintf(w, "   Categories: %s\n", categoryLine(evt.CategoryIDs, ref.Categories))
		}
		if verbose {
			fmt.Fprintf(w, "   Image: %s\n", evt.Image)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d events\n", result.EventCount)
	return nil
}

// WriteEvent writes a single event in detail.
func WriteEvent(w io.Writer, evt *model.Event, ref refdata.Snapshot, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, evt)
	}

	fmt.Fprintf(w, "%s (id %d)\n", evt.Title, evt.ID)
	if desc := FlattenDescription(evt.Description); desc != "" {
		fmt.Fprintf(w, "%s\n", desc)
	}
	fmt.Fprintf(w, "Start: %s\n", model.FormatDisplay(evt.StartTime))
	fmt.Fprintf(w, "End:   %s\n", model.FormatDisplay(evt.EndTime))
	if len(evt.CategoryIDs) > 0 {
		fmt.Fprintf(w, "Categories: %s\n", categoryLine(evt.CategoryIDs, ref.Categories))
	}
	if evt.Image != "" {
		fmt.Fprintf(w, "Image: %s\n", evt.Image)
	}
	fmt.Fprintf(w, "Created by: %s\n", creatorLabel(evt.CreatedBy, ref.Users))
	return nil
}

// writeJSON outputs any result as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// categoryLine renders the category labels for an event. Ids with no
// matching category render as their raw id instead of disappearing.
func categoryLine(ids []int64, categories []model.Category) string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = categoryLabel(id, categories)
	}
	return strings.Join(labels, ", ")
}

func categoryLabel(id int64, categories []model.Category) string {
	for _, cat := range categories {
		if cat.ID == id {
			return cat.Name
		}
	}
	return fmt.Sprintf("Category %d", id)
}

// creatorLabel resolves the creator to a user name, falling back to the
// raw id when the user collection cannot resolve it.
func creatorLabel(id int64, users []model.User) string {
	for _, u := range users {
		if u.ID == id {
			return u.Name
		}
	}
	return fmt.Sprintf("user %d", id)
}

// FlattenDescription renders an event description for the terminal.
// Descriptions may carry HTML; tags are stripped and whitespace collapsed.
// Plain text passes through unchanged.
func FlattenDescription(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

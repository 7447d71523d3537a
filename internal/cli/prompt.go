package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"eventdesk/internal/form"
)

// console handles the interactive prompts for field editing, save
// confirmation, and the unsaved-changes guard.
type console struct {
	in  *bufio.Reader
	out io.Writer
}

func newConsole() *console {
	return &console{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// readLine returns one trimmed input line, or "" on EOF.
func (c *console) readLine() string {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// promptField shows the current value and returns the replacement, keeping
// the current value when the user just presses enter.
func (c *console) promptField(label, current string) string {
	fmt.Fprintf(c.out, "%s [%s]: ", label, current)
	if line := c.readLine(); line != "" {
		return line
	}
	return current
}

// editFields walks the editable fields one by one.
func (c *console) editFields(ctrl *form.Controller) {
	fields := ctrl.Fields()

	ctrl.SetTitle(c.promptField("Title", fields.Title))
	ctrl.SetDescription(c.promptField("Description", fields.Description))
	ctrl.SetImage(c.promptField("Image URL", fields.Image))
	ctrl.SetStartTime(c.promptField("Start time", fields.StartTime))
	ctrl.SetEndTime(c.promptField("End time", fields.EndTime))

	current := idListString(fields.CategoryIDs)
	ctrl.SetCategoryIDs(parseIDList(c.promptField("Category ids (comma separated)", current)))

	creator := c.promptField("Creator user id", strconv.FormatInt(fields.CreatedBy, 10))
	if id, err := strconv.ParseInt(creator, 10, 64); err == nil {
		ctrl.SetCreatedBy(id)
	}
}

// confirm asks a yes/no question, defaulting to no.
func (c *console) confirm(question string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", question)
	answer := strings.ToLower(c.readLine())
	return answer == "y" || answer == "yes"
}

// confirmDiscard presents the binary discard/stay choice.
func (c *console) confirmDiscard() form.Decision {
	fmt.Fprint(c.out, "You have unsaved changes. Discard them? [y/N]: ")
	answer := strings.ToLower(c.readLine())
	if answer == "y" || answer == "yes" {
		return form.Discard
	}
	return form.Stay
}

// submitLoop asks to save until the user either saves or leaves. Declining
// to save routes through the guard: discarding abandons the edits, staying
// returns to the save question. Reports whether a save happened.
func (c *console) submitLoop(ctx context.Context, ctrl *form.Controller, gw form.Gateway) (bool, error) {
	guard := form.NewGuard(ctrl, form.ConfirmerFunc(c.confirmDiscard))

	for {
		if !ctrl.Dirty() {
			fmt.Fprintln(c.out, "No changes to save.")
			return false, nil
		}

		if c.confirm("Save changes?") {
			if _, err := ctrl.Submit(ctx, gw); err != nil {
				var verr *form.ValidationError
				if errors.As(err, &verr) {
					// Recoverable: report and let the user fix the field.
					fmt.Fprintf(c.out, "Invalid: %s\n", verr)
					c.editFields(ctrl)
					continue
				}
				return false, err
			}
			return true, nil
		}

		left := guard.Leave(func() {
			fmt.Fprintln(c.out, "Changes discarded.")
		})
		if left {
			return false, nil
		}
		// Stay: back to the save question with edits intact.
	}
}

// parseIDList parses a comma-separated id list, silently skipping entries
// that are not integers.
func parseIDList(s string) []int64 {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func idListString(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}

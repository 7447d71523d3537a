package model

import "time"

// EditLayout is the minute-precision layout used for in-form editing,
// mirroring an HTML datetime-local value.
const EditLayout = "2006-01-02T15:04"

// Wire timestamps may or may not carry a zone. Zoned values are converted
// to local time for editing; naive values keep their clock time as written.
var (
	zonedLayouts = []string{time.RFC3339Nano, time.RFC3339}
	naiveLayouts = []string{"2006-01-02T15:04:05", EditLayout}
)

// ParseTimestamp parses a wire timestamp. Returns the zero time and false
// if no supported layout matches.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(time.Local), true
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// EditValue truncates a wire timestamp to the minute-precision editing
// representation. Unparseable values fall back to a plain prefix cut so a
// malformed record still round-trips through the form unchanged.
func EditValue(s string) string {
	if t, ok := ParseTimestamp(s); ok {
		return t.Format(EditLayout)
	}
	if len(s) > len(EditLayout) {
		return s[:len(EditLayout)]
	}
	return s
}

// ParseEditValue parses a minute-precision editing value in local time.
func ParseEditValue(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(EditLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// WireValue converts an editing value back to the full ISO-8601 wire form.
// Values that do not parse are passed through untouched; validation rejects
// them before any write.
func WireValue(edit string) string {
	t, ok := ParseEditValue(edit)
	if !ok {
		return edit
	}
	return t.Format(time.RFC3339)
}

// FormatDisplay renders a wire timestamp for human-readable output.
// Returns the raw string if it cannot be parsed.
func FormatDisplay(s string) string {
	t, ok := ParseTimestamp(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006 15:04")
}

package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DisplayLayout is the wire format the dashboard renders (DD/MM/YYYY).
// InputLayout is the format of HTML date controls (YYYY-MM-DD).
const (
	DisplayLayout = "02/01/2006"
	InputLayout   = "2006-01-02"
)

// ParseDisplayDate parses a DD/MM/YYYY string, optionally followed by a
// time suffix (" HH:MM AM/PM") which is ignored for filtering purposes.
// Malformed input returns ok=false, never an error or panic. Out-of-range
// day/month values roll over the way the dashboard's date type did, so
// "32/01/2024" becomes the 1st of February.
func ParseDisplayDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// Drop the time suffix; only the date component matters here.
	if idx := strings.IndexByte(s, ' '); idx >= 0 {
		s = s[:idx]
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// InRange reports whether dateStr falls inside [startDate, endDate], both
// bounds inclusive and in display format. A record date that fails to
// parse never matches. An empty or unparsable bound disables that side of
// the range rather than erroring; callers rely on garbage date-filter
// input not aborting a filter pass.
func InRange(dateStr, startDate, endDate string) bool {
	d, ok := ParseDisplayDate(dateStr)
	if !ok {
		return false
	}

	if start, ok := ParseDisplayDate(startDate); ok {
		if d.Before(start) {
			return false
		}
	}
	if end, ok := ParseDisplayDate(endDate); ok {
		if d.After(end) {
			return false
		}
	}
	return true
}

// ToInputFormat rewrites DD/MM/YYYY as YYYY-MM-DD. It is pure string
// reshuffling; input that is not three slash-separated segments comes
// back unchanged.
func ToInputFormat(s string) string {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return s
	}
	return fmt.Sprintf("%s-%s-%s", parts[2], parts[1], parts[0])
}

// ToDisplayFormat rewrites YYYY-MM-DD as DD/MM/YYYY, the inverse of
// ToInputFormat.
func ToDisplayFormat(s string) string {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return s
	}
	return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0])
}

// FormatDisplay renders a time in display format.
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

package dates

import (
	"testing"
	"time"
)

func TestParseDisplayDate(t *testing.T) {
	d, ok := ParseDisplayDate("15/08/2025")
	if !ok {
		t.Fatal("Expected 15/08/2025 to parse")
	}
	if d.Day() != 15 || d.Month() != time.August || d.Year() != 2025 {
		t.Errorf("Expected 2025-08-15, got %v", d)
	}
}

func TestParseDisplayDateIgnoresTimeSuffix(t *testing.T) {
	d, ok := ParseDisplayDate("01/02/2025 10:30 PM")
	if !ok {
		t.Fatal("Expected date with time suffix to parse")
	}
	if d.Day() != 1 || d.Month() != time.February || d.Year() != 2025 {
		t.Errorf("Expected 2025-02-01, got %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("Expected time component to be dropped, got %v", d)
	}
}

func TestParseDisplayDateMalformed(t *testing.T) {
	cases := []string{"", "15-08-2025", "15/08", "aa/bb/cccc", "15/08/20xx", "2025/08/15/1"}
	for _, c := range cases {
		if _, ok := ParseDisplayDate(c); ok {
			t.Errorf("Expected %q to fail parsing", c)
		}
	}
}

func TestParseDisplayDateRollsOver(t *testing.T) {
	// Mirrors the rollover behavior of the dashboard's date type.
	d, ok := ParseDisplayDate("32/01/2024")
	if !ok {
		t.Fatal("Expected 32/01/2024 to parse via rollover")
	}
	if d.Day() != 1 || d.Month() != time.February {
		t.Errorf("Expected rollover to 01/02/2024, got %v", d)
	}
}

func TestInRange(t *testing.T) {
	if !InRange("10/06/2025", "01/06/2025", "30/06/2025") {
		t.Error("Expected date inside range to match")
	}
	if InRange("10/07/2025", "01/06/2025", "30/06/2025") {
		t.Error("Expected date after range not to match")
	}
	if InRange("10/05/2025", "01/06/2025", "30/06/2025") {
		t.Error("Expected date before range not to match")
	}
}

func TestInRangeInclusiveBounds(t *testing.T) {
	if !InRange("01/06/2025", "01/06/2025", "30/06/2025") {
		t.Error("Expected start bound to be inclusive")
	}
	if !InRange("30/06/2025", "01/06/2025", "30/06/2025") {
		t.Error("Expected end bound to be inclusive")
	}
}

func TestInRangeUnparsableRecordDate(t *testing.T) {
	if InRange("not-a-date", "01/06/2025", "30/06/2025") {
		t.Error("Expected unparsable record date not to match")
	}
}

func TestInRangeUnparsableBoundDisablesIt(t *testing.T) {
	// A malformed start bound silently disables the lower bound.
	if !InRange("10/05/2025", "garbage", "30/06/2025") {
		t.Error("Expected malformed start bound to be ignored")
	}
	// Both bounds empty means every parsable date matches.
	if !InRange("10/05/2025", "", "") {
		t.Error("Expected unbounded range to match any parsable date")
	}
}

func TestInRangeInvertedRange(t *testing.T) {
	// Inverted ranges are not an error, they just match nothing.
	if InRange("15/06/2025", "30/06/2025", "01/06/2025") {
		t.Error("Expected inverted range to match nothing")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	cases := []string{"01/01/2025", "31/12/1999", "15/08/2024"}
	for _, d := range cases {
		if got := ToDisplayFormat(ToInputFormat(d)); got != d {
			t.Errorf("Round trip of %q produced %q", d, got)
		}
	}
}

func TestToInputFormat(t *testing.T) {
	if got := ToInputFormat("15/08/2025"); got != "2025-08-15" {
		t.Errorf("Expected 2025-08-15, got %q", got)
	}
	// Malformed input passes through unchanged.
	if got := ToInputFormat("15.08.2025"); got != "15.08.2025" {
		t.Errorf("Expected malformed input unchanged, got %q", got)
	}
}

func TestFormatDisplay(t *testing.T) {
	d := time.Date(2025, time.August, 5, 13, 45, 0, 0, time.UTC)
	if got := FormatDisplay(d); got != "05/08/2025" {
		t.Errorf("Expected 05/08/2025, got %q", got)
	}
}

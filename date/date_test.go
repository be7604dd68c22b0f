package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7)
	d2 := New(2025, 7)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same month gives two different time")
	}
}

func TestNew_Normalizes(t *testing.T) {
	testCases := []struct {
		year  int
		month time.Month
		want  string
	}{
		{2025, 13, "2026-01"},
		{2025, 0, "2024-12"},
		{2025, 25, "2027-01"},
	}
	for _, tc := range testCases {
		if got := New(tc.year, tc.month).String(); got != tc.want {
			t.Errorf("New(%d, %d) = %s, want %s", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestMonth_Add(t *testing.T) {
	start := MustParse("2025-11")
	testCases := []struct {
		n    int
		want string
	}{
		{0, "2025-11"},
		{1, "2025-12"},
		{2, "2026-01"},
		{45, "2029-08"},
		{-11, "2024-12"},
	}
	for _, tc := range testCases {
		got := start.Add(tc.n)
		if got.String() != tc.want {
			t.Errorf("Add(%d) = %s, want %s", tc.n, got, tc.want)
		}
		if got.Sub(start) != tc.n {
			t.Errorf("Sub() = %d, want %d", got.Sub(start), tc.n)
		}
	}
	if !start.Before(start.Add(1)) || !start.After(start.Add(-1)) {
		t.Error("Before/After disagree with Add")
	}
}

func TestParse(t *testing.T) {
	for _, in := range []string{"2025-7", "2025-07"} {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", in, err)
		}
		if got != New(2025, time.July) {
			t.Errorf("Parse(%q) = %s, want 2025-07", in, got)
		}
	}
	for _, in := range []string{"", "2025", "July 2025", "2025-13"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want an error", in)
		}
	}
}

func TestMonth_JSON(t *testing.T) {
	in := New(2031, time.March)
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(data) != `"2031-03"` {
		t.Errorf("Marshal() = %s, want \"2031-03\"", data)
	}
	var out Month
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %s, want %s", out, in)
	}
	if !(Month{}).IsZero() || in.IsZero() {
		t.Error("IsZero() is wrong")
	}
}

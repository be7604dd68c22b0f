package ladder

import "testing"

func TestAmount_Round(t *testing.T) {
	testCases := []struct {
		in   float64
		want int64
	}{
		{562.5, 563},
		{562.49, 562},
		{0.5, 1},
		{-0.5, -1},
		{100, 100},
	}
	for _, tc := range testCases {
		if got := A(tc.in).Round(); !got.Equal(A(tc.want)) {
			t.Errorf("A(%v).Round() = %s, want %d", tc.in, got, tc.want)
		}
	}
}

func TestAmount_Format(t *testing.T) {
	if got, want := A(1234.5).Format("GBP"), "£1,234.50"; got != want {
		t.Errorf("Format(GBP) = %q, want %q", got, want)
	}
	if got, want := A(-20).Format("GBP"), "-£20.00"; got != want {
		t.Errorf("Format(GBP) = %q, want %q", got, want)
	}
	if got, want := A(12.5).Format("XYZ"), "12.50"; got != want {
		t.Errorf("Format(XYZ) = %q, want %q", got, want)
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("1800.25")
	if err != nil {
		t.Fatalf("ParseAmount() failed: %v", err)
	}
	if !got.Equal(A(1800.25)) {
		t.Errorf("ParseAmount() = %s, want 1800.25", got)
	}
	if _, err := ParseAmount("lots"); err == nil {
		t.Error("ParseAmount(lots) succeeded, want an error")
	}
}

func TestParseRatio(t *testing.T) {
	testCases := []struct {
		in   string
		want Ratio
	}{
		{"0.75", R(0.75)},
		{"75%", R(0.75)},
		{"5%", R(0.05)},
		{"0", R(0)},
	}
	for _, tc := range testCases {
		got, err := ParseRatio(tc.in)
		if err != nil {
			t.Fatalf("ParseRatio(%q) failed: %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseRatio(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := ParseRatio("%"); err == nil {
		t.Error("ParseRatio(%) succeeded, want an error")
	}
}

func TestRatio_String(t *testing.T) {
	if got, want := R(0.9).String(), "90.00%"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

package utils

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{-42.25, "-$42.25"},
		{999.999, "$1,000.00"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"1234.5", 1234.5},
		{"$1,234.50", 1234.5},
		{" 7 ", 7},
	} {
		got, err := ParseAmount(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, %v", tc.in, got, err)
		}
	}
	for _, in := range []string{"", "$", "abc"} {
		if _, err := ParseAmount(in); err == nil {
			t.Errorf("ParseAmount(%q) accepted", in)
		}
	}
}

func TestFormatDateFallsBackToNA(t *testing.T) {
	if got := FormatDate("2026-03-15T09:30:00Z"); got != "Mar 15, 2026" {
		t.Fatalf("FormatDate = %q", got)
	}
	if got := FormatDate("2026-03-15"); got != "Mar 15, 2026" {
		t.Fatalf("FormatDate(iso date) = %q", got)
	}
	for _, in := range []string{"", "   ", "yesterday"} {
		if got := FormatDate(in); got != "N/A" {
			t.Fatalf("FormatDate(%q) = %q", in, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Fatalf("short string mangled: %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello..." {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("héllo wörld", 5); got != "héllo..." {
		t.Fatalf("rune-aware truncate = %q", got)
	}
	if got := Truncate("x", 0); got != "" {
		t.Fatalf("Truncate with zero limit = %q", got)
	}
}

func TestProfit(t *testing.T) {
	margin, percent := Profit(12, 10)
	if margin != 2 || percent != 20 {
		t.Fatalf("Profit(12, 10) = %v, %v", margin, percent)
	}

	margin, percent = Profit(15, 0)
	if margin != 15 || percent != 0 {
		t.Fatalf("Profit with zero base = %v, %v", margin, percent)
	}

	margin, percent = Profit(10.5, 9)
	if margin != 1.5 || percent != 16.7 {
		t.Fatalf("Profit(10.5, 9) = %v, %v", margin, percent)
	}
}

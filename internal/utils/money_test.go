package utils

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rs 0"},
		{999, "Rs 999"},
		{1000, "Rs 1,000"},
		{150000, "Rs 150,000"},
		{-4000, "-Rs 4,000"},
	}
	for _, c := range cases {
		if got := FormatAmount(c.in); got != c.want {
			t.Fatalf("FormatAmount(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseAmountRoundTrips(t *testing.T) {
	for _, n := range []int64{0, 999, 1000, 150000} {
		got, err := ParseAmount(FormatAmount(n))
		if err != nil {
			t.Fatalf("ParseAmount failed for %d: %v", n, err)
		}
		if got != n {
			t.Fatalf("round trip %d -> %d", n, got)
		}
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	if _, err := ParseAmount("  "); err == nil {
		t.Fatalf("empty string should not parse")
	}
	if _, err := ParseAmount("Rs abc"); err == nil {
		t.Fatalf("non-numeric string should not parse")
	}
}

func TestNormalizePoolKey(t *testing.T) {
	cases := map[string]string{
		"Buddha Airline":   "buddha-airline",
		"  buddha-airline": "buddha-airline",
		"YETI  AIR":        "yeti-air",
		"":                 "",
	}
	for in, want := range cases {
		if got := NormalizePoolKey(in); got != want {
			t.Fatalf("NormalizePoolKey(%q) = %q, want %q", in, got, want)
		}
	}
}

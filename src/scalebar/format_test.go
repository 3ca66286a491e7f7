package scalebar

import "testing"

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1000.0, "1000"},
		{0.1, "0.1"},
		{1.50, "1.5"},
		{0.001, "0.001"},
		{5000, "5000"},
		{2, "2"},
		{-0.5, "-0.5"},
	}
	for _, c := range cases {
		if got := FormatFloat(c.in); got != c.want {
			t.Fatalf("FormatFloat(%v) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestLabelText(t *testing.T) {
	if got := TimeLabel(20); got != "20 ms" {
		t.Fatalf("TimeLabel(20) = %q", got)
	}
	if got := DependentLabel(0.05, true); got != "0.05 nA" {
		t.Fatalf("DependentLabel(0.05, current) = %q", got)
	}
	if got := DependentLabel(50, false); got != "50 mV" {
		t.Fatalf("DependentLabel(50, voltage) = %q", got)
	}
}

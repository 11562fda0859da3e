package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"2800000", 2800000, true},
		{"2.8M", 2800000, true},
		{"2.8m", 2800000, true},
		{"500K", 500000, true},
		{"500k", 500000, true},
		{"1.5K", 1500, true},
		{"2,800,000", 2800000, true},
		{"₩500K", 500000, true},
		{" 2.8M ", 2800000, true},
		{".5M", 500000, true},
		{"0", 0, true},
		{"2.855M", 2855000, true},
		{"1.0005K", 1001, true}, // half-up on the fractional remainder
		{"", 0, false},
		{"abc", 0, false},
		{"-5K", 0, false},
		{"+5K", 0, false},
		{"5.5.5M", 0, false},
		{"M", 0, false},
		{"K", 0, false},
		{".", 0, false},
		{"5x", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error, got %d", tc.in, got)
			}
		}
	}
}

package service

import "testing"

func TestBuildDailySpec(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"06:00", "0 0 6 * * *"},
		{"21:30", "0 30 21 * * *"},
		{"00:00", "0 0 0 * * *"},
		{"23:59", "0 59 23 * * *"},
	}
	for _, tc := range cases {
		got, err := buildDailySpec(tc.in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestBuildDailySpecRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "6", "24:00", "12:60", "noon", "12:00:00"} {
		if _, err := buildDailySpec(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

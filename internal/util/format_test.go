package util

import "testing"

func TestFormatBoingsPluralizes(t *testing.T) {
	cases := map[int]string{
		0:  "you've boinged 0 times",
		1:  "you've boinged 1 time",
		2:  "you've boinged 2 times",
		41: "you've boinged 41 times",
	}
	for n, want := range cases {
		if got := FormatBoings(n); got != want {
			t.Fatalf("FormatBoings(%d) = %q, want %q", n, got, want)
		}
	}
}

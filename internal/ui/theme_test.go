package ui

import "testing"

func TestProgressBar(t *testing.T) {
	cases := []struct {
		value, total, width int
		want                string
	}{
		{0, 10, 10, "[----------]"},
		{5, 10, 10, "[#####-----]"},
		{15, 10, 4, "[####]"},
		{-3, 0, 1, "[---]"},
	}
	for _, tc := range cases {
		if got := ProgressBar(tc.value, tc.total, tc.width); got != tc.want {
			t.Fatalf("ProgressBar(%d,%d,%d)=%q, want %q", tc.value, tc.total, tc.width, got, tc.want)
		}
	}
	if got := LevelBar(1150, 20); got != "[###-----------------]" {
		t.Fatalf("LevelBar(1150)=%q", got)
	}
}

package util

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		5:    "00:05",
		125:  "02:05",
		300:  "05:00",
		1500: "25:00",
		3599: "59:59",
		5999: "99:59",
		-3:   "00:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		45 * time.Second:             "45s",
		25 * time.Minute:             "25m",
		2 * time.Hour:                "2h",
		2*time.Hour + 15*time.Minute: "2h 15m",
	}
	for in, want := range cases {
		if got := FormatDuration(in); got != want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", in, got, want)
		}
	}
}

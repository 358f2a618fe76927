package format

import (
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"sub-millisecond shows microseconds", 713 * time.Microsecond, "713µs"},
		{"sub-second shows milliseconds", 42 * time.Millisecond, "42ms"},
		{"seconds use default representation", 1500 * time.Millisecond, "1.5s"},
		{"zero", 0, "0µs"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatExecutionDuration(tc.d); got != tc.want {
				t.Errorf("FormatExecutionDuration(%s) = %q, want %q", tc.d, got, tc.want)
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"microsecond precision", 713 * time.Microsecond, "0.000713 s"},
		{"sub-microsecond rounds", 1600 * time.Nanosecond, "0.000002 s"},
		{"full seconds", 2 * time.Second, "2.000000 s"},
		{"zero", 0, "0.000000 s"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatSeconds(tc.d); got != tc.want {
				t.Errorf("FormatSeconds(%s) = %q, want %q", tc.d, got, tc.want)
			}
		})
	}
}

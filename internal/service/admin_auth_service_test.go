package service

import (
	"testing"
	"time"
)

func TestRememberDurations(t *testing.T) {
	want := map[string]time.Duration{
		"1h":  time.Hour,
		"3h":  3 * time.Hour,
		"12h": 12 * time.Hour,
		"1d":  24 * time.Hour,
		"2d":  48 * time.Hour,
		"1w":  168 * time.Hour,
	}
	if len(RememberDurations) != len(want) {
		t.Fatalf("RememberDurations has %d entries, want %d", len(RememberDurations), len(want))
	}
	for token, d := range want {
		if RememberDurations[token] != d {
			t.Errorf("RememberDurations[%q] = %v, want %v", token, RememberDurations[token], d)
		}
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"admin@superengulfing.com", "ad***@superengulfing.com"},
		{"ab@example.com", "a***@example.com"},
		{"a@example.com", "a***@example.com"},
		{"not-an-email", "***"},
		{"", "***"},
	}
	for _, tt := range tests {
		if got := MaskEmail(tt.email); got != tt.want {
			t.Errorf("MaskEmail(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}

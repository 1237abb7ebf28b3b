package config

import "testing"

func TestNormalizeSiteURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://superengulfing.com", "https://superengulfing.com"},
		{"https://superengulfing.com/", "https://superengulfing.com"},
		{"https://superengulfing.com/api", "https://superengulfing.com"},
		{"https://superengulfing.com/api/", "https://superengulfing.com"},
		{"http://localhost:3000", "http://localhost:3000"},
	}
	for _, tt := range tests {
		if got := NormalizeSiteURL(tt.raw); got != tt.want {
			t.Errorf("NormalizeSiteURL(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

package locale

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want Locale
	}{
		{"/", LocaleEN},
		{"", LocaleEN},
		{"/am", LocaleAM},
		{"/am/", LocaleAM},
		{"/am/dashboard", LocaleAM},
		{"/am/thank-you", LocaleAM},
		{"/dashboard", LocaleEN},
		{"/america", LocaleEN},
		{"/amx/page", LocaleEN},
		{"am/dashboard", LocaleEN},
		{"//am", LocaleEN},
	}
	for _, tt := range tests {
		if got := Resolve(tt.path); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLocalize(t *testing.T) {
	tests := []struct {
		logical string
		l       Locale
		want    string
	}{
		{"/", LocaleEN, "/"},
		{"/", LocaleAM, "/am"},
		{"/dashboard", LocaleEN, "/dashboard"},
		{"/dashboard", LocaleAM, "/am/dashboard"},
		{"/dashboard/academy", LocaleAM, "/am/dashboard/academy"},
		{"/login", LocaleAM, "/am/login"},
	}
	for _, tt := range tests {
		if got := Localize(tt.logical, tt.l); got != tt.want {
			t.Errorf("Localize(%q, %q) = %q, want %q", tt.logical, tt.l, got, tt.want)
		}
	}
}

// Localizing any logical path then resolving the result must yield the
// locale that was asked for.
func TestResolveLocalizeRoundTrip(t *testing.T) {
	logicals := []string{"/", "/login", "/dashboard", "/dashboard/academy", "/thank-you", "/contact"}
	for _, p := range logicals {
		for _, l := range []Locale{LocaleEN, LocaleAM} {
			if got := Resolve(Localize(p, l)); got != l {
				t.Errorf("Resolve(Localize(%q, %q)) = %q, want %q", p, l, got, l)
			}
		}
	}
}

func TestStripPrefix(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/am", "/"},
		{"/am/dashboard", "/dashboard"},
		{"/am/dashboard/academy", "/dashboard/academy"},
		{"/dashboard", "/dashboard"},
		{"/", "/"},
		{"/america", "/america"},
	}
	for _, tt := range tests {
		if got := StripPrefix(tt.path); got != tt.want {
			t.Errorf("StripPrefix(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	// StripPrefix inverts Localize for the am locale.
	for _, p := range []string{"/", "/login", "/dashboard", "/dashboard/academy"} {
		if got := StripPrefix(Localize(p, LocaleAM)); got != p {
			t.Errorf("StripPrefix(Localize(%q, am)) = %q, want %q", p, got, p)
		}
	}
}

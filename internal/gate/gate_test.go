package gate

import (
	"testing"

	"github.com/superengulfing/site-backend/internal/locale"
)

func TestDashboardNoToken(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/dashboard", "/login"},
		{"/dashboard/academy", "/login"},
		{"/am/dashboard", "/am/login"},
		{"/am/dashboard/academy", "/am/login"},
	}
	for _, tt := range tests {
		d := Dashboard(tt.path, false, nil)
		if d.RedirectTo != tt.want {
			t.Errorf("Dashboard(%q, no token) redirect = %q, want %q", tt.path, d.RedirectTo, tt.want)
		}
		if d.Render {
			t.Errorf("Dashboard(%q, no token) must not render", tt.path)
		}
	}
}

func TestDashboardProfilePending(t *testing.T) {
	d := Dashboard("/dashboard", true, nil)
	if d.RedirectTo != "" {
		t.Errorf("pending profile must not redirect, got %q", d.RedirectTo)
	}
	if d.Render {
		t.Error("pending profile must not render")
	}
}

func TestDashboardLocaleReconciliation(t *testing.T) {
	am := &Profile{Locale: locale.LocaleAM}
	en := &Profile{Locale: locale.LocaleEN}

	tests := []struct {
		path    string
		profile *Profile
		want    string
	}{
		{"/dashboard", am, "/am/dashboard"},
		{"/dashboard/academy", am, "/am/dashboard/academy"},
		{"/am/dashboard", en, "/dashboard"},
		{"/am/dashboard/academy", en, "/dashboard/academy"},
		{"/am/dashboard", am, ""},
		{"/dashboard", en, ""},
	}
	for _, tt := range tests {
		d := Dashboard(tt.path, true, tt.profile)
		if d.RedirectTo != tt.want {
			t.Errorf("Dashboard(%q, locale=%s) redirect = %q, want %q",
				tt.path, tt.profile.Locale, d.RedirectTo, tt.want)
		}
		if tt.want == "" && !d.Render {
			t.Errorf("Dashboard(%q, locale=%s) should render", tt.path, tt.profile.Locale)
		}
	}
}

// Applying the reconciliation twice must not redirect a second time.
func TestDashboardReconciliationIdempotent(t *testing.T) {
	profiles := []*Profile{{Locale: locale.LocaleAM}, {Locale: locale.LocaleEN}}
	paths := []string{"/dashboard", "/dashboard/academy", "/am/dashboard", "/am/dashboard/academy"}

	for _, p := range profiles {
		for _, path := range paths {
			first := Dashboard(path, true, p)
			if first.RedirectTo == "" {
				continue
			}
			second := Dashboard(first.RedirectTo, true, p)
			if second.RedirectTo != "" {
				t.Errorf("locale=%s: %q -> %q -> %q, second redirect must not happen",
					p.Locale, path, first.RedirectTo, second.RedirectTo)
			}
			if !second.Render {
				t.Errorf("locale=%s: %q after redirect should render", p.Locale, first.RedirectTo)
			}
		}
	}
}

func TestIsDashboardPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/dashboard", true},
		{"/dashboard/academy", true},
		{"/am/dashboard", true},
		{"/am/dashboard/settings", true},
		{"/", false},
		{"/am", false},
		{"/dashboardish", false},
		{"/login", false},
	}
	for _, tt := range tests {
		if got := IsDashboardPath(tt.path); got != tt.want {
			t.Errorf("IsDashboardPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestThankYou(t *testing.T) {
	if d := ThankYou("/am/thank-you", "1", false); !d.Render {
		t.Error("confirmed=1 should render")
	}
	if d := ThankYou("/am/thank-you", "", false); d.RedirectTo != "/am" {
		t.Errorf("unconfirmed am redirect = %q, want /am", d.RedirectTo)
	}
	if d := ThankYou("/am/thank-you", "yes", false); d.RedirectTo != "/am" {
		t.Errorf("confirmed=yes is not confirmation, redirect = %q, want /am", d.RedirectTo)
	}
	if d := ThankYou("/thank-you", "", false); d.RedirectTo != "/" {
		t.Errorf("unconfirmed en redirect = %q, want /", d.RedirectTo)
	}
	if d := ThankYou("/thank-you", "", true); !d.Render {
		t.Error("exchanged token should render")
	}
}

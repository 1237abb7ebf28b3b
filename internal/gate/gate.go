// Package gate computes redirect decisions for guarded site pages.
// Decisions are pure functions of the request path and session state;
// performing the redirect (or serving nothing) is the handler's job.
package gate

import (
	"strings"

	"github.com/superengulfing/site-backend/internal/locale"
)

// Profile carries the only field of a user profile the gate inspects.
type Profile struct {
	Locale locale.Locale
}

// Decision is the outcome of evaluating a guarded page.
type Decision struct {
	// RedirectTo is the concrete target path, empty when no redirect
	// applies.
	RedirectTo string
	// Render reports whether the page content may be served. It is
	// false both while redirecting and when the profile could not be
	// loaded (serve nothing, decide again on the next navigation).
	Render bool
}

// IsDashboardPath reports whether path addresses the gated dashboard
// area in either locale.
func IsDashboardPath(path string) bool {
	logical := locale.StripPrefix(path)
	return logical == "/dashboard" || strings.HasPrefix(logical, "/dashboard/")
}

// Dashboard evaluates a dashboard request.
//
// No token: redirect to the login page of the locale implied by the
// current path. Token but no usable profile: serve nothing and leave
// the decision to the next navigation — never redirect on incomplete
// data. Token and profile: reconcile the profile locale against the
// URL locale, redirecting to the profile's side of the tree. The
// reconciliation is idempotent: re-evaluating the redirect target with
// the same profile renders.
func Dashboard(path string, hasToken bool, profile *Profile) Decision {
	if !hasToken {
		return Decision{RedirectTo: locale.Localize("/login", locale.Resolve(path))}
	}
	if profile == nil {
		return Decision{}
	}

	urlLocale := locale.Resolve(path)
	switch {
	case profile.Locale == locale.LocaleAM && urlLocale == locale.LocaleEN:
		return Decision{RedirectTo: locale.Localize(path, locale.LocaleAM)}
	case profile.Locale != locale.LocaleAM && urlLocale == locale.LocaleAM:
		logical := locale.StripPrefix(path)
		if logical == "" || logical == "/" {
			logical = "/dashboard"
		}
		return Decision{RedirectTo: logical}
	}
	return Decision{Render: true}
}

// ThankYou evaluates the thank-you page. A confirmation is proven
// either by the confirmed=1 query flag or by a token the handler has
// already exchanged successfully. Anything else bounces to the
// locale's landing page.
func ThankYou(path, confirmed string, tokenOK bool) Decision {
	if tokenOK || confirmed == "1" {
		return Decision{Render: true}
	}
	return Decision{RedirectTo: locale.Localize("/", locale.Resolve(path))}
}

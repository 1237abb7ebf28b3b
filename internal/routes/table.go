package routes

import (
	"github.com/superengulfing/site-backend/internal/locale"
)

// PageID is a locale-independent page identifier.
type PageID string

const (
	PageHome              PageID = "home"
	PageCourse            PageID = "course"
	PageMentorship        PageID = "mentorship"
	PageReviews           PageID = "reviews"
	PageFAQ               PageID = "faq"
	PageContact           PageID = "contact"
	PageLogin             PageID = "login"
	PageThankYou          PageID = "thank-you"
	PageSetPassword       PageID = "set-password"
	PageDashboard         PageID = "dashboard"
	PageDashboardAcademy  PageID = "dashboard-academy"
	PageDashboardSettings PageID = "dashboard-settings"
	PageAdmin             PageID = "admin"
)

// AdminAliasPath is the disguised URL the admin back-office actually
// lives at. The bare /admin path never renders; robots.txt disallows
// both so neither gets indexed.
const AdminAliasPath = "/admin2admin10"

// Route maps one concrete URL pattern to a page.
type Route struct {
	Pattern string
	Page    PageID
	Locale  locale.Locale
	// Gated pages run the auth gate before rendering.
	Gated bool
}

// pages lists every content page by its logical (en-canonical) path.
// The full route table is derived from this list, once per locale, so
// the two halves of the tree can never drift apart.
var pages = []struct {
	Logical string
	Page    PageID
	Gated   bool
}{
	{"/", PageHome, false},
	{"/course", PageCourse, false},
	{"/mentorship", PageMentorship, false},
	{"/reviews", PageReviews, false},
	{"/faq", PageFAQ, false},
	{"/contact", PageContact, false},
	{"/login", PageLogin, false},
	{"/thank-you", PageThankYou, false},
	{"/set-password", PageSetPassword, false},
	{"/dashboard", PageDashboard, true},
	{"/dashboard/academy", PageDashboardAcademy, true},
	{"/dashboard/settings", PageDashboardSettings, true},
	{AdminAliasPath, PageAdmin, false},
}

// Table returns the full route table: one entry per page per locale.
func Table() []Route {
	table := make([]Route, 0, len(pages)*2)
	for _, l := range []locale.Locale{locale.LocaleEN, locale.LocaleAM} {
		for _, p := range pages {
			table = append(table, Route{
				Pattern: locale.Localize(p.Logical, l),
				Page:    p.Page,
				Locale:  l,
				Gated:   p.Gated,
			})
		}
	}
	return table
}

// PublicPaths returns the logical paths of every public (non-gated,
// non-utility) page, in table order. The sitemap maps this single list
// through both locale prefixes.
func PublicPaths() []string {
	var out []string
	for _, p := range pages {
		if p.Gated {
			continue
		}
		switch p.Page {
		case PageThankYou, PageSetPassword, PageAdmin:
			// Reachable only through a token or deliberately unlisted.
			continue
		}
		out = append(out, p.Logical)
	}
	return out
}

// DisallowedPaths returns the paths robots.txt forbids, in the fixed
// published order.
func DisallowedPaths() []string {
	return []string{
		"/dashboard",
		locale.Localize("/dashboard", locale.LocaleAM),
		"/admin",
		locale.Localize("/admin", locale.LocaleAM),
		AdminAliasPath,
		locale.Localize(AdminAliasPath, locale.LocaleAM),
		"/set-password",
	}
}

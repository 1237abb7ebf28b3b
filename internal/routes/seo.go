package routes

import (
	"strings"

	"github.com/superengulfing/site-backend/internal/locale"
)

// RenderRobots produces the robots.txt body. siteURL must not carry a
// trailing slash (config strips it on load).
func RenderRobots(siteURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	for _, p := range DisallowedPaths() {
		b.WriteString("Disallow: ")
		b.WriteString(p)
		b.WriteString("\n")
	}
	b.WriteString("\nSitemap: ")
	b.WriteString(siteURL)
	b.WriteString("/sitemap.xml\n")
	return b.String()
}

// RenderSitemap produces the sitemap.xml body: every public path in
// English first, then the same list under /am, in matching order.
func RenderSitemap(siteURL string) string {
	public := PublicPaths()

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, l := range []locale.Locale{locale.LocaleEN, locale.LocaleAM} {
		for _, p := range public {
			b.WriteString("  <url><loc>")
			b.WriteString(siteURL)
			b.WriteString(locale.Localize(p, l))
			b.WriteString("</loc><changefreq>weekly</changefreq></url>\n")
		}
	}
	b.WriteString("</urlset>\n")
	return b.String()
}

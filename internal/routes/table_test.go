package routes

import (
	"strings"
	"testing"

	"github.com/superengulfing/site-backend/internal/locale"
)

func TestTableHasBothLocalesPerPage(t *testing.T) {
	table := Table()

	byPage := make(map[PageID]map[locale.Locale]string)
	for _, r := range table {
		if byPage[r.Page] == nil {
			byPage[r.Page] = make(map[locale.Locale]string)
		}
		if existing, dup := byPage[r.Page][r.Locale]; dup {
			t.Errorf("page %q has two %s entries: %q and %q", r.Page, r.Locale, existing, r.Pattern)
		}
		byPage[r.Page][r.Locale] = r.Pattern
	}

	for page, patterns := range byPage {
		en, am := patterns[locale.LocaleEN], patterns[locale.LocaleAM]
		if en == "" || am == "" {
			t.Errorf("page %q missing a locale entry: en=%q am=%q", page, en, am)
			continue
		}
		want := locale.Localize(en, locale.LocaleAM)
		if am != want {
			t.Errorf("page %q: am pattern %q, want %q", page, am, want)
		}
	}

	// Root exception: home's am entry is /am, not /am/.
	if byPage[PageHome][locale.LocaleAM] != "/am" {
		t.Errorf("home am pattern = %q, want /am", byPage[PageHome][locale.LocaleAM])
	}
}

func TestGatedFlagsMatchAcrossLocales(t *testing.T) {
	gated := make(map[PageID][]bool)
	for _, r := range Table() {
		gated[r.Page] = append(gated[r.Page], r.Gated)
	}
	for page, flags := range gated {
		for _, f := range flags {
			if f != flags[0] {
				t.Errorf("page %q has inconsistent gating across locales", page)
			}
		}
	}
}

func TestRenderRobots(t *testing.T) {
	body := RenderRobots("https://superengulfing.com")

	disallows := 0
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "Disallow: ") {
			disallows++
		}
	}
	if disallows != 7 {
		t.Errorf("robots.txt has %d Disallow lines, want 7", disallows)
	}

	for _, want := range []string{
		"Disallow: /dashboard\n",
		"Disallow: /am/dashboard\n",
		"Disallow: /admin\n",
		"Disallow: /am/admin\n",
		"Disallow: /admin2admin10\n",
		"Disallow: /am/admin2admin10\n",
		"Disallow: /set-password\n",
		"Sitemap: https://superengulfing.com/sitemap.xml\n",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("robots.txt missing %q:\n%s", strings.TrimSpace(want), body)
		}
	}
}

func TestRenderSitemap(t *testing.T) {
	siteURL := "https://superengulfing.com"
	body := RenderSitemap(siteURL)
	public := PublicPaths()

	locs := extractLocs(body)
	if len(locs) != 2*len(public) {
		t.Fatalf("sitemap has %d <url> entries, want %d", len(locs), 2*len(public))
	}

	for i, p := range public {
		wantEN := siteURL + p
		if locs[i] != wantEN {
			t.Errorf("entry %d = %q, want %q", i, locs[i], wantEN)
		}
		wantAM := siteURL + locale.Localize(p, locale.LocaleAM)
		if locs[len(public)+i] != wantAM {
			t.Errorf("entry %d = %q, want %q", len(public)+i, locs[len(public)+i], wantAM)
		}
	}

	if !strings.Contains(body, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`) {
		t.Error("sitemap missing urlset namespace declaration")
	}
}

func extractLocs(body string) []string {
	var locs []string
	rest := body
	for {
		i := strings.Index(rest, "<loc>")
		if i < 0 {
			return locs
		}
		rest = rest[i+len("<loc>"):]
		j := strings.Index(rest, "</loc>")
		if j < 0 {
			return locs
		}
		locs = append(locs, rest[:j])
		rest = rest[j:]
	}
}

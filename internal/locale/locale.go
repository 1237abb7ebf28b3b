package locale

import "strings"

// Locale identifies a site language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAM Locale = "am"
)

// prefix is the URL segment that selects Armenian content.
const prefix = "/am"

// Valid reports whether l is one of the two supported locales.
func Valid(l Locale) bool {
	return l == LocaleEN || l == LocaleAM
}

// Resolve derives the active locale from a request path. Only the /am
// prefix selects Armenian; everything else, including malformed or
// empty paths, resolves to English.
func Resolve(path string) Locale {
	if path == prefix || strings.HasPrefix(path, prefix+"/") {
		return LocaleAM
	}
	return LocaleEN
}

// Localize converts a logical (en-canonical) path into the concrete
// URL for the given locale. The root path maps to "/am", not "/am/".
// Every generated link and redirect target must go through here so the
// prefix rule cannot drift.
func Localize(logicalPath string, l Locale) string {
	if l != LocaleAM {
		return logicalPath
	}
	if logicalPath == "/" {
		return prefix
	}
	return prefix + logicalPath
}

// StripPrefix removes a leading /am segment, returning the logical
// path. Paths without the prefix are returned unchanged; a bare "/am"
// strips to "/".
func StripPrefix(path string) string {
	if path == prefix {
		return "/"
	}
	if strings.HasPrefix(path, prefix+"/") {
		return path[len(prefix):]
	}
	return path
}

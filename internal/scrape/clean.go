package scrape

import "strings"

// CleanText collapses whitespace and strips non-breaking spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// AbsoluteURL resolves href against base when it is site-relative.
func AbsoluteURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "/") {
		return strings.TrimRight(base, "/") + href
	}
	return href
}

// QuerySlug turns a search query into a hyphenated URL path segment.
func QuerySlug(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(q))), "-")
}

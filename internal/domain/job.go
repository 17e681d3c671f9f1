package domain

import "strings"

// Source identifies which site a listing was scraped from.
type Source string

const (
	SourceNaukri    Source = "Naukri"
	SourceLinkedIn  Source = "LinkedIn"
	SourceIndeed    Source = "Indeed"
	SourceBing      Source = "Bing"
	SourceShine     Source = "Shine"
	SourceFoundit   Source = "Foundit"
	SourceGoogle    Source = "Google"
	SourceTimesJobs Source = "TimesJobs"
)

// Job is the uniform listing record every source converges on.
// Optional fields default to empty strings, never to absent values.
type Job struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string // canonical posting link; may be empty for snippet-only sources
	Source      Source
	Emails      []string // extracted, best-effort
	Phones      []string // extracted, normalized to 10 digits
}

// DedupKey identifies a Job in the seen ledger. The link wins when present;
// snippet-only listings fall back to title+company. Two jobs with neither
// collide on the empty key.
func (j Job) DedupKey() string {
	if k := strings.TrimSpace(j.URL); k != "" {
		return k
	}
	return strings.TrimSpace(j.Title) + strings.TrimSpace(j.Company)
}

// RawCard is whatever one listing card on a source page exposes.
// Every field is optional; extractors leave missing pieces empty.
type RawCard struct {
	Title     string
	Link      string
	Company   string
	Location  string
	Snippet   string
	Freshness string // e.g. "3 hours ago", "just posted"; empty when the site shows none
}

// Text joins the card's visible fields for keyword classification.
func (c RawCard) Text() string {
	return strings.Join([]string{c.Title, c.Company, c.Location, c.Snippet, c.Freshness}, " ")
}

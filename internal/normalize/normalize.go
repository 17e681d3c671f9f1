// Package normalize maps source-specific raw cards onto the uniform Job
// record the rest of the pipeline works with.
package normalize

import (
	"strings"

	"jobdigest/internal/domain"
)

// TitlePlaceholder fills in when a card exposes no usable title.
const TitlePlaceholder = "Untitled posting"

// FromCard builds a Job from one raw card. Required fields are always
// populated; missing optional fields stay empty strings.
func FromCard(card domain.RawCard, source domain.Source) domain.Job {
	title := strings.TrimSpace(card.Title)
	if title == "" {
		title = TitlePlaceholder
	}

	return domain.Job{
		Title:       title,
		Company:     strings.TrimSpace(card.Company),
		Location:    strings.TrimSpace(card.Location),
		Description: strings.TrimSpace(card.Snippet),
		URL:         strings.TrimSpace(card.Link),
		Source:      source,
		Emails:      []string{},
		Phones:      []string{},
	}
}

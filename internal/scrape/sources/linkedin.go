package sources

import (
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape"
)

// LinkedIn scrapes the public (unauthenticated) jobs search page. Public
// results rarely expose a reliable posting age, so this source is exempt from
// the freshness predicate.
type LinkedIn struct {
	query    string
	location string
}

func NewLinkedIn(query, location string) *LinkedIn {
	return &LinkedIn{query: query, location: location}
}

func (s *LinkedIn) Name() domain.Source { return domain.SourceLinkedIn }

func (s *LinkedIn) RequiresFresh() bool { return false }

func (s *LinkedIn) URL() string {
	return fmt.Sprintf("https://www.linkedin.com/jobs/search/?keywords=%s&location=%s",
		url.QueryEscape(s.query), url.QueryEscape(s.location))
}

func (s *LinkedIn) Extract(doc *goquery.Document) []domain.RawCard {
	var cards []domain.RawCard

	sel := doc.Find("ul.jobs-search__results-list li")
	if sel.Length() == 0 {
		sel = doc.Find("div.base-card")
	}

	sel.Each(func(_ int, c *goquery.Selection) {
		a := c.Find("a[href]").First()
		link, _ := a.Attr("href")

		title := scrape.CleanText(c.Find(".job-card-list__title, .base-search-card__title").First().Text())
		if title == "" {
			title = scrape.CleanText(a.Text())
		}

		company := scrape.CleanText(c.Find(".job-card-container__company-name, .base-search-card__subtitle").First().Text())
		location := scrape.CleanText(c.Find(".job-search-card__location, .job-card-container__metadata-item").First().Text())
		fresh := scrape.CleanText(c.Find("time").First().Text())

		cards = append(cards, domain.RawCard{
			Title:     title,
			Link:      link,
			Company:   company,
			Location:  location,
			Snippet:   scrape.CleanText(c.Text()),
			Freshness: fresh,
		})
	})
	return cards
}

package sources

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape"
)

// Shine scrapes shine.com job-search pages.
type Shine struct {
	query string
}

func NewShine(query string) *Shine { return &Shine{query: query} }

func (s *Shine) Name() domain.Source { return domain.SourceShine }

func (s *Shine) RequiresFresh() bool { return true }

func (s *Shine) URL() string {
	return fmt.Sprintf("https://www.shine.com/job-search/%s-jobs", scrape.QuerySlug(s.query))
}

func (s *Shine) Extract(doc *goquery.Document) []domain.RawCard {
	var cards []domain.RawCard

	doc.Find("div.result-display__profile").Each(func(_ int, c *goquery.Selection) {
		a := c.Find("a[href]").First()
		link, _ := a.Attr("href")

		title := scrape.CleanText(c.Find("h2").First().Text())
		company := scrape.CleanText(c.Find(".result-display__profile__company-name").First().Text())
		location := scrape.CleanText(c.Find(".result-display__profile__location").First().Text())
		fresh := scrape.CleanText(c.Find(".result-display__profile__years").First().Text())

		cards = append(cards, domain.RawCard{
			Title:     title,
			Link:      scrape.AbsoluteURL("https://www.shine.com", link),
			Company:   company,
			Location:  location,
			Snippet:   scrape.CleanText(c.Text()),
			Freshness: fresh,
		})
	})
	return cards
}

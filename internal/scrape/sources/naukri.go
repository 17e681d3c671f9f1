// Package sources holds one card extractor per supported job site. Each
// extractor knows that site's listing-page markup and nothing else; missing
// elements yield empty fields, never errors.
package sources

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape"
)

// Naukri scrapes naukri.com search result pages.
type Naukri struct {
	query string
}

func NewNaukri(query string) *Naukri { return &Naukri{query: query} }

func (s *Naukri) Name() domain.Source { return domain.SourceNaukri }

func (s *Naukri) RequiresFresh() bool { return true }

func (s *Naukri) URL() string {
	return fmt.Sprintf("https://www.naukri.com/%s-jobs", scrape.QuerySlug(s.query))
}

func (s *Naukri) Extract(doc *goquery.Document) []domain.RawCard {
	var cards []domain.RawCard

	sel := doc.Find("article.jobTuple, div.jobTuple")
	if sel.Length() == 0 {
		sel = doc.Find("article")
	}

	sel.Each(func(_ int, c *goquery.Selection) {
		a := c.Find("a[href]").First()
		link, _ := a.Attr("href")

		title := scrape.CleanText(c.Find(".jobTitle").First().Text())
		if title == "" {
			title = scrape.CleanText(a.Text())
		}
		if title == "" {
			title = scrape.CleanText(c.Find("h2").First().Text())
		}

		company := scrape.CleanText(c.Find(".companyName, .subTitle, .comp-name").First().Text())
		location := scrape.CleanText(c.Find(".location").First().Text())
		fresh := scrape.CleanText(c.Find(".fleft.grey-text, .posted, .metaInfo").First().Text())

		cards = append(cards, domain.RawCard{
			Title:     title,
			Link:      scrape.AbsoluteURL("https://www.naukri.com", link),
			Company:   company,
			Location:  location,
			Snippet:   scrape.CleanText(c.Text()),
			Freshness: fresh,
		})
	})
	return cards
}

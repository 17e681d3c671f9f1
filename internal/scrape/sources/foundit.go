package sources

import (
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape"
)

// Foundit scrapes foundit.in (formerly Monster India) search result pages.
type Foundit struct {
	query    string
	location string
}

func NewFoundit(query, location string) *Foundit {
	return &Foundit{query: query, location: location}
}

func (s *Foundit) Name() domain.Source { return domain.SourceFoundit }

func (s *Foundit) RequiresFresh() bool { return true }

func (s *Foundit) URL() string {
	return fmt.Sprintf("https://www.foundit.in/srp/results?query=%s&locations=%s",
		url.QueryEscape(s.query), url.QueryEscape(s.location))
}

func (s *Foundit) Extract(doc *goquery.Document) []domain.RawCard {
	var cards []domain.RawCard

	doc.Find("div.srpResultCardContainer, div.card-apply-content").Each(func(_ int, c *goquery.Selection) {
		a := c.Find("a[href]").First()
		link, _ := a.Attr("href")

		title := scrape.CleanText(c.Find(".jobTitle, h3").First().Text())
		if title == "" {
			title = scrape.CleanText(a.Text())
		}

		company := scrape.CleanText(c.Find(".companyName, .company-name").First().Text())
		location := scrape.CleanText(c.Find(".details.location, .loc-link").First().Text())
		fresh := scrape.CleanText(c.Find(".postedDate, .posted-update").First().Text())

		cards = append(cards, domain.RawCard{
			Title:     title,
			Link:      scrape.AbsoluteURL("https://www.foundit.in", link),
			Company:   company,
			Location:  location,
			Snippet:   scrape.CleanText(c.Text()),
			Freshness: fresh,
		})
	})
	return cards
}

package sources

import (
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape"
)

// Indeed scrapes in.indeed.com search result pages.
type Indeed struct {
	query    string
	location string
}

func NewIndeed(query, location string) *Indeed {
	return &Indeed{query: query, location: location}
}

func (s *Indeed) Name() domain.Source { return domain.SourceIndeed }

func (s *Indeed) RequiresFresh() bool { return true }

func (s *Indeed) URL() string {
	return fmt.Sprintf("https://in.indeed.com/jobs?q=%s&l=%s",
		url.QueryEscape(s.query), url.QueryEscape(s.location))
}

func (s *Indeed) Extract(doc *goquery.Document) []domain.RawCard {
	var cards []domain.RawCard

	// Indeed rotates its card markup; try the known class families in order.
	sel := doc.Find("div.jobsearch-SerpJobCard, div.slider_item, div.result")
	if sel.Length() == 0 {
		sel = doc.Find("a[data-hide-spinner]")
	}

	sel.Each(func(_ int, c *goquery.Selection) {
		a := c.Find("a[href]").First()
		link, _ := a.Attr("href")

		title := scrape.CleanText(c.Find("h2").First().Text())
		if title == "" {
			title = scrape.CleanText(a.Text())
		}

		company := scrape.CleanText(c.Find(".companyName").First().Text())
		location := scrape.CleanText(c.Find(".companyLocation").First().Text())
		fresh := scrape.CleanText(c.Find(".date").First().Text())

		cards = append(cards, domain.RawCard{
			Title:     title,
			Link:      scrape.AbsoluteURL("https://in.indeed.com", link),
			Company:   company,
			Location:  location,
			Snippet:   scrape.CleanText(c.Text()),
			Freshness: fresh,
		})
	})
	return cards
}

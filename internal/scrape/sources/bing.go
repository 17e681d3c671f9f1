package sources

import (
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape"
)

// Bing scrapes web-search result snippets for job mentions. Results carry a
// real link per hit but only snippet text for everything else.
type Bing struct {
	query string
}

func NewBing(query string) *Bing { return &Bing{query: query} }

func (s *Bing) Name() domain.Source { return domain.SourceBing }

func (s *Bing) RequiresFresh() bool { return true }

func (s *Bing) URL() string {
	return fmt.Sprintf("https://www.bing.com/search?q=%s", url.QueryEscape(s.query))
}

func (s *Bing) Extract(doc *goquery.Document) []domain.RawCard {
	var cards []domain.RawCard

	doc.Find("li.b_algo").Each(func(_ int, c *goquery.Selection) {
		a := c.Find("h2 a[href]").First()
		link, _ := a.Attr("href")

		title := scrape.CleanText(a.Text())
		snippet := scrape.CleanText(c.Find(".b_caption p").First().Text())
		if snippet == "" {
			snippet = scrape.CleanText(c.Text())
		}

		cards = append(cards, domain.RawCard{
			Title:   title,
			Link:    link,
			Snippet: snippet,
		})
	})
	return cards
}

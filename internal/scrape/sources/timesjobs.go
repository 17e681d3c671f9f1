package sources

import (
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape"
)

// TimesJobs scrapes timesjobs.com keyword-search pages.
type TimesJobs struct {
	query string
}

func NewTimesJobs(query string) *TimesJobs { return &TimesJobs{query: query} }

func (s *TimesJobs) Name() domain.Source { return domain.SourceTimesJobs }

func (s *TimesJobs) RequiresFresh() bool { return true }

func (s *TimesJobs) URL() string {
	return fmt.Sprintf(
		"https://www.timesjobs.com/candidate/job-search.html?searchType=personalizedSearch&from=submit&txtKeywords=%s",
		url.QueryEscape(s.query))
}

func (s *TimesJobs) Extract(doc *goquery.Document) []domain.RawCard {
	var cards []domain.RawCard

	doc.Find("li.clearfix.job-bx").Each(func(_ int, c *goquery.Selection) {
		a := c.Find("h2 a[href]").First()
		link, _ := a.Attr("href")

		title := scrape.CleanText(a.Text())
		company := scrape.CleanText(c.Find("h3.joblist-comp-name").First().Text())
		location := scrape.CleanText(c.Find("ul.top-jd-dtl li span").First().Text())
		fresh := scrape.CleanText(c.Find("span.sim-posted span").First().Text())

		cards = append(cards, domain.RawCard{
			Title:     title,
			Link:      link,
			Company:   company,
			Location:  location,
			Snippet:   scrape.CleanText(c.Find("ul.list-job-dtl").Text()),
			Freshness: fresh,
		})
	})
	return cards
}

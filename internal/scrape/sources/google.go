package sources

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape"
)

// Google scrapes search-result snippets. Snippets have no per-posting link,
// so these cards dedup on the title+company fallback key.
type Google struct {
	query string
}

func NewGoogle(query string) *Google { return &Google{query: query} }

func (s *Google) Name() domain.Source { return domain.SourceGoogle }

func (s *Google) RequiresFresh() bool { return true }

func (s *Google) URL() string {
	return fmt.Sprintf("https://www.google.com/search?q=%s",
		url.QueryEscape(strings.TrimSpace(s.query)))
}

func (s *Google) Extract(doc *goquery.Document) []domain.RawCard {
	var cards []domain.RawCard

	sel := doc.Find("div.BNeawe.s3v9rd.AP7Wnd")
	if sel.Length() == 0 {
		sel = doc.Find("div.BNeawe")
	}

	sel.Each(func(_ int, c *goquery.Selection) {
		snippet := scrape.CleanText(c.Text())
		if snippet == "" {
			return
		}
		cards = append(cards, domain.RawCard{
			Title:   snippetTitle(snippet),
			Snippet: snippet,
		})
	})
	return cards
}

// snippetTitle keeps the leading words of a snippet as a stand-in title so
// distinct snippets get distinct fallback dedup keys.
func snippetTitle(snippet string) string {
	words := strings.Fields(snippet)
	if len(words) > 8 {
		words = words[:8]
	}
	return strings.Join(words, " ")
}

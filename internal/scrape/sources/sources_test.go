package sources

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

func TestNaukriExtract(t *testing.T) {
	d := doc(t, `<html><body>
<article class="jobTuple">
  <a href="/job-listings-ecom-exec-12345">link</a>
  <div class="jobTitle">E-commerce Executive</div>
  <div class="companyName">ShopKart</div>
  <div class="location">Pune, Maharashtra</div>
  <span class="posted">3 hours ago</span>
</article>
<article class="jobTuple">
  <div class="jobTitle">No anchor card</div>
</article>
</body></html>`)

	cards := NewNaukri("walkin ecommerce").Extract(d)
	require.Len(t, cards, 2)

	assert.Equal(t, "E-commerce Executive", cards[0].Title)
	assert.Equal(t, "https://www.naukri.com/job-listings-ecom-exec-12345", cards[0].Link)
	assert.Equal(t, "ShopKart", cards[0].Company)
	assert.Equal(t, "Pune, Maharashtra", cards[0].Location)
	assert.Equal(t, "3 hours ago", cards[0].Freshness)

	// missing anchor and company yield empty fields, not a panic
	assert.Equal(t, "No anchor card", cards[1].Title)
	assert.Equal(t, "", cards[1].Link)
	assert.Equal(t, "", cards[1].Company)
}

func TestNaukriURL(t *testing.T) {
	assert.Equal(t, "https://www.naukri.com/walkin-ecommerce-jobs",
		NewNaukri("Walkin Ecommerce").URL())
}

func TestLinkedInExtract(t *testing.T) {
	d := doc(t, `<html><body>
<ul class="jobs-search__results-list">
  <li>
    <a href="https://www.linkedin.com/jobs/view/999">x</a>
    <h3 class="base-search-card__title">E-commerce Manager</h3>
    <h4 class="base-search-card__subtitle">MegaMart</h4>
    <span class="job-search-card__location">Pune</span>
    <time>2 hours ago</time>
  </li>
</ul>
</body></html>`)

	cards := NewLinkedIn("E-commerce Manager", "Pune").Extract(d)
	require.Len(t, cards, 1)
	assert.Equal(t, "E-commerce Manager", cards[0].Title)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/999", cards[0].Link)
	assert.Equal(t, "MegaMart", cards[0].Company)
	assert.Equal(t, "2 hours ago", cards[0].Freshness)
}

func TestLinkedInURLEscapesQuery(t *testing.T) {
	u := NewLinkedIn("E-commerce Manager", "Pune").URL()
	assert.Equal(t,
		"https://www.linkedin.com/jobs/search/?keywords=E-commerce+Manager&location=Pune", u)
}

func TestTimesJobsExtract(t *testing.T) {
	d := doc(t, `<html><body>
<li class="clearfix job-bx">
  <h2><a href="https://www.timesjobs.com/job/555">Catalog Associate</a></h2>
  <h3 class="joblist-comp-name">ListCo</h3>
  <ul class="top-jd-dtl"><li><span>Pune</span></li></ul>
  <span class="sim-posted"><span>Posted today</span></span>
  <ul class="list-job-dtl"><li>Manage marketplace listings</li></ul>
</li>
</body></html>`)

	cards := NewTimesJobs("ecommerce").Extract(d)
	require.Len(t, cards, 1)
	assert.Equal(t, "Catalog Associate", cards[0].Title)
	assert.Equal(t, "ListCo", cards[0].Company)
	assert.Equal(t, "Pune", cards[0].Location)
	assert.Equal(t, "Posted today", cards[0].Freshness)
	assert.Contains(t, cards[0].Snippet, "marketplace listings")
}

func TestBingExtract(t *testing.T) {
	d := doc(t, `<html><body>
<li class="b_algo">
  <h2><a href="https://jobs.example.com/7">Walk-in drive Pune</a></h2>
  <div class="b_caption"><p>E-commerce walk-in interview today in Pune.</p></div>
</li>
</body></html>`)

	cards := NewBing("walk-in ecommerce pune").Extract(d)
	require.Len(t, cards, 1)
	assert.Equal(t, "Walk-in drive Pune", cards[0].Title)
	assert.Equal(t, "https://jobs.example.com/7", cards[0].Link)
	assert.Contains(t, cards[0].Snippet, "walk-in interview")
}

func TestGoogleExtractSnippetsHaveNoLink(t *testing.T) {
	d := doc(t, `<html><body>
<div class="BNeawe s3v9rd AP7Wnd">E-commerce walk-in drive posted today in Pune, call 9876543210</div>
<div class="BNeawe s3v9rd AP7Wnd">Another snippet about catalog jobs in Baner</div>
</body></html>`)

	cards := NewGoogle("Walk-in E-commerce jobs Pune").Extract(d)
	require.Len(t, cards, 2)
	assert.Empty(t, cards[0].Link)
	assert.NotEmpty(t, cards[0].Title)
	// distinct snippets must not share a fallback dedup key
	assert.NotEqual(t, cards[0].Title, cards[1].Title)
}

func TestAllSourcesTolerateEmptyPage(t *testing.T) {
	d := doc(t, `<html><body><p>nothing here</p></body></html>`)

	assert.Empty(t, NewNaukri("q").Extract(d))
	assert.Empty(t, NewLinkedIn("q", "Pune").Extract(d))
	assert.Empty(t, NewIndeed("q", "Pune").Extract(d))
	assert.Empty(t, NewShine("q").Extract(d))
	assert.Empty(t, NewFoundit("q", "Pune").Extract(d))
	assert.Empty(t, NewGoogle("q").Extract(d))
	assert.Empty(t, NewBing("q").Extract(d))
	assert.Empty(t, NewTimesJobs("q").Extract(d))
}

func TestShineExtractPrefixesRelativeLinks(t *testing.T) {
	d := doc(t, `<html><body>
<div class="result-display__profile">
  <a href="/jobs/ecom-exec-1">x</a>
  <h2>E-commerce Executive</h2>
  <span class="result-display__profile__company-name">ShineCo</span>
</div>
</body></html>`)

	cards := NewShine("walkin").Extract(d)
	require.Len(t, cards, 1)
	assert.Equal(t, "https://www.shine.com/jobs/ecom-exec-1", cards[0].Link)
	assert.Equal(t, "E-commerce Executive", cards[0].Title)
}

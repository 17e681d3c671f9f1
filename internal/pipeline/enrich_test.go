package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape"
	"jobdigest/internal/store"
)

// pageFetcher serves fixed pages by URL.
type pageFetcher struct {
	pages map[string]string
}

func (f *pageFetcher) Fetch(_ context.Context, url string) (string, error) {
	if page, ok := f.pages[url]; ok {
		return page, nil
	}
	return "", assert.AnError
}

func enrichPipeline(t *testing.T, fetcher scrape.Fetcher) *Pipeline {
	t.Helper()
	cfg := testConfig()
	cfg.Enrich.Enabled = true

	ledger, err := store.Open(filepath.Join(t.TempDir(), "seen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })

	return New(cfg, fetcher, nil, ledger, &recordingDelivery{}, slog.New(slog.DiscardHandler))
}

func TestEnrichAppendsDetailAndReExtractsContacts(t *testing.T) {
	fetcher := &pageFetcher{pages: map[string]string{
		"https://x/job/1": `<html><body>
			<div id="jobDescriptionText">Urgent walk-in. Email resumes to jobs@shopkart.in, call 8123456789.</div>
		</body></html>`,
	}}
	p := enrichPipeline(t, fetcher)

	job := domain.Job{
		Title:       "E-commerce Executive",
		URL:         "https://x/job/1",
		Description: "summary text",
		Source:      domain.SourceNaukri,
	}
	p.enrich(context.Background(), &job)

	assert.Contains(t, job.Description, "summary text")
	assert.Contains(t, job.Description, "Urgent walk-in")
	assert.Equal(t, []string{"jobs@shopkart.in"}, job.Emails)
	assert.Equal(t, []string{"8123456789"}, job.Phones)
}

func TestEnrichDetailFetchFailureKeepsSummary(t *testing.T) {
	p := enrichPipeline(t, &pageFetcher{})

	job := domain.Job{
		Title:       "E-commerce Executive",
		URL:         "https://gone/job",
		Description: "summary only",
		Emails:      []string{"hr@x.in"},
		Phones:      []string{"9876543210"},
	}
	p.enrich(context.Background(), &job)

	assert.Equal(t, "summary only", job.Description)
	assert.Equal(t, []string{"hr@x.in"}, job.Emails)
}

func TestEnrichSkipsLinklessJobs(t *testing.T) {
	p := enrichPipeline(t, &pageFetcher{})

	job := domain.Job{Title: "Snippet only", Description: "text"}
	p.enrich(context.Background(), &job)

	assert.Equal(t, "text", job.Description)
}

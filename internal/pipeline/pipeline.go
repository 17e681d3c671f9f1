// Package pipeline sequences one digest run: fetch each source, extract and
// normalize cards, classify, enrich contacts, dedup against the ledger,
// build the report, deliver it.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jobdigest/internal/classify"
	"jobdigest/internal/config"
	"jobdigest/internal/contact"
	"jobdigest/internal/digest"
	"jobdigest/internal/domain"
	"jobdigest/internal/mail"
	"jobdigest/internal/normalize"
	"jobdigest/internal/scrape"
	"jobdigest/internal/store"
)

// Ledger is what the pipeline needs from the dedup store.
type Ledger interface {
	Exists(ctx context.Context, key string) (bool, error)
	Record(ctx context.Context, key string, firstSeen int64) error
}

var _ Ledger = (*store.Store)(nil)

type Pipeline struct {
	cfg      config.Config
	fetcher  scrape.Fetcher
	sources  []scrape.Source
	cls      *classify.Classifier
	ledger   Ledger
	delivery mail.Delivery
	log      *slog.Logger
	now      func() time.Time
}

// SourceReport counts what one source contributed to a run.
type SourceReport struct {
	Source  domain.Source
	Fetched int // raw cards extracted
	Kept    int // cards surviving classification (pre-dedup)
	Err     string
}

// RunReport summarizes a completed run.
type RunReport struct {
	Sources     []SourceReport
	NewJobs     []domain.Job
	Delivered   bool
	DeliveryErr string
}

func New(cfg config.Config, fetcher scrape.Fetcher, sources []scrape.Source,
	ledger Ledger, delivery mail.Delivery, log *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		fetcher: fetcher,
		sources: sources,
		cls: classify.New(cfg.Filters.Cities,
			cfg.Filters.RoleKeywords, cfg.Filters.WalkinKeywords),
		ledger:   ledger,
		delivery: delivery,
		log:      log,
		now:      time.Now,
	}
}

type fetchResult struct {
	cards []domain.RawCard
	err   error
}

// Run executes one complete digest run. Fetches fan out per source; every
// stage after fetch is sequential so the ledger check-and-record stays
// serialized. A run always reaches delivery, even when nothing new was found.
// In dry-run mode nothing is recorded and no mail goes out.
func (p *Pipeline) Run(ctx context.Context, dryRun bool) (RunReport, error) {
	var report RunReport

	// --- Fetching + Extracting (fan out, best effort per source)
	results := make([]fetchResult, len(p.sources))
	var g errgroup.Group
	for i, src := range p.sources {
		g.Go(func() error {
			results[i] = p.fetchSource(ctx, src)
			return nil // a dead source never cancels its siblings
		})
	}
	_ = g.Wait()

	// --- Classifying + Enriching + Deduping, in stable source order
	runSeen := map[string]bool{}
	for i, src := range p.sources {
		res := results[i]
		sr := SourceReport{Source: src.Name(), Fetched: len(res.cards)}
		if res.err != nil {
			sr.Err = res.err.Error()
			p.log.Warn("source failed, skipping", "source", src.Name(), "error", res.err)
			report.Sources = append(report.Sources, sr)
			continue
		}

		kept := 0
		for _, card := range res.cards {
			if kept >= p.cfg.MaxResults {
				break
			}
			job, ok := p.classifyCard(card, src)
			if !ok {
				continue
			}
			kept++
			sr.Kept++

			if p.cfg.Enrich.Enabled {
				p.enrich(ctx, &job)
			}

			key := job.DedupKey()
			if key == "" {
				continue
			}
			if runSeen[key] {
				continue
			}
			runSeen[key] = true

			exists, err := p.ledger.Exists(ctx, key)
			if err != nil {
				p.log.Warn("ledger lookup failed, skipping job", "key", key, "error", err)
				continue
			}
			if exists {
				continue
			}
			if !dryRun {
				// record immediately so a crash mid-run can't re-report
				if err := p.ledger.Record(ctx, key, p.now().Unix()); err != nil {
					p.log.Warn("ledger record failed, skipping job", "key", key, "error", err)
					continue
				}
			}
			report.NewJobs = append(report.NewJobs, job)
		}

		p.log.Info("source done", "source", src.Name(), "fetched", sr.Fetched, "kept", sr.Kept)
		report.Sources = append(report.Sources, sr)
	}

	// --- Building + Delivering (an empty digest is still a digest)
	now := p.now()
	body, err := digest.Build(report.NewJobs, now)
	if err != nil {
		return report, err
	}

	if dryRun {
		p.log.Info("dry run, not delivering", "new_jobs", len(report.NewJobs))
		return report, nil
	}

	if err := p.delivery.Deliver(ctx, digest.Subject(now), body); err != nil {
		// lost report for this run; acceptable at daily cadence
		report.DeliveryErr = err.Error()
		p.log.Warn("digest delivery failed", "error", err)
		return report, nil
	}
	report.Delivered = true
	p.log.Info("digest delivered", "new_jobs", len(report.NewJobs))
	return report, nil
}

func (p *Pipeline) fetchSource(ctx context.Context, src scrape.Source) fetchResult {
	page, err := p.fetcher.Fetch(ctx, src.URL())
	if err != nil {
		return fetchResult{err: err}
	}
	doc, err := scrape.ParseDoc(page)
	if err != nil {
		return fetchResult{err: err}
	}
	return fetchResult{cards: src.Extract(doc)}
}

// classifyCard applies the freshness/city/role predicates and, on success,
// returns the normalized Job with contacts extracted from the card text.
func (p *Pipeline) classifyCard(card domain.RawCard, src scrape.Source) (domain.Job, bool) {
	text := card.Text()

	if src.RequiresFresh() {
		freshText := card.Freshness
		if freshText == "" {
			freshText = text
		}
		if !classify.IsFresh(freshText) {
			return domain.Job{}, false
		}
	}
	if !p.cls.HasCity(text) {
		return domain.Job{}, false
	}
	if !p.cls.MatchesRole(text) {
		return domain.Job{}, false
	}

	job := normalize.FromCard(card, src.Name())
	job.Emails, job.Phones = contact.Extract(text)
	return job, true
}

func joinFields(parts ...string) string {
	return strings.Join(parts, " ")
}

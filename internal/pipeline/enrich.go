package pipeline

import (
	"context"

	"jobdigest/internal/contact"
	"jobdigest/internal/domain"
	"jobdigest/internal/scrape"
)

// detailTextCap bounds how much of a detail page feeds the description when
// no description selector matches.
const detailTextCap = 3000

// Selectors the common boards use for the full job description.
var descriptionSelectors = "#jobDescriptionText, .jd-desc, .job-desc, .description"

// enrich fetches the job's detail page best-effort, appends its description
// text, and re-extracts contacts over everything known about the job. On any
// failure the job keeps its summary-only description.
func (p *Pipeline) enrich(ctx context.Context, job *domain.Job) {
	if job.URL == "" {
		return
	}

	page, err := p.fetcher.Fetch(ctx, job.URL)
	if err != nil {
		p.log.Debug("detail fetch failed", "url", job.URL, "error", err)
		return
	}
	doc, err := scrape.ParseDoc(page)
	if err != nil {
		p.log.Debug("detail parse failed", "url", job.URL, "error", err)
		return
	}

	detail := scrape.CleanText(doc.Find(descriptionSelectors).First().Text())
	if detail == "" {
		body := scrape.CleanText(doc.Find("body").Text())
		if len(body) > detailTextCap {
			body = body[:detailTextCap]
		}
		detail = body
	}
	if detail != "" {
		if job.Description != "" {
			job.Description += "\n\n"
		}
		job.Description += detail
	}

	combined := joinFields(job.Title, job.Company, job.Location, job.Description)
	job.Emails, job.Phones = contact.Extract(combined)
}

// Package digest renders the run's new listings into the HTML report that
// gets mailed out.
package digest

import (
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode/utf8"

	"jobdigest/internal/domain"
)

// DescriptionLimit caps how much listing text each digest block carries.
const DescriptionLimit = 600

const reportTmpl = `<h2>Daily Walk-in + E-commerce Jobs — {{.Date}}</h2>
{{if not .Jobs}}<p>No new jobs found in the last 1 day.</p>
{{else}}<p>Total new jobs: {{len .Jobs}}</p>
{{range .Jobs}}<div style="margin-bottom:12px;padding:10px;border:1px solid #e6e6e6;border-radius:6px;">
<h3 style="margin:0">{{.Title}}</h3>
{{if .Company}}<p style="margin:4px 0"><b>Company:</b> {{.Company}}</p>{{end}}
<p style="margin:4px 0"><b>Source:</b> {{.Source}}{{if .Location}} - {{.Location}}{{end}}</p>
{{if .Description}}<p style="margin:6px 0">{{.Description}}</p>{{end}}
{{if .URL}}<p style="margin:6px 0"><a href="{{.URL}}">Open job/link</a></p>{{end}}
{{if .Emails}}<p style="margin:6px 0"><b>Emails:</b> {{join .Emails}}</p>{{end}}
{{if .Phones}}<p style="margin:6px 0"><b>Phones:</b> {{join .Phones}}</p>{{end}}
</div>
{{end}}{{end}}`

var tmpl = template.Must(template.New("digest").
	Funcs(template.FuncMap{"join": func(xs []string) string { return strings.Join(xs, ", ") }}).
	Parse(reportTmpl))

type reportJob struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	Source      string
	Emails      []string
	Phones      []string
}

// Build renders the digest body for the given jobs in discovery order. An
// empty slice still yields a complete body that says no jobs were found.
// Scraped text is escaped by the template; nothing from a listing can inject
// markup into the report.
func Build(jobs []domain.Job, now time.Time) (string, error) {
	data := struct {
		Date string
		Jobs []reportJob
	}{
		Date: now.Format("2006-01-02"),
	}

	for _, j := range jobs {
		data.Jobs = append(data.Jobs, reportJob{
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.Location,
			Description: Truncate(j.Description, DescriptionLimit),
			URL:         j.URL,
			Source:      string(j.Source),
			Emails:      j.Emails,
			Phones:      j.Phones,
		})
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return b.String(), nil
}

// Subject builds the mail subject for a run.
func Subject(now time.Time) string {
	return fmt.Sprintf("Walk-in+Ecom Jobs — %s", now.Format("2006-01-02"))
}

// Truncate caps s at limit characters with an ellipsis marker.
func Truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	// don't split a multibyte rune at the cut point
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

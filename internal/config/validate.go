package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and dedups the keyword lists, fills defaults,
// and reports problems. Errors abort the run before any fetch; warnings only
// get logged.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Filters.Cities = trimList(out.Filters.Cities)
	out.Filters.RoleKeywords = trimList(out.Filters.RoleKeywords)
	out.Filters.WalkinKeywords = trimList(out.Filters.WalkinKeywords)

	if out.MaxResults <= 0 {
		out.MaxResults = 10
	}
	if out.Fetch.TimeoutSeconds <= 0 {
		out.Fetch.TimeoutSeconds = 15
	}
	if strings.TrimSpace(out.App.DataDir) == "" {
		out.App.DataDir = "."
	}

	// ---- Validation rules ----

	// mail credentials are the mandatory precondition (fatal before any fetch)
	if strings.TrimSpace(out.Mail.Username) == "" {
		res.addErr("EMAIL_USER is not set")
	}
	if strings.TrimSpace(out.Mail.Password) == "" {
		res.addErr("EMAIL_PASS is not set (env or keychain)")
	}
	if strings.TrimSpace(out.Mail.Recipient) == "" {
		res.addErr("RECIPIENT_EMAIL is not set")
	}

	if !anySourceEnabled(out) {
		res.addWarn("no sources enabled; the run will send an empty digest")
	}
	if len(out.Filters.Cities) == 0 {
		res.addWarn("filters.cities is empty; the city predicate will reject everything")
	}
	if len(out.Filters.RoleKeywords) == 0 && len(out.Filters.WalkinKeywords) == 0 {
		res.addWarn("no role or walk-in keywords configured; the role predicate will reject everything")
	}
	if out.MaxResults > 100 {
		res.addWarn("max_results is %d; digests that large are hard to read", out.MaxResults)
	}

	return out, res
}

func anySourceEnabled(cfg Config) bool {
	s := cfg.Sources
	return s.Naukri.Enabled || s.LinkedIn.Enabled || s.Indeed.Enabled ||
		s.Bing.Enabled || s.Shine.Enabled || s.Foundit.Enabled ||
		s.Google.Enabled || s.TimesJobs.Enabled
}

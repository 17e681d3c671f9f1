// Package classify holds the three relevance predicates applied to listing
// text: target city, role-or-walk-in keyword, and posting freshness.
package classify

import (
	"regexp"
	"strconv"
	"strings"
)

// Classifier tests listing text against configured keyword families.
// All matching is case-insensitive substring containment.
type Classifier struct {
	cities  []string
	roles   []string
	walkins []string
}

func New(cities, roles, walkins []string) *Classifier {
	return &Classifier{
		cities:  lowerTrim(cities),
		roles:   lowerTrim(roles),
		walkins: lowerTrim(walkins),
	}
}

// HasCity reports whether any target-city variant appears in text.
func (c *Classifier) HasCity(text string) bool {
	return containsAny(text, c.cities)
}

// MatchesRole reports whether the text mentions a role keyword or a walk-in
// event keyword. The two families are OR-ed: a posting qualifies by role
// alone or by event type alone.
func (c *Classifier) MatchesRole(text string) bool {
	return containsAny(text, c.roles) || containsAny(text, c.walkins)
}

// Fixed phrases that mark a posting as made within the last day.
var freshMarkers = []string{
	"just posted",
	"just now",
	"posted today",
	"today",
	"few seconds",
	"few minutes",
	"minutes ago",
	"1 day ago",
	"24 hours",
}

var reHoursAgo = regexp.MustCompile(`(\d+)\s+hour`)

// IsFresh reports whether text carries a recognized recency marker. Exact
// phrases cover the sub-hour and one-day cases; "N hours ago" style text is
// fresh for N <= 24. Text with no marker is not fresh.
func IsFresh(text string) bool {
	if text == "" {
		return false
	}
	t := strings.ToLower(text)
	for _, m := range freshMarkers {
		if strings.Contains(t, m) {
			return true
		}
	}
	if m := reHoursAgo.FindStringSubmatch(t); m != nil {
		if hours, err := strconv.Atoi(m[1]); err == nil {
			return hours <= 24
		}
	}
	return false
}

func containsAny(text string, needles []string) bool {
	if text == "" {
		return false
	}
	t := strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(t, n) {
			return true
		}
	}
	return false
}

func lowerTrim(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		x = strings.ToLower(strings.TrimSpace(x))
		if x == "" {
			continue
		}
		out = append(out, x)
	}
	return out
}

// Package contact pulls email addresses and Indian mobile numbers out of
// free-form listing text.
package contact

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	rePhone = regexp.MustCompile(`\b(?:\+91[\-\s]?)?[6-9]\d{9}\b`)
	reDigit = regexp.MustCompile(`[^\d]`)
)

// Extract returns the distinct emails and normalized phone numbers found in
// text. Emails keep their original casing. Phone candidates are stripped to
// digits; anything longer than 10 keeps the last 10 (drops the +91 prefix) and
// anything that isn't exactly 10 digits after cleaning is dropped. Both slices
// are non-nil and dedup order follows first appearance.
func Extract(text string) (emails, phones []string) {
	emails = []string{}
	phones = []string{}
	if text == "" {
		return emails, phones
	}

	seenMail := map[string]bool{}
	for _, m := range reEmail.FindAllString(text, -1) {
		if seenMail[m] {
			continue
		}
		seenMail[m] = true
		emails = append(emails, m)
	}

	seenPhone := map[string]bool{}
	for _, p := range rePhone.FindAllString(text, -1) {
		n := NormalizePhone(p)
		if n == "" || seenPhone[n] {
			continue
		}
		seenPhone[n] = true
		phones = append(phones, n)
	}
	return emails, phones
}

// NormalizePhone reduces a raw phone candidate to a bare 10-digit number.
// Returns "" when the candidate cannot be normalized.
func NormalizePhone(raw string) string {
	d := reDigit.ReplaceAllString(strings.TrimSpace(raw), "")
	if len(d) > 10 {
		d = d[len(d)-10:]
	}
	if len(d) != 10 {
		return ""
	}
	return d
}

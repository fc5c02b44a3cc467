package build

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// designationFragment matches name text that is really a designation
// fragment rather than a proper name: a single lowercase letter,
// optionally followed by one more, then a space ("b Persei", "ks Per").
var designationFragment = regexp.MustCompile(`^[a-z][a-z]? `)

// AcceptProperName filters and normalizes a free-text star name. The
// semicolon-delimited suffix is discarded, then the name is rejected if it
// contains a digit or looks like a designation fragment. Accepted names
// are returned title-cased.
func AcceptProperName(raw string) (string, bool) {
	name, _, _ := strings.Cut(raw, ";")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	if strings.ContainsAny(name, "0123456789") {
		return "", false
	}
	if designationFragment.MatchString(name) {
		return "", false
	}
	return TitleCase(name), true
}

// TitleCase normalizes a name to English title case ("POLARIS" becomes
// "Polaris"). A fresh caser per call: cases.Caser carries internal state
// and is not safe for reuse.
func TitleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}

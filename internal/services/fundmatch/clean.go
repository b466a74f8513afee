package fundmatch

import (
	"regexp"
	"strings"
)

// Scheme names in the directory carry plan and option qualifiers, e.g.
// "ABC Fund - Direct Plan - Growth Option (Erstwhile XYZ)". Stripping them
// collapses the share classes of one underlying fund onto a single
// display name.
var (
	planSuffix         = regexp.MustCompile(` - (Regular|Direct) Plan.*`)
	optionSuffix       = regexp.MustCompile(` -.*Option`)
	parentheticals     = regexp.MustCompile(` \(.*\)`)
	repeatedWhitespace = regexp.MustCompile(`\s+`)
)

// CleanSchemeName normalizes a raw scheme name for display. Idempotent:
// cleaning an already-clean name yields the same name.
func CleanSchemeName(name string) string {
	name = planSuffix.ReplaceAllString(name, "")
	name = optionSuffix.ReplaceAllString(name, "")
	name = parentheticals.ReplaceAllString(name, "")
	name = repeatedWhitespace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

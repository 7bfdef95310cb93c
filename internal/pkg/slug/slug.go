// Package slug generates URL-safe identifiers from free-form titles.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength bounds generated slugs so they stay usable in URLs and
// fit the slug column.
const MaxLength = 60

var (
	// whitespaceRuns matches one or more whitespace characters
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// invalidChars matches non-alphanumeric characters (except hyphens)
	invalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	// multipleHyphens matches multiple consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts free text to a URL-friendly slug: accents are folded
// to ASCII, whitespace runs become single hyphens, anything outside
// [a-z0-9-] is dropped, repeated hyphens collapse, edge hyphens are
// trimmed and the result is truncated to MaxLength.
//
// Empty or all-punctuation input yields an empty string; callers must
// handle that case.
func Slugify(s string) string {
	// Normalize unicode characters (decompose accents)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = whitespaceRuns.ReplaceAllString(result, "-")
	result = invalidChars.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > MaxLength {
		result = strings.TrimRight(result[:MaxLength], "-")
	}

	return result
}

// Unique returns a slug for title that is not present in existing.
// The base slug is returned unchanged when it is already free; otherwise
// numeric suffixes -1, -2, ... are tried in order.
func Unique(title string, existing []string) string {
	base := Slugify(title)

	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}

	if _, ok := taken[base]; !ok {
		return base
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

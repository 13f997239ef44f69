// Package slug turns titles in any script into URL-safe identifiers.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	gslug "github.com/gosimple/slug"
	"github.com/gosimple/unidecode"
	"golang.org/x/text/unicode/norm"
)

var (
	reHyphens = regexp.MustCompile(`-{2,}`)
	reInvalid = regexp.MustCompile(`[^a-z0-9-]+`)

	// 第5话, 第 12.5 話, 第３回 (after NFKC)
	reChapterMarker = regexp.MustCompile(`第\s*(\d+(?:\.\d)?)\s*[话話回章集]`)
)

// now is swapped in tests.
var now = func() int64 { return time.Now().Unix() }

// Slug converts title into a lowercase, hyphen separated identifier. Titles in
// non-Latin scripts are transliterated first. The same title always yields the
// same slug; an empty title yields "untitled-<unix time>".
func Slug(title string) string {
	title = strings.TrimSpace(norm.NFKC.String(title))
	if title == "" {
		return untitled()
	}

	input := title
	if hasNonLatin(title) {
		if t := strings.TrimSpace(unidecode.Unidecode(title)); hasAlnum(t) {
			input = t
		}
	}

	out := Clean(reInvalid.ReplaceAllString(gslug.Make(input), "-"))
	if out == "" {
		out = slugifyRaw(title)
	}
	if out == "" {
		return untitled()
	}

	return out
}

// ChapterSlug builds a chapter slug. Titles carrying a "第N话" style marker get a
// fixed "di-<n>hua" prefix followed by the slug of any remaining text.
func ChapterSlug(title string) string {
	normalized := strings.TrimSpace(norm.NFKC.String(title))

	loc := reChapterMarker.FindStringSubmatchIndex(normalized)
	if loc == nil {
		return Slug(title)
	}

	number := normalized[loc[2]:loc[3]]
	prefix := "di-" + formatNumber(number) + "hua"

	rest := strings.TrimSpace(normalized[:loc[0]] + " " + normalized[loc[1]:])
	if !hasAlnum(rest) {
		return prefix
	}

	return Clean(prefix + "-" + Slug(rest))
}

// Clean collapses repeated hyphens and trims them from both ends.
func Clean(s string) string {
	s = reHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ParseChapterNumber extracts the number from a "第N话" marker.
func ParseChapterNumber(title string) (float64, bool) {
	m := reChapterMarker.FindStringSubmatch(norm.NFKC.String(title))
	if m == nil {
		return 0, false
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

func formatNumber(raw string) string {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return strings.ReplaceAll(raw, ".", "-")
	}

	return strings.ReplaceAll(strconv.FormatFloat(n, 'f', -1, 64), ".", "-")
}

func untitled() string {
	return "untitled-" + strconv.FormatInt(now(), 10)
}

func hasNonLatin(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.In(r, unicode.Latin) {
			return true
		}
	}
	return false
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// slugifyRaw keeps letters and digits of any script.
func slugifyRaw(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	return Clean(b.String())
}

// Package source holds what the concrete source adapters share: status and
// chapter number normalisation, URL resolution and the genre filter contract.
package source

import (
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"manga_ingest/internal/domain"
	"manga_ingest/internal/slug"
)

const (
	KindAPI  = "api"
	KindHTML = "html"
)

// GenreFilter keeps only recognised genres. *genre.Vocabulary implements it.
type GenreFilter interface {
	Filter(raw []string) (valid, dropped []string)
}

var (
	reChapterWord = regexp.MustCompile(`(?i)\b(?:chapter|chap|ch)\.?\s*(\d+(?:\.\d+)?)`)
	reBareNumber  = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*$`)
)

// NormalizeStatus maps free-form status text onto a MangaStatus. Unknown or
// empty text is treated as ongoing.
func NormalizeStatus(text string) domain.MangaStatus {
	s := strings.ToLower(strings.TrimSpace(norm.NFKC.String(text)))

	switch {
	case s == "":
		return domain.StatusOngoing
	case containsAny(s, "complete", "finished", "完结", "完結", "已完结", "完本"):
		return domain.StatusCompleted
	case containsAny(s, "hiatus", "paused", "on hold", "休刊", "暂停"):
		return domain.StatusHiatus
	case containsAny(s, "cancelled", "canceled", "dropped", "discontinued", "腰斩", "停更"):
		return domain.StatusCancelled
	default:
		return domain.StatusOngoing
	}
}

// ChapterNumber parses a chapter number from its display name: "第N话" markers,
// "Chapter N", "Ch. N" or a bare number.
func ChapterNumber(name string) (float64, bool) {
	if n, ok := slug.ParseChapterNumber(name); ok {
		return n, true
	}

	s := norm.NFKC.String(name)
	for _, re := range []*regexp.Regexp{reChapterWord, reBareNumber} {
		if m := re.FindStringSubmatch(s); m != nil {
			n, err := strconv.ParseFloat(m[1], 64)
			if err == nil {
				return n, true
			}
		}
	}

	return 0, false
}

// FilterGenres runs raw through filter and logs what was dropped.
func FilterGenres(filter GenreFilter, raw []string, logger *slog.Logger) []string {
	if filter == nil || len(raw) == 0 {
		return raw
	}

	valid, dropped := filter.Filter(raw)
	if len(dropped) > 0 {
		logger.Debug("dropped unknown genres", "dropped", dropped)
	}

	return valid
}

// ResolveURL resolves href against base. Absolute hrefs are returned as is.
func ResolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() {
		return u.String()
	}

	b, err := url.Parse(base)
	if err != nil {
		return href
	}

	return b.ResolveReference(u).String()
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
